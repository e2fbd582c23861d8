package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"controlling_heating/internal/models"
	"controlling_heating/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       service.Identity
	parseErr      error

	lastSignUpUsername  string
	lastSignUpPassword  string
	lastSignUpHousehold string
	lastGenUsername     string
	lastGenPassword     string
	lastParseToken      string
}

func (m *mockAuth) SignUp(username, password, household string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	m.lastSignUpHousehold = household
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (service.Identity, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// call records the household and target of a mockSystems call.
type call struct {
	method      string
	householdID int
	id          int
}

type mockSystems struct {
	status  models.SystemStatus
	all     []models.SystemStatus
	systems []models.HeatingSystem
	err     error

	calls       []call
	lastInput   service.SystemInput
	lastOn      *bool
	lastMinutes int
}

func (m *mockSystems) record(method string, hh, id int) {
	m.calls = append(m.calls, call{method: method, householdID: hh, id: id})
}

func (m *mockSystems) last() call {
	if len(m.calls) == 0 {
		return call{}
	}
	return m.calls[len(m.calls)-1]
}

func (m *mockSystems) Create(_ context.Context, hh int, in service.SystemInput) (models.HeatingSystem, error) {
	m.record("Create", hh, 0)
	m.lastInput = in
	return models.HeatingSystem{ID: 1, HouseholdID: hh, Name: in.Name, SensorURL: in.SensorURL, GPIOPin: in.GPIOPin}, m.err
}
func (m *mockSystems) Update(_ context.Context, hh, id int, in service.SystemInput) (models.HeatingSystem, error) {
	m.record("Update", hh, id)
	m.lastInput = in
	return models.HeatingSystem{ID: id, HouseholdID: hh, Name: in.Name}, m.err
}
func (m *mockSystems) List(_ context.Context, hh int) ([]models.HeatingSystem, error) {
	m.record("List", hh, 0)
	return m.systems, m.err
}
func (m *mockSystems) Start(_ context.Context, hh, id int) (models.SystemStatus, error) {
	m.record("Start", hh, id)
	return m.status, m.err
}
func (m *mockSystems) Stop(_ context.Context, hh, id int) error {
	m.record("Stop", hh, id)
	return m.err
}
func (m *mockSystems) Status(_ context.Context, hh, id int) (models.SystemStatus, error) {
	m.record("Status", hh, id)
	return m.status, m.err
}
func (m *mockSystems) StatusAll(_ context.Context, hh int) []models.SystemStatus {
	m.record("StatusAll", hh, 0)
	return m.all
}
func (m *mockSystems) ToggleProgram(_ context.Context, hh, id int) (models.SystemStatus, error) {
	m.record("ToggleProgram", hh, id)
	return m.status, m.err
}
func (m *mockSystems) SetProgram(_ context.Context, hh, id int, on bool) (models.SystemStatus, error) {
	m.record("SetProgram", hh, id)
	m.lastOn = &on
	return m.status, m.err
}
func (m *mockSystems) StartAdvance(_ context.Context, hh, id, minutes int) (models.SystemStatus, error) {
	m.record("StartAdvance", hh, id)
	m.lastMinutes = minutes
	return m.status, m.err
}
func (m *mockSystems) CancelAdvance(_ context.Context, hh, id int) (models.SystemStatus, error) {
	m.record("CancelAdvance", hh, id)
	return m.status, m.err
}

type mockSchedule struct {
	periods []models.HeatingPeriod
	err     error

	lastHousehold int
	lastUser      int
	lastID        int
	lastInput     service.PeriodInput
}

func (m *mockSchedule) List(_ context.Context, hh int) ([]models.HeatingPeriod, error) {
	m.lastHousehold = hh
	return m.periods, m.err
}
func (m *mockSchedule) Create(_ context.Context, hh, user int, in service.PeriodInput) (models.HeatingPeriod, error) {
	m.lastHousehold, m.lastUser, m.lastInput = hh, user, in
	return models.HeatingPeriod{ID: 1, HouseholdID: hh, SystemID: in.SystemID, TimeOn: in.TimeOn, TimeOff: in.TimeOff, Target: in.Target}, m.err
}
func (m *mockSchedule) Update(_ context.Context, hh, id int, in service.PeriodInput) (models.HeatingPeriod, error) {
	m.lastHousehold, m.lastID, m.lastInput = hh, id, in
	return models.HeatingPeriod{ID: id, HouseholdID: hh, TimeOn: in.TimeOn, TimeOff: in.TimeOff}, m.err
}
func (m *mockSchedule) Delete(_ context.Context, hh, id int) error {
	m.lastHousehold, m.lastID = hh, id
	return m.err
}

type mockEventLog struct {
	resp []models.HeatingEvent
	err  error
	last service.LogFilter
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.HeatingEvent, error) {
	m.last = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

// testIdentity is what mockAuth hands out for the "valid" token.
var testIdentity = service.Identity{UserID: 7, HouseholdID: 3}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// serve runs one request through r with the "valid" bearer token unless token is empty.
func serve(r http.Handler, method, target string, body io.Reader, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	return w
}
