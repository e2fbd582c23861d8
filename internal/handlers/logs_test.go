package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"controlling_heating/internal/models"
	"controlling_heating/internal/service"
)

func TestLogsHandler_ListAndValidation(t *testing.T) {
	auth := &mockAuth{parseID: testIdentity}
	now := time.Now().UTC().Truncate(time.Second)
	events := []models.HeatingEvent{
		{EventID: "e1", SystemID: 1, OccurredAt: now, Type: models.EventRelayOn, Description: "on"},
		{EventID: "e2", SystemID: 1, OccurredAt: now.Add(1 * time.Second), Type: models.EventRelayOff, Description: "off"},
	}
	logs := &mockEventLog{resp: events}
	s := &service.Service{
		Authorization: auth,
		EventLog:      logs,
	}
	r := newTestRouter(s)

	// Missing/invalid 'from' → 400
	w := serve(r, http.MethodGet, "/api/v1/logs?from=notatime", nil, "valid")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid 'from', got %d", w.Code)
	}

	// Invalid system_id → 400
	w = serve(r, http.MethodGet, "/api/v1/logs?system_id=abc", nil, "valid")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid system_id, got %d", w.Code)
	}

	// Valid range, system and type (lowercase type is normalized to upper)
	q := "/api/v1/logs?from=" + now.Format(time.RFC3339) + "&to=" + now.Add(2*time.Second).Format(time.RFC3339) +
		"&type=relay_on&system_id=1"
	w = serve(r, http.MethodGet, q, nil, "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("logs status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int                   `json:"count"`
		Events []models.HeatingEvent `json:"events"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || len(out.Events) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if logs.last.Type != models.EventRelayOn {
		t.Fatalf("expected type RELAY_ON, got %q", logs.last.Type)
	}
	if logs.last.SystemID != 1 || logs.last.HouseholdID != testIdentity.HouseholdID {
		t.Fatalf("filter not scoped: %+v", logs.last)
	}
	if !logs.last.From.Equal(now) {
		t.Fatalf("from=%v, want %v", logs.last.From, now)
	}
}

func TestLogsHandler_DateOnlyToIsEndOfDay(t *testing.T) {
	logs := &mockEventLog{}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: testIdentity}, EventLog: logs})

	w := serve(r, http.MethodGet, "/api/v1/logs?from=2025-08-01&to=2025-08-01", nil, "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	want := time.Date(2025, 8, 1, 23, 59, 59, 999999999, time.UTC)
	if !logs.last.To.Equal(want) {
		t.Fatalf("to=%v, want %v", logs.last.To, want)
	}

	w = serve(r, http.MethodGet, "/api/v1/logs?from=2025-08-02&to=2025-08-01", nil, "valid")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted range, got %d", w.Code)
	}
}

func TestLogsHandler_ServiceErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", service.ErrInvalidInput, http.StatusBadRequest},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logs := &mockEventLog{err: tc.err}
			r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: testIdentity}, EventLog: logs})
			w := serve(r, http.MethodGet, "/api/v1/logs", nil, "valid")
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d", w.Code, tc.want)
			}
			if tc.want == http.StatusInternalServerError {
				var out struct {
					Error string `json:"error"`
				}
				_ = json.Unmarshal(w.Body.Bytes(), &out)
				if out.Error != errListLogs {
					t.Fatalf("internal error leaked: %q", out.Error)
				}
			}
		})
	}
}
