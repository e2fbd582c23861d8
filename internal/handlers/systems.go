package handlers

import (
	"net/http"
	"strconv"

	heating "controlling_heating"
	"controlling_heating/internal/models"
	"controlling_heating/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errListSystems  = "failed to list heating systems"
	errSaveSystem   = "failed to save heating system"
	errStartSystem  = "failed to start heating system"
	errStopSystem   = "failed to stop heating system"
	errSystemStatus = "failed to load heating system status"
	errProgram      = "failed to set program"
	errAdvance      = "failed to change advance"
)

// SystemRequest is the payload for creating or updating a heating system.
type SystemRequest struct {
	Name      string `json:"name" binding:"required" example:"Downstairs"`
	SensorURL string `json:"sensor_url" binding:"required" example:"http://192.168.1.20/readings"`
	GPIOPin   int    `json:"gpio_pin" example:"17"`
	// GPIO chip; empty means the configured default
	RaspberryPi string `json:"raspberry_pi,omitempty" example:"gpiochip0"`
}

func (r SystemRequest) input() service.SystemInput {
	return service.SystemInput{
		Name:        r.Name,
		SensorURL:   r.SensorURL,
		GPIOPin:     r.GPIOPin,
		RaspberryPi: r.RaspberryPi,
	}
}

func (h *Handler) respondAction(c *gin.Context, status string, st models.SystemStatus) {
	c.JSON(http.StatusOK, heating.ActionResponse{Status: status, System: st})
}

// @Summary      Status of every running system
// @Tags         heating
// @Produce      json
// @Success      200  {object}  controlling_heating.StatusListResponse
// @Failure      401  {object}  controlling_heating.ErrorResponse
// @Router       /api/v1/heating [get]
// @Security     BearerAuth
func (h *Handler) statusAll(c *gin.Context) {
	all := h.services.StatusAll(c.Request.Context(), identity(c).HouseholdID)
	c.JSON(http.StatusOK, heating.StatusListResponse{Count: len(all), Systems: all})
}

// @Summary      List heating systems
// @Tags         heating
// @Produce      json
// @Success      200  {object}  controlling_heating.SystemListResponse
// @Failure      401  {object}  controlling_heating.ErrorResponse
// @Failure      500  {object}  controlling_heating.ErrorResponse
// @Router       /api/v1/heating/systems [get]
// @Security     BearerAuth
func (h *Handler) listSystems(c *gin.Context) {
	hh := identity(c).HouseholdID
	systems, err := h.services.Systems.List(c.Request.Context(), hh)
	if err != nil {
		h.respondError(c, err, errListSystems, "systems_list_failed", "household_id", hh)
		return
	}
	c.JSON(http.StatusOK, heating.SystemListResponse{Count: len(systems), Systems: systems})
}

// @Summary      Create heating system
// @Tags         heating
// @Accept       json
// @Produce      json
// @Param        body  body      SystemRequest  true  "System payload"
// @Success      201   {object}  models.HeatingSystem
// @Failure      400   {object}  controlling_heating.ErrorResponse
// @Failure      401   {object}  controlling_heating.ErrorResponse
// @Failure      500   {object}  controlling_heating.ErrorResponse
// @Router       /api/v1/heating/systems [post]
// @Security     BearerAuth
func (h *Handler) createSystem(c *gin.Context) {
	var req SystemRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	hh := identity(c).HouseholdID
	sys, err := h.services.Systems.Create(c.Request.Context(), hh, req.input())
	if err != nil {
		h.respondError(c, err, errSaveSystem, "system_create_failed", "household_id", hh)
		return
	}
	c.JSON(http.StatusCreated, sys)
}

// @Summary      Update heating system
// @Description  A running system is restarted with the new settings.
// @Tags         heating
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "System ID"
// @Param        body  body      SystemRequest  true  "System payload"
// @Success      200   {object}  models.HeatingSystem
// @Failure      400   {object}  controlling_heating.ErrorResponse
// @Failure      403   {object}  controlling_heating.ErrorResponse
// @Failure      404   {object}  controlling_heating.ErrorResponse
// @Router       /api/v1/heating/systems/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateSystem(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req SystemRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	sys, err := h.services.Systems.Update(c.Request.Context(), identity(c).HouseholdID, id, req.input())
	if err != nil {
		h.respondError(c, err, errSaveSystem, "system_update_failed", "system_id", id)
		return
	}
	c.JSON(http.StatusOK, sys)
}

// @Summary      Start heating system
// @Tags         heating
// @Produce      json
// @Param        id   path      int  true  "System ID"
// @Success      200  {object}  controlling_heating.ActionResponse
// @Failure      403  {object}  controlling_heating.ErrorResponse
// @Failure      404  {object}  controlling_heating.ErrorResponse
// @Failure      500  {object}  controlling_heating.ErrorResponse
// @Router       /api/v1/heating/systems/{id}/start [post]
// @Security     BearerAuth
func (h *Handler) startSystem(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	st, err := h.services.Systems.Start(c.Request.Context(), identity(c).HouseholdID, id)
	if err != nil {
		h.respondError(c, err, errStartSystem, "system_start_failed", "system_id", id)
		return
	}
	h.respondAction(c, statusStarted, st)
}

// @Summary      Stop heating system
// @Description  The relay is switched off and the system stays stopped across restarts.
// @Tags         heating
// @Produce      json
// @Param        id   path      int  true  "System ID"
// @Success      200  {object}  map[string]interface{}  "status, system_id"
// @Failure      403  {object}  controlling_heating.ErrorResponse
// @Failure      404  {object}  controlling_heating.ErrorResponse
// @Router       /api/v1/heating/systems/{id}/stop [post]
// @Security     BearerAuth
func (h *Handler) stopSystem(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.services.Systems.Stop(c.Request.Context(), identity(c).HouseholdID, id); err != nil {
		h.respondError(c, err, errStopSystem, "system_stop_failed", "system_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusStopped, "system_id": id})
}

// @Summary      Heating system status
// @Tags         heating
// @Produce      json
// @Param        id   path      int  true  "System ID"
// @Success      200  {object}  models.SystemStatus
// @Failure      403  {object}  controlling_heating.ErrorResponse
// @Failure      404  {object}  controlling_heating.ErrorResponse
// @Router       /api/v1/heating/systems/{id}/status [get]
// @Security     BearerAuth
func (h *Handler) systemStatus(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	st, err := h.services.Systems.Status(c.Request.Context(), identity(c).HouseholdID, id)
	if err != nil {
		h.respondError(c, err, errSystemStatus, "system_status_failed", "system_id", id)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Set or toggle the program
// @Description  With ?on the program is set explicitly, otherwise it is toggled.
// @Tags         heating
// @Produce      json
// @Param        id   path      int   true   "System ID"
// @Param        on   query     bool  false  "Desired program state"
// @Success      200  {object}  controlling_heating.ActionResponse
// @Failure      400  {object}  controlling_heating.ErrorResponse
// @Failure      404  {object}  controlling_heating.ErrorResponse
// @Router       /api/v1/heating/systems/{id}/program [post]
// @Security     BearerAuth
func (h *Handler) setProgram(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var (
		ctx = c.Request.Context()
		hh  = identity(c).HouseholdID
		st  models.SystemStatus
		err error
	)
	if q, present := c.GetQuery("on"); present {
		on, perr := strconv.ParseBool(q)
		if perr != nil {
			h.badRequest(c, "invalid 'on'; use true or false")
			return
		}
		st, err = h.services.SetProgram(ctx, hh, id, on)
	} else {
		st, err = h.services.ToggleProgram(ctx, hh, id)
	}
	if err != nil {
		h.respondError(c, err, errProgram, "system_program_failed", "system_id", id)
		return
	}
	h.respondAction(c, statusProgram, st)
}

// @Summary      Start advance
// @Description  Heats to the advance target for the given minutes (the configured default when omitted).
// @Description  Status is advance_preempted when an active heating period ended the advance at once.
// @Tags         heating
// @Produce      json
// @Param        id       path      int  true   "System ID"
// @Param        minutes  query     int  false  "Duration in minutes (1-1440)"
// @Success      200      {object}  controlling_heating.ActionResponse
// @Failure      400      {object}  controlling_heating.ErrorResponse
// @Failure      404      {object}  controlling_heating.ErrorResponse
// @Router       /api/v1/heating/systems/{id}/advance [post]
// @Security     BearerAuth
func (h *Handler) startAdvance(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	minutes := 0
	if q := c.Query("minutes"); q != "" {
		m, err := strconv.Atoi(q)
		if err != nil || m <= 0 {
			h.badRequest(c, "invalid 'minutes'; use a positive integer")
			return
		}
		minutes = m
	}
	st, err := h.services.StartAdvance(c.Request.Context(), identity(c).HouseholdID, id, minutes)
	if err != nil {
		h.respondError(c, err, errAdvance, "system_advance_start_failed", "system_id", id, "minutes", minutes)
		return
	}
	// an active heating period ends the advance on the forced tick
	if !st.Advance.Active {
		h.respondAction(c, statusPreempted, st)
		return
	}
	h.respondAction(c, statusAdvancing, st)
}

// @Summary      Cancel advance
// @Tags         heating
// @Produce      json
// @Param        id   path      int  true  "System ID"
// @Success      200  {object}  controlling_heating.ActionResponse
// @Failure      404  {object}  controlling_heating.ErrorResponse
// @Router       /api/v1/heating/systems/{id}/advance [delete]
// @Security     BearerAuth
func (h *Handler) cancelAdvance(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	st, err := h.services.CancelAdvance(c.Request.Context(), identity(c).HouseholdID, id)
	if err != nil {
		h.respondError(c, err, errAdvance, "system_advance_cancel_failed", "system_id", id)
		return
	}
	h.respondAction(c, statusCancelled, st)
}
