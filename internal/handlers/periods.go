package handlers

import (
	"net/http"

	heating "controlling_heating"
	"controlling_heating/internal/models"
	"controlling_heating/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errListPeriods  = "failed to list heating periods"
	errSavePeriod   = "failed to save heating period"
	errDeletePeriod = "failed to delete heating period"
)

// PeriodRequest is the payload for creating or updating a heating period.
type PeriodRequest struct {
	// Target system; ignored when all_systems is set
	SystemID   int         `json:"heating_system_id,omitempty" example:"1"`
	AllSystems bool        `json:"all_systems"`
	TimeOn     string      `json:"time_on" binding:"required" example:"06:30"`
	TimeOff    string      `json:"time_off" binding:"required" example:"08:00"`
	Target     float64     `json:"target" binding:"required" example:"20.5"`
	Days       models.Days `json:"days"`
}

func (r PeriodRequest) input() service.PeriodInput {
	return service.PeriodInput{
		SystemID:   r.SystemID,
		AllSystems: r.AllSystems,
		TimeOn:     r.TimeOn,
		TimeOff:    r.TimeOff,
		Target:     r.Target,
		Days:       r.Days,
	}
}

// @Summary      List heating periods
// @Tags         schedule
// @Produce      json
// @Success      200  {object}  controlling_heating.PeriodListResponse
// @Failure      401  {object}  controlling_heating.ErrorResponse
// @Failure      500  {object}  controlling_heating.ErrorResponse
// @Router       /api/v1/heating/periods [get]
// @Security     BearerAuth
func (h *Handler) listPeriods(c *gin.Context) {
	hh := identity(c).HouseholdID
	periods, err := h.services.Schedule.List(c.Request.Context(), hh)
	if err != nil {
		h.respondError(c, err, errListPeriods, "periods_list_failed", "household_id", hh)
		return
	}
	c.JSON(http.StatusOK, heating.PeriodListResponse{Count: len(periods), Periods: periods})
}

// @Summary      Create heating period
// @Description  Rejected with 409 when it overlaps another period of the same system on a shared day.
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body      PeriodRequest  true  "Period payload"
// @Success      201   {object}  models.HeatingPeriod
// @Failure      400   {object}  controlling_heating.ErrorResponse
// @Failure      403   {object}  controlling_heating.ErrorResponse
// @Failure      409   {object}  controlling_heating.ErrorResponse
// @Router       /api/v1/heating/periods [post]
// @Security     BearerAuth
func (h *Handler) createPeriod(c *gin.Context) {
	var req PeriodRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	who := identity(c)
	p, err := h.services.Schedule.Create(c.Request.Context(), who.HouseholdID, who.UserID, req.input())
	if err != nil {
		h.respondError(c, err, errSavePeriod, "period_create_failed", "household_id", who.HouseholdID)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary      Update heating period
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Period ID"
// @Param        body  body      PeriodRequest  true  "Period payload"
// @Success      200   {object}  models.HeatingPeriod
// @Failure      400   {object}  controlling_heating.ErrorResponse
// @Failure      404   {object}  controlling_heating.ErrorResponse
// @Failure      409   {object}  controlling_heating.ErrorResponse
// @Router       /api/v1/heating/periods/{id} [put]
// @Security     BearerAuth
func (h *Handler) updatePeriod(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req PeriodRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	p, err := h.services.Schedule.Update(c.Request.Context(), identity(c).HouseholdID, id, req.input())
	if err != nil {
		h.respondError(c, err, errSavePeriod, "period_update_failed", "period_id", id)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Delete heating period
// @Tags         schedule
// @Produce      json
// @Param        id   path      int  true  "Period ID"
// @Success      200  {object}  map[string]interface{}  "status, period_id"
// @Failure      403  {object}  controlling_heating.ErrorResponse
// @Failure      404  {object}  controlling_heating.ErrorResponse
// @Router       /api/v1/heating/periods/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deletePeriod(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.services.Schedule.Delete(c.Request.Context(), identity(c).HouseholdID, id); err != nil {
		h.respondError(c, err, errDeletePeriod, "period_delete_failed", "period_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted, "period_id": id})
}
