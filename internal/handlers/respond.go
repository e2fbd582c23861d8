package handlers

import (
	"errors"
	"net/http"
	"strconv"

	heating "controlling_heating"
	"controlling_heating/internal/registry"
	"controlling_heating/internal/repository"
	"controlling_heating/internal/schedule"
	"controlling_heating/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK        = "ok"
	statusStarted   = "started"
	statusStopped   = "stopped"
	statusProgram   = "program_set"
	statusAdvancing = "advance_started"
	statusCancelled = "advance_cancelled"
	statusPreempted = "advance_preempted"
	statusDeleted   = "deleted"

	errInvalidBodyPref = "invalid body: "
	errInvalidID       = "invalid id"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, heating.ErrorResponse{Error: userMsg})
}

// respondError maps service errors to status codes. Anything the caller
// cannot fix is logged and answered with userMsg.
func (h *Handler) respondError(c *gin.Context, err error, userMsg, logKey string, kv ...interface{}) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, schedule.ErrInvalidPeriod):
		code = http.StatusBadRequest
	case errors.Is(err, schedule.ErrOverlap), errors.Is(err, service.ErrUserExists):
		code = http.StatusConflict
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, registry.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, registry.ErrUnauthorized):
		code = http.StatusForbidden
	default:
		h.logAndJSONError(c, code, userMsg, logKey, err, kv...)
		return
	}
	if h.log != nil {
		fields := append([]interface{}{"err", err, "code", code}, kv...)
		h.log.Infow(logKey, fields...)
	}
	c.JSON(code, heating.ErrorResponse{Error: err.Error()})
}

func (h *Handler) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, heating.ErrorResponse{Error: msg})
}

// pathID parses the :id route parameter and answers 400 when it is not a positive integer.
func (h *Handler) pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.badRequest(c, errInvalidID)
		return 0, false
	}
	return id, true
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		h.badRequest(c, errInvalidBodyPref+err.Error())
		return false
	}
	return true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
