package handlers

import (
	"errors"
	"net/http"

	heating "controlling_heating"
	"controlling_heating/internal/service"

	"github.com/gin-gonic/gin"
)

// SignUpRequest creates a user and the household it belongs to.
type SignUpRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	// Household name; defaults to the username
	Household string `json:"household,omitempty" example:"Home"`
}

// SignInRequest carries the credentials exchanged for a token.
type SignInRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignUpRequest  true  "Credentials"
// @Success      200   {object}  controlling_heating.IDResponse
// @Failure      400   {object}  controlling_heating.ErrorResponse
// @Failure      409   {object}  controlling_heating.ErrorResponse
// @Router       /auth/sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var input SignUpRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.SignUp(input.Username, input.Password, input.Household)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_sign_up_failed", "username", input.Username, "err", err)
		}
		code := http.StatusBadRequest
		if errors.Is(err, service.ErrUserExists) {
			code = http.StatusConflict
		}
		c.JSON(code, heating.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, heating.IDResponse{ID: id})
}

// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignInRequest  true  "Credentials"
// @Success      200   {object}  controlling_heating.TokenResponse
// @Failure      400   {object}  controlling_heating.ErrorResponse
// @Failure      401   {object}  controlling_heating.ErrorResponse
// @Router       /auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var input SignInRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(input.Username, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_sign_in_failed", "username", input.Username, "err", err)
		}
		c.JSON(http.StatusUnauthorized, heating.ErrorResponse{Error: "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, heating.TokenResponse{Token: token})
}
