package api

import (
	"encoding/json"
	"net/http"

	"weather-api/internal/platform/apperr"
	"weather-api/internal/validate"
)

type registerRequest struct {
	Email string `json:"email"`
}

// @Summary     Register a new user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request  body      registerRequest    true  "Email to register"
// @Success     200      {object}  map[string]string  "User registered successfully"
// @Failure     400      {object}  map[string]string  "invalid email format"
// @Failure     409      {object}  map[string]string  "email already registered"
// @Router      /api/v1/users/register [post]
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	if !validate.IsValidEmail(req.Email) {
		errorResponse(w, apperr.BadRequest("invalid_email", "Email is invalid", nil))
		return
	}

	if _, err := h.userSvc.Register(r.Context(), req.Email); err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "User registered successfully",
	})
}

// @Summary     Activate a user
// @Tags        users
// @Produce     json
// @Param       email  query     string             true  "Email of the user to activate"
// @Success     200    {object}  map[string]string  "User activated successfully"
// @Failure     404    {object}  map[string]string  "user not found"
// @Router      /api/v1/users/activate [post]
func (h *Handler) handleActivate(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		errorResponse(w, apperr.BadRequest("invalid_input", "email is required", nil))
		return
	}

	if err := h.userSvc.Activate(r.Context(), email); err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "User activated successfully",
	})
}

// @Summary     Deactivate a user
// @Tags        users
// @Produce     json
// @Param       email  query     string             true  "Email of the user to deactivate"
// @Success     200    {object}  map[string]string  "User deactivated successfully"
// @Failure     404    {object}  map[string]string  "user not found"
// @Router      /api/v1/users/deactivate [post]
func (h *Handler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		errorResponse(w, apperr.BadRequest("invalid_input", "email is required", nil))
		return
	}

	if err := h.userSvc.Deactivate(r.Context(), email); err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "User deactivated successfully",
	})
}
