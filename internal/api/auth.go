package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Daancoria/inventoryapp/internal/auth"
	"github.com/Daancoria/inventoryapp/internal/service"
)

// validate checks request bodies before they reach the core. The core
// re-validates independently; this is the first line, not the enforcement.
var validate = validator.New()

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	Core   *service.Service
	Secret string
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, "username and password required")
		return
	}

	sess, err := h.Core.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		serviceError(w, err)
		return
	}

	token, err := auth.GenerateToken(h.Secret, sess)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	jsonResponse(w, http.StatusOK, loginResponse{
		Token:    token,
		Username: sess.Username,
		Role:     sess.Role,
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so this only
// records the end of the session in the audit trail.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := GetSession(r.Context())
	if err := h.Core.RecordLogout(r.Context(), sess); err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "logged out"})
}
