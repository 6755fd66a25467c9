package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/yamato-foods/backoffice-go/internal/domain/auth"
	"github.com/yamato-foods/backoffice-go/internal/handler/http/response"
	"github.com/yamato-foods/backoffice-go/internal/pkg/jwt"
)

type AuthHandler interface {
	// Login authenticates a staff code + PIN pair
	Login(w http.ResponseWriter, r *http.Request)
	// Logout revokes the presented access token
	Logout(w http.ResponseWriter, r *http.Request)
	// SSEToken issues a short-lived token for the event stream
	SSEToken(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Login handles POST /auth/login
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Logout handles POST /auth/logout
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if token := jwtauth.TokenFromHeader(r); token != "" {
		h.jwtService.RevokeToken(token)
	}

	response.SuccessWithMessage(w, "Logged out", nil)
}

// SSEToken handles POST /auth/sse-token
func (h *authHandlerImpl) SSEToken(w http.ResponseWriter, r *http.Request) {
	result, err := h.authService.SSEToken(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
