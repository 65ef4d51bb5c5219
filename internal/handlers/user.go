package handlers

import (
	"ItemKeeper/internal/auth"
	"ItemKeeper/internal/config"
	"ItemKeeper/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию и вход.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type tokenResponse struct {
	ID    int64  `json:"id,omitempty"`
	Login string `json:"login,omitempty"`
	Token string `json:"token"`
}

func (h *UserHandler) issueToken(userID int64) (string, error) {
	ttl := time.Duration(h.Config.TokenTTLHours) * time.Hour
	return auth.IssueToken(userID, h.Config.AuthSecret, ttl)
}

// Register создаёт пользователя и сразу выдаёт токен.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Login == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "login and password are required")
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			writeError(w, http.StatusConflict, "login already taken")
			return
		}
		h.Logger.Errorw("Register: service error", "login", req.Login, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := h.issueToken(user.ID)
	if err != nil {
		h.Logger.Errorw("Register: issue token", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, tokenResponse{ID: user.ID, Login: user.Login, Token: token})
}

// Login проверяет учётные данные и выдаёт токен.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Login == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "login and password are required")
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid login or password")
			return
		}
		h.Logger.Errorw("Login: service error", "login", req.Login, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := h.issueToken(user.ID)
	if err != nil {
		h.Logger.Errorw("Login: issue token", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
