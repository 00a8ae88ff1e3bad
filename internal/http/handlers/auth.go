package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/motionmatrix/factory-portal/internal/auth"
	"github.com/motionmatrix/factory-portal/internal/http/respond"
	"github.com/motionmatrix/factory-portal/internal/models/dto"
	"github.com/motionmatrix/factory-portal/internal/storage"
)

// AuthHandler owns the login and register endpoints.
type AuthHandler struct {
	store  storage.AccountStore
	tokens *auth.TokenManager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.AccountStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/login", h.handleLogin)
	mux.HandleFunc("/register", h.handleRegister)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if errs := req.Validate(); !errs.Valid() {
		respond.Invalid(w, errs)
		return
	}

	identity, err := h.store.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCredentials) {
			// One message for every failure mode; the cause is not
			// distinguishable from outside.
			respond.Error(w, http.StatusUnauthorized, storage.ErrInvalidCredentials.Error())
			return
		}
		log.WithError(err).Error("authenticate failed")
		respond.Error(w, http.StatusInternalServerError, "failed to authenticate")
		return
	}

	if !identity.IsAdmin() {
		// Authentication succeeded but only admins get a session; the
		// remaining role dashboards are not built yet.
		respond.JSON(w, http.StatusOK, "login successful", dto.LoginResponse{
			Identity: identity,
			Session:  false,
		})
		return
	}

	token, err := h.tokens.Generate(identity)
	if err != nil {
		log.WithError(err).Error("token generation failed")
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.JSON(w, http.StatusOK, "login successful", dto.LoginResponse{
		Token:    token,
		Identity: identity,
		Session:  true,
	})
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if errs := req.Validate(); !errs.Valid() {
		respond.Invalid(w, errs)
		return
	}

	// The store is a read-only fixture; the submission is acknowledged
	// and discarded. Registration hands the client back to the login
	// screen.
	log.WithField("email", req.Email).Info("registration accepted (not persisted)")
	respond.JSON(w, http.StatusCreated, "Registration successful! Please log in.", nil)
}
