package handlers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/motionmatrix/factory-portal/internal/http/respond"
	"github.com/motionmatrix/factory-portal/internal/models/dto"
)

// FormsHandler owns the admin dashboard's creation forms. Submissions are
// validated against the shared rule set and then discarded; the credential
// store has no write path.
type FormsHandler struct{}

// NewFormsHandler constructs the handler.
func NewFormsHandler() *FormsHandler {
	return &FormsHandler{}
}

// Register attaches the creation-form routes to the mux.
func (h *FormsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/accounts", h.handleCreateAccount)
	mux.HandleFunc("/workers", h.handleCreateWorker)
}

func (h *FormsHandler) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if errs := req.Validate(); !errs.Valid() {
		respond.Invalid(w, errs)
		return
	}

	log.WithFields(log.Fields{"email": req.Email, "role": req.Role}).
		Info("account submission accepted (not persisted)")
	respond.JSON(w, http.StatusCreated, "Account created successfully!", nil)
}

func (h *FormsHandler) handleCreateWorker(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.CreateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if errs := req.Validate(); !errs.Valid() {
		respond.Invalid(w, errs)
		return
	}

	log.WithFields(log.Fields{"name": req.Name, "department": req.Department}).
		Info("worker submission accepted (not persisted)")
	respond.JSON(w, http.StatusCreated, "Worker added successfully!", nil)
}
