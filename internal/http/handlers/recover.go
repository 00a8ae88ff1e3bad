package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/motionmatrix/factory-portal/internal/http/respond"
	"github.com/motionmatrix/factory-portal/internal/models/dto"
	"github.com/motionmatrix/factory-portal/internal/storage"
)

const recoverMessage = "If that email is registered, recovery instructions have been sent."

// RecoverHandler owns the password-recovery stub. The response is the
// same whether or not the email exists, so the endpoint cannot be used to
// enumerate accounts. No mail is dispatched.
type RecoverHandler struct {
	store storage.AccountStore
}

// NewRecoverHandler constructs the handler.
func NewRecoverHandler(store storage.AccountStore) *RecoverHandler {
	return &RecoverHandler{store: store}
}

// Register attaches the recover route to the mux.
func (h *RecoverHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/recover", h.handleRecover)
}

func (h *RecoverHandler) handleRecover(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.RecoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if errs := req.Validate(); !errs.Valid() {
		respond.Invalid(w, errs)
		return
	}

	// The lookup result stays server-side only.
	if _, err := h.store.FindByEmail(r.Context(), req.Email); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.WithError(err).Error("recovery lookup failed")
		} else {
			log.WithField("email", req.Email).Debug("recovery requested for unknown email")
		}
	} else {
		log.WithField("email", req.Email).Info("recovery requested")
	}

	respond.JSON(w, http.StatusOK, recoverMessage, nil)
}
