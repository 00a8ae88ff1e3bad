package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/motionmatrix/factory-portal/internal/http/respond"
	"github.com/motionmatrix/factory-portal/internal/models"
	"github.com/motionmatrix/factory-portal/internal/storage"
)

// UsersHandler lists accounts for the dashboard's staff views.
type UsersHandler struct {
	store storage.AccountStore
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(store storage.AccountStore) *UsersHandler {
	return &UsersHandler{store: store}
}

// Register attaches the users route to the mux.
func (h *UsersHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/users", h.handleList)
}

func (h *UsersHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	role := r.URL.Query().Get("role")
	if role != "" && !models.ValidRole(role) {
		respond.Error(w, http.StatusBadRequest, "unknown role")
		return
	}

	accounts, err := h.store.ListByRole(r.Context(), role)
	if err != nil {
		log.WithError(err).Error("list accounts failed")
		respond.Error(w, http.StatusInternalServerError, "failed to list accounts")
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	respond.JSON(w, http.StatusOK, "ok", accounts)
}
