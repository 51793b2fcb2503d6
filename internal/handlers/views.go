package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bracketlab/bracket-stats/internal/models"
	"github.com/bracketlab/bracket-stats/internal/viewstate"
)

// CreateView starts a new view state on the default screen
// @Summary Create view state
// @Tags Views
// @Produce json
// @Success 201 {object} models.ViewState
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /views [post]
func (h *Handler) CreateView(w http.ResponseWriter, r *http.Request) {
	state, err := h.views.Create(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to create view state", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to create view state")
		return
	}
	h.jsonResponse(w, http.StatusCreated, state)
}

// GetView fetches a view state
// @Summary Get view state
// @Tags Views
// @Produce json
// @Param id path string true "View state ID"
// @Success 200 {object} models.ViewState
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /views/{id} [get]
func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	state, err := h.views.Get(r.Context(), id)
	if err != nil {
		h.viewError(w, id, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, state)
}

// UpdateView applies a partial update to a view state
// @Summary Update view state
// @Description Changing region clears the selected matchup. Each change emits a view event.
// @Tags Views
// @Accept json
// @Produce json
// @Param id path string true "View state ID"
// @Param update body models.ViewStateUpdate true "Fields to change"
// @Success 200 {object} models.ViewState
// @Failure 400 {object} map[string]string "Invalid update"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /views/{id} [put]
func (h *Handler) UpdateView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	var upd models.ViewStateUpdate
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&upd); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	state, err := h.views.Update(r.Context(), id, upd)
	if err != nil {
		h.viewError(w, id, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, state)
}

func (h *Handler) viewError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, viewstate.ErrNotFound):
		h.errorResponse(w, http.StatusNotFound, "View state not found")
	case errors.Is(err, viewstate.ErrInvalidUpdate):
		h.errorResponse(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Errorw("View state operation failed", "id", id, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "View state operation failed")
	}
}
