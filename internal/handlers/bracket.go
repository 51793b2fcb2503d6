package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bracketlab/bracket-stats/internal/logic"
	"github.com/bracketlab/bracket-stats/internal/models"
)

// GetBracket returns the full dataset
// @Summary Full bracket
// @Tags Bracket
// @Produce json
// @Success 200 {object} models.Bracket
// @Router /bracket [get]
func (h *Handler) GetBracket(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.bracket.Bracket())
}

// GetRegions lists region names in display order
// @Summary Regions
// @Tags Bracket
// @Produce json
// @Success 200 {array} string
// @Router /regions [get]
func (h *Handler) GetRegions(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.bracket.Regions())
}

// GetRegionMatchups returns the first-round matchups of a region
// @Summary Region matchups
// @Tags Bracket
// @Produce json
// @Param region path string true "Region (East, West, South, Midwest)"
// @Success 200 {array} models.Matchup
// @Failure 404 {object} map[string]string "Unknown region"
// @Router /regions/{region}/matchups [get]
func (h *Handler) GetRegionMatchups(w http.ResponseWriter, r *http.Request) {
	region, ok := models.ParseRegion(chi.URLParam(r, "region"))
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Unknown region")
		return
	}
	h.jsonResponse(w, http.StatusOK, h.bracket.RegionMatchups(region))
}

// GetMatchupDetail returns the analysis panel of one matchup
// @Summary Matchup analysis
// @Tags Bracket
// @Produce json
// @Param region path string true "Region"
// @Param index path int true "Zero-based matchup index within the region"
// @Success 200 {object} models.MatchupDetail
// @Failure 400 {object} map[string]string "Bad index"
// @Failure 404 {object} map[string]string "Unknown region or matchup"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /regions/{region}/matchups/{index} [get]
func (h *Handler) GetMatchupDetail(w http.ResponseWriter, r *http.Request) {
	region, ok := models.ParseRegion(chi.URLParam(r, "region"))
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Unknown region")
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Matchup index must be an integer")
		return
	}

	detail, err := h.bracket.MatchupDetail(region, index)
	if err != nil {
		switch {
		case errors.Is(err, logic.ErrUnknownRegion), errors.Is(err, logic.ErrMatchupNotFound):
			h.errorResponse(w, http.StatusNotFound, err.Error())
		default:
			h.logger.Errorw("Failed to build matchup detail", "region", region, "index", index, "error", err)
			h.errorResponse(w, http.StatusInternalServerError, "Failed to build matchup detail")
		}
		return
	}

	h.jsonResponse(w, http.StatusOK, detail)
}
