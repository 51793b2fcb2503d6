package handlers

import (
	"net/http"
	"strconv"

	"github.com/bracketlab/bracket-stats/internal/models"
)

// GetRegionStats returns upset counts per region
// @Summary Region upset statistics
// @Description rule=legacy counts only team1 wins where team1 holds the larger seed; rule=seed counts any win by the larger seed
// @Tags Stats
// @Produce json
// @Param rule query string false "Upset rule (legacy, seed)"
// @Success 200 {array} models.RegionUpsetStats
// @Failure 400 {object} map[string]string "Unknown rule"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats/regions [get]
func (h *Handler) GetRegionStats(w http.ResponseWriter, r *http.Request) {
	rule, ok := h.parseRule(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Unknown upset rule")
		return
	}

	stats, err := h.bracket.RegionUpsetStats(rule)
	if err != nil {
		h.logger.Errorw("Failed to compute region stats", "rule", rule, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute region stats")
		return
	}
	h.jsonResponse(w, http.StatusOK, stats)
}

// GetMatchupSummaries returns every matchup as a flattened record
// @Summary Flattened matchups
// @Tags Stats
// @Produce json
// @Success 200 {array} models.MatchupSummary
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats/matchups [get]
func (h *Handler) GetMatchupSummaries(w http.ResponseWriter, r *http.Request) {
	records, err := h.bracket.Matchups()
	if err != nil {
		h.logger.Errorw("Failed to flatten matchups", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to flatten matchups")
		return
	}
	h.jsonResponse(w, http.StatusOK, records)
}

// GetTopUpsets returns the highest-probability upsets with their analyses
// @Summary Top upsets
// @Tags Stats
// @Produce json
// @Param threshold query number false "Minimum upset probability in percent (default 30)"
// @Param limit query int false "Maximum number of results (default 5)"
// @Success 200 {array} models.UpsetHighlight
// @Failure 400 {object} map[string]string "Bad parameter"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats/upsets [get]
func (h *Handler) GetTopUpsets(w http.ResponseWriter, r *http.Request) {
	threshold, limit, ok := h.parseUpsetParams(w, r)
	if !ok {
		return
	}

	upsets, err := h.bracket.TopUpsets(threshold, limit)
	if err != nil {
		h.logger.Errorw("Failed to compute top upsets", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute top upsets")
		return
	}
	h.jsonResponse(w, http.StatusOK, upsets)
}

// GetChampionSplit returns the champion probability split
// @Summary Champion probability
// @Tags Stats
// @Produce json
// @Success 200 {object} models.ChampionSplit
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /stats/champion [get]
func (h *Handler) GetChampionSplit(w http.ResponseWriter, r *http.Request) {
	split, err := h.bracket.ChampionSplit()
	if err != nil {
		h.logger.Errorw("Failed to compute champion split", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute champion split")
		return
	}
	h.jsonResponse(w, http.StatusOK, split)
}

func (h *Handler) parseRule(r *http.Request) (models.UpsetRule, bool) {
	raw := r.URL.Query().Get("rule")
	if raw == "" {
		return h.upsetRule, true
	}
	return models.ParseUpsetRule(raw)
}

// parseUpsetParams reads threshold and limit, writing a 400 on bad input
func (h *Handler) parseUpsetParams(w http.ResponseWriter, r *http.Request) (float64, int, bool) {
	threshold := h.upsetThreshold
	limit := h.upsetLimit

	q := r.URL.Query()
	if v := q.Get("threshold"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "threshold must be a number")
			return 0, 0, false
		}
		threshold = t
	}
	if v := q.Get("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "limit must be an integer")
			return 0, 0, false
		}
		limit = l
	}
	return threshold, limit, true
}
