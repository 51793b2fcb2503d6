package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bracketlab/bracket-stats/internal/charts"
	"github.com/bracketlab/bracket-stats/internal/models"
)

// GetChart renders one of the dashboard charts
// @Summary Chart image
// @Tags Charts
// @Produce png
// @Produce image/svg+xml
// @Param chart path string true "Chart (regions, upsets, champion)"
// @Param format path string true "Image format (png, svg)"
// @Param rule query string false "Upset rule for the regions chart"
// @Param threshold query number false "Threshold for the upsets chart"
// @Param limit query int false "Limit for the upsets chart"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Bad format or parameter"
// @Failure 404 {object} map[string]string "Unknown chart or nothing to plot"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /charts/{chart}.{format} [get]
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "chart")
	format, err := charts.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	switch name {
	case "regions":
		rule, ok := h.parseRule(r)
		if !ok {
			h.errorResponse(w, http.StatusBadRequest, "Unknown upset rule")
			return
		}
		stats, serr := h.bracket.RegionUpsetStats(rule)
		if serr != nil {
			err = serr
			break
		}
		err = h.charts.RegionUpsets(&buf, stats, format)

	case "upsets":
		threshold, limit, ok := h.parseUpsetParams(w, r)
		if !ok {
			return
		}
		upsets, serr := h.bracket.TopUpsets(threshold, limit)
		if serr != nil {
			err = serr
			break
		}
		records := make([]models.MatchupSummary, len(upsets))
		for i, u := range upsets {
			records[i] = u.MatchupSummary
		}
		err = h.charts.TopUpsets(&buf, records, format)

	case "champion":
		split, serr := h.bracket.ChampionSplit()
		if serr != nil {
			err = serr
			break
		}
		err = h.charts.Champion(&buf, split, format)

	default:
		h.errorResponse(w, http.StatusNotFound, "Unknown chart")
		return
	}

	if err != nil {
		if errors.Is(err, charts.ErrNoData) {
			h.errorResponse(w, http.StatusNotFound, "Nothing to plot")
			return
		}
		h.logger.Errorw("Failed to render chart", "chart", name, "format", format, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to render chart")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
