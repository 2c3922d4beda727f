package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bamacgabhann/county-competitions/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(standingsService services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService}
}

// Competitions godoc
// @Summary List competitions and their divisions
// @Tags standings
// @Produce json
// @Success 200 {array} services.CompetitionSummary
// @Router /competitions [get]
func (h *StandingsHandler) Competitions(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.standingsService.Competitions(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"competitions": summaries}, nil)
}

// DivisionTable godoc
// @Summary Full league tables and knockout fixtures of a division
// @Tags standings
// @Produce json
// @Param divisionID path int true "Division ID"
// @Success 200 {object} services.DivisionTable
// @Router /divisions/{divisionID}/table [get]
func (h *StandingsHandler) DivisionTable(w http.ResponseWriter, r *http.Request) {
	divisionID, err := strconv.Atoi(chi.URLParam(r, "divisionID"))
	if err != nil {
		errorResponse(w, r, http.StatusBadRequest, "invalid division ID")
		return
	}

	table, err := h.standingsService.DivisionTable(r.Context(), divisionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	_ = writeJSON(w, http.StatusOK, table, nil)
}

// GroupTable godoc
// @Summary League table of one group
// @Tags standings
// @Produce json
// @Param groupID path int true "Group ID"
// @Success 200 {object} services.GroupTable
// @Router /groups/{groupID}/table [get]
func (h *StandingsHandler) GroupTable(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.Atoi(chi.URLParam(r, "groupID"))
	if err != nil {
		errorResponse(w, r, http.StatusBadRequest, "invalid group ID")
		return
	}

	table, err := h.standingsService.GroupTable(r.Context(), groupID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	_ = writeJSON(w, http.StatusOK, table, nil)
}

// ResultsByDate godoc
// @Summary Matches on a calendar date
// @Tags standings
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} models.Match
// @Router /results [get]
func (h *StandingsHandler) ResultsByDate(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		errorResponse(w, r, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
		return
	}

	matches, err := h.standingsService.ResultsByDate(r.Context(), date)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	_ = writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil)
}

// Fixtures godoc
// @Summary Unplayed fixtures of a division
// @Tags standings
// @Produce json
// @Param divisionID path int true "Division ID"
// @Success 200 {array} models.Match
// @Router /divisions/{divisionID}/fixtures [get]
func (h *StandingsHandler) Fixtures(w http.ResponseWriter, r *http.Request) {
	divisionID, err := strconv.Atoi(chi.URLParam(r, "divisionID"))
	if err != nil {
		errorResponse(w, r, http.StatusBadRequest, "invalid division ID")
		return
	}

	fixtures, err := h.standingsService.Fixtures(r.Context(), divisionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	_ = writeJSON(w, http.StatusOK, jsonResponse{"fixtures": fixtures}, nil)
}
