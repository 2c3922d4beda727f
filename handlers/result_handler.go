package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bamacgabhann/county-competitions/services"
)

type ResultHandler struct {
	resultService services.ResultService
}

func NewResultHandler(resultService services.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// RecordResult godoc
// @Summary Record a match result and update standings
// @Tags results
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param input body services.RecordResultInput true "Result"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /matches/{matchID}/result [post]
func (h *ResultHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	matchID, err := strconv.Atoi(chi.URLParam(r, "matchID"))
	if err != nil {
		errorResponse(w, r, http.StatusBadRequest, "invalid match ID")
		return
	}

	var input services.RecordResultInput
	if err := readJSON(w, r, &input); err != nil {
		errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	input.MatchID = matchID

	if err := h.resultService.RecordResult(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	_ = writeJSON(w, http.StatusOK, jsonResponse{"status": "result recorded"}, nil)
}

// RecordResults godoc
// @Summary Record a batch of results
// @Tags results
// @Accept json
// @Produce json
// @Param input body []services.RecordResultInput true "Results"
// @Success 200 {object} map[string]int
// @Security BearerAuth
// @Router /results [post]
func (h *ResultHandler) RecordResults(w http.ResponseWriter, r *http.Request) {
	var inputs []services.RecordResultInput
	if err := readJSON(w, r, &inputs); err != nil {
		errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	applied, err := h.resultService.RecordResults(r.Context(), inputs)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	_ = writeJSON(w, http.StatusOK, jsonResponse{
		"applied": applied,
		"skipped": len(inputs) - applied,
	}, nil)
}

// RecomputeDivision godoc
// @Summary Replay all results of a division from scratch
// @Tags results
// @Produce json
// @Param divisionID path int true "Division ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /divisions/{divisionID}/recompute [post]
func (h *ResultHandler) RecomputeDivision(w http.ResponseWriter, r *http.Request) {
	divisionID, err := strconv.Atoi(chi.URLParam(r, "divisionID"))
	if err != nil {
		errorResponse(w, r, http.StatusBadRequest, "invalid division ID")
		return
	}

	if err := h.resultService.RecomputeDivision(r.Context(), divisionID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	_ = writeJSON(w, http.StatusOK, jsonResponse{"status": "division recomputed"}, nil)
}
