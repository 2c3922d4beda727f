package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bamacgabhann/county-competitions/models"
	"github.com/bamacgabhann/county-competitions/services"
)

type PlayerHandler struct {
	playerService services.PlayerService
}

func NewPlayerHandler(playerService services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// Create godoc
// @Summary Register a player
// @Tags players
// @Accept json
// @Produce json
// @Param input body models.Player true "Player"
// @Success 201 {object} models.Player
// @Security BearerAuth
// @Router /players [post]
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var player models.Player
	if err := readJSON(w, r, &player); err != nil {
		errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.playerService.AddPlayer(r.Context(), &player); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusCreated, jsonResponse{"player": player}, nil)
}

// Get godoc
// @Summary Get one player
// @Tags players
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} models.Player
// @Router /players/{playerID} [get]
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.Atoi(chi.URLParam(r, "playerID"))
	if err != nil {
		errorResponse(w, r, http.StatusBadRequest, "invalid player ID")
		return
	}

	player, err := h.playerService.GetPlayer(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil)
}

// RecordParticipation godoc
// @Summary Record a player lining out in a match
// @Tags players
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param input body models.PlayerParticipation true "Participation"
// @Success 201 {object} models.PlayerParticipation
// @Security BearerAuth
// @Router /matches/{matchID}/lineout [post]
func (h *PlayerHandler) RecordParticipation(w http.ResponseWriter, r *http.Request) {
	matchID, err := strconv.Atoi(chi.URLParam(r, "matchID"))
	if err != nil {
		errorResponse(w, r, http.StatusBadRequest, "invalid match ID")
		return
	}

	var participation models.PlayerParticipation
	if err := readJSON(w, r, &participation); err != nil {
		errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	participation.MatchID = matchID

	if err := h.playerService.RecordParticipation(r.Context(), &participation); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusCreated, jsonResponse{"participation": participation}, nil)
}

// MatchLineout godoc
// @Summary List the players who lined out in a match
// @Tags players
// @Produce json
// @Param matchID path int true "Match ID"
// @Success 200 {array} models.PlayerParticipation
// @Router /matches/{matchID}/lineout [get]
func (h *PlayerHandler) MatchLineout(w http.ResponseWriter, r *http.Request) {
	matchID, err := strconv.Atoi(chi.URLParam(r, "matchID"))
	if err != nil {
		errorResponse(w, r, http.StatusBadRequest, "invalid match ID")
		return
	}

	lineout, err := h.playerService.MatchLineout(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"lineout": lineout}, nil)
}
