package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bamacgabhann/county-competitions/models"
	"github.com/bamacgabhann/county-competitions/services"
)

const maxCrestUploadBytes = 5 << 20 // 5MB

type ClubHandler struct {
	clubService services.ClubService
}

func NewClubHandler(clubService services.ClubService) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

// List godoc
// @Summary List all clubs
// @Tags clubs
// @Produce json
// @Success 200 {array} models.Club
// @Router /clubs [get]
func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.clubService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"clubs": clubs}, nil)
}

// Get godoc
// @Summary Get one club
// @Tags clubs
// @Produce json
// @Param clubID path int true "Club ID"
// @Success 200 {object} models.Club
// @Router /clubs/{clubID} [get]
func (h *ClubHandler) Get(w http.ResponseWriter, r *http.Request) {
	clubID, err := strconv.Atoi(chi.URLParam(r, "clubID"))
	if err != nil {
		errorResponse(w, r, http.StatusBadRequest, "invalid club ID")
		return
	}

	club, err := h.clubService.Get(r.Context(), clubID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"club": club}, nil)
}

// Create godoc
// @Summary Register a club
// @Tags clubs
// @Accept json
// @Produce json
// @Param input body models.Club true "Club"
// @Success 201 {object} models.Club
// @Security BearerAuth
// @Router /clubs [post]
func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	var club models.Club
	if err := readJSON(w, r, &club); err != nil {
		errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.clubService.Create(r.Context(), &club); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusCreated, jsonResponse{"club": club}, nil)
}

// ListVenues godoc
// @Summary List all venues
// @Tags clubs
// @Produce json
// @Success 200 {array} models.Venue
// @Router /venues [get]
func (h *ClubHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := h.clubService.ListVenues(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"venues": venues}, nil)
}

// CreateVenue godoc
// @Summary Register a venue
// @Tags clubs
// @Accept json
// @Produce json
// @Param input body models.Venue true "Venue"
// @Success 201 {object} models.Venue
// @Security BearerAuth
// @Router /venues [post]
func (h *ClubHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var venue models.Venue
	if err := readJSON(w, r, &venue); err != nil {
		errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.clubService.CreateVenue(r.Context(), &venue); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusCreated, jsonResponse{"venue": venue}, nil)
}

// ListReferees godoc
// @Summary List all referees
// @Tags clubs
// @Produce json
// @Success 200 {array} models.Referee
// @Router /referees [get]
func (h *ClubHandler) ListReferees(w http.ResponseWriter, r *http.Request) {
	referees, err := h.clubService.ListReferees(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, jsonResponse{"referees": referees}, nil)
}

// CreateReferee godoc
// @Summary Register a referee
// @Tags clubs
// @Accept json
// @Produce json
// @Param input body models.Referee true "Referee"
// @Success 201 {object} models.Referee
// @Security BearerAuth
// @Router /referees [post]
func (h *ClubHandler) CreateReferee(w http.ResponseWriter, r *http.Request) {
	var referee models.Referee
	if err := readJSON(w, r, &referee); err != nil {
		errorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.clubService.CreateReferee(r.Context(), &referee); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusCreated, jsonResponse{"referee": referee}, nil)
}

// UploadCrest godoc
// @Summary Upload a club crest image
// @Tags clubs
// @Accept mpfd
// @Produce json
// @Param clubID path int true "Club ID"
// @Param crest formData file true "Crest image"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /clubs/{clubID}/crest [put]
func (h *ClubHandler) UploadCrest(w http.ResponseWriter, r *http.Request) {
	clubID, err := strconv.Atoi(chi.URLParam(r, "clubID"))
	if err != nil {
		errorResponse(w, r, http.StatusBadRequest, "invalid club ID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxCrestUploadBytes)
	if err := r.ParseMultipartForm(maxCrestUploadBytes); err != nil {
		errorResponse(w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("crest")
	if err != nil {
		errorResponse(w, r, http.StatusBadRequest, "crest file is required")
		return
	}
	defer file.Close()

	url, err := h.clubService.UploadCrest(r.Context(), clubID, header.Header.Get("Content-Type"), file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	_ = writeJSON(w, http.StatusOK, jsonResponse{"crest_url": url}, nil)
}
