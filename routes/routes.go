package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/bamacgabhann/county-competitions/handlers"
	"github.com/bamacgabhann/county-competitions/middleware"
	"github.com/bamacgabhann/county-competitions/models"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Results   *handlers.ResultHandler
	Standings *handlers.StandingsHandler
	Clubs     *handlers.ClubHandler
	Players   *handlers.PlayerHandler
	Live      *handlers.LiveHandler
}

func InitRoutes(h Handlers, jwtSecret string) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Post("/auth/register", h.Auth.Register)
	router.Post("/auth/login", h.Auth.Login)

	// Public read surface: tables, fixtures, results, reference data.
	router.Get("/competitions", h.Standings.Competitions)
	router.Get("/divisions/{divisionID}/table", h.Standings.DivisionTable)
	router.Get("/divisions/{divisionID}/fixtures", h.Standings.Fixtures)
	router.Get("/groups/{groupID}/table", h.Standings.GroupTable)
	router.Get("/results", h.Standings.ResultsByDate)
	router.Get("/clubs", h.Clubs.List)
	router.Get("/clubs/{clubID}", h.Clubs.Get)
	router.Get("/venues", h.Clubs.ListVenues)
	router.Get("/referees", h.Clubs.ListReferees)
	router.Get("/players/{playerID}", h.Players.Get)
	router.Get("/matches/{matchID}/lineout", h.Players.MatchLineout)

	router.Get("/divisions/{divisionID}/live", h.Live.Subscribe)

	// Recorders and admins submit results and lineouts.
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Use(middleware.RequireRole(models.RoleRecorder, models.RoleAdmin))

		r.Post("/matches/{matchID}/result", h.Results.RecordResult)
		r.Post("/results", h.Results.RecordResults)
		r.Post("/matches/{matchID}/lineout", h.Players.RecordParticipation)
	})

	// Reference data and recovery operations are admin only.
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Use(middleware.RequireRole(models.RoleAdmin))

		r.Post("/divisions/{divisionID}/recompute", h.Results.RecomputeDivision)
		r.Post("/clubs", h.Clubs.Create)
		r.Put("/clubs/{clubID}/crest", h.Clubs.UploadCrest)
		r.Post("/venues", h.Clubs.CreateVenue)
		r.Post("/referees", h.Clubs.CreateReferee)
		r.Post("/players", h.Players.Create)
	})

	return router
}
