package routes

import (
	"github.com/avrusanov/sport-match-manager/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	matchHandler *handlers.MatchHandler,
	tournamentHandler *handlers.TournamentHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	// Cross-origin доступ только для перечисленных origins; разрешён
	// стандартный набор CRUD-методов, заголовки не ограничиваются.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	router.Route("/matches", func(r chi.Router) {
		r.Post("/", matchHandler.CreateHandler)
		r.Get("/", matchHandler.ListHandler)
		r.Put("/{matchID}", matchHandler.UpdateHandler)
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Post("/", tournamentHandler.CreateHandler)
		r.Get("/", tournamentHandler.ListHandler)
		r.Get("/{tournamentID}/matches/", matchHandler.ListByTournamentHandler)
	})
}
