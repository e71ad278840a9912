package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"

	"github.com/ghs-carnival/carnival-server/handlers"
	"github.com/ghs-carnival/carnival-server/middleware"
)

// SetupRoutes wires every endpoint onto the router. Public reads need no
// auth; everything under /admin requires a bearer token, and sport catalog
// management additionally requires the SUPER_ADMIN role.
func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	authenticator *middleware.Authenticator,
	authHandler *handlers.AuthHandler,
	sportHandler *handlers.SportHandler,
	matchHandler *handlers.MatchHandler,
	announcementHandler *handlers.AnnouncementHandler,
	streamHandler *handlers.StreamHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Post("/auth/login", authHandler.Login)

	router.Route("/public", func(r chi.Router) {
		r.Get("/sports", sportHandler.ListSports)
		r.Get("/sports/{sportSlug}", sportHandler.GetSportBySlug)

		r.Get("/matches", matchHandler.ListMatches)
		r.Get("/matches/{matchID}", matchHandler.GetMatch)
		r.Get("/matches/{matchID}/view", matchHandler.GetMatchView)

		r.Get("/announcements", announcementHandler.ListAnnouncements)
	})

	router.Route("/stream", func(r chi.Router) {
		r.Get("/live", streamHandler.StreamLive)
		r.Get("/sports/{sportSlug}", streamHandler.StreamSport)
		r.Get("/matches/{matchID}", streamHandler.StreamMatch)
	})

	router.Route("/ws", func(r chi.Router) {
		r.Get("/live", webSocketHandler.Live)
		r.Get("/matches/{matchID}", webSocketHandler.Match)
	})

	router.Route("/admin", func(r chi.Router) {
		r.Use(authenticator.Authenticate)

		r.Get("/me", authHandler.Me)

		r.Route("/matches", func(r chi.Router) {
			r.Post("/", matchHandler.CreateMatch)
			r.Patch("/{matchID}", matchHandler.UpdateMatch)
			r.Delete("/{matchID}", matchHandler.DeleteMatch)
			r.Put("/{matchID}/score", matchHandler.UpdateScore)
			r.Post("/{matchID}/start", matchHandler.StartMatch)
			r.Post("/{matchID}/complete", matchHandler.CompleteMatch)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSuperAdmin)

			r.Route("/sports", func(r chi.Router) {
				r.Post("/", sportHandler.CreateSport)
				r.Patch("/{sportID}", sportHandler.UpdateSport)
				r.Put("/{sportID}/logo", sportHandler.UploadLogo)
				r.Delete("/{sportID}", sportHandler.DeleteSport)
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Post("/", announcementHandler.CreateAnnouncement)
				r.Patch("/{announcementID}", announcementHandler.UpdateAnnouncement)
				r.Delete("/{announcementID}", announcementHandler.DeleteAnnouncement)
			})
		})
	})
}
