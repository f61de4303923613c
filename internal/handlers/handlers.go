package handlers

import (
	"net/http"

	_ "github.com/solrps/arena/docs"
	leaderboardhandlers "github.com/solrps/arena/internal/handlers/leaderboard"
	sessionhandlers "github.com/solrps/arena/internal/handlers/session"
	userhandlers "github.com/solrps/arena/internal/handlers/user"
	"github.com/solrps/arena/internal/service"
	"github.com/solrps/arena/pkg/identity"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type UserHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	GetMe(w http.ResponseWriter, r *http.Request)
	GetMatches(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	CreateSession(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	ListOpen(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	JoinSession(w http.ResponseWriter, r *http.Request)
	RevealSession(w http.ResponseWriter, r *http.Request)
	ForfeitSession(w http.ResponseWriter, r *http.Request)
	CancelSession(w http.ResponseWriter, r *http.Request)
}

type LeaderboardHandler interface {
	GetLeaderboard(w http.ResponseWriter, r *http.Request)
	GetRewards(w http.ResponseWriter, r *http.Request)
	ClaimReward(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler        UserHandler
	SessionHandler     SessionHandler
	LeaderboardHandler LeaderboardHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		UserHandler:        userhandlers.New(s.UserService, s.MatchService),
		SessionHandler:     sessionhandlers.New(s.SessionService),
		LeaderboardHandler: leaderboardhandlers.New(s.WeeklyService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.UserHandler.Register)
		r.Get("/leaderboard", h.LeaderboardHandler.GetLeaderboard)
		r.Get("/sessions", h.SessionHandler.ListOpen)
		r.Get("/sessions/{sessionID}", h.SessionHandler.GetSession)

		r.Group(func(r chi.Router) {
			r.Use(identity.Middleware)
			r.Route("/user", func(r chi.Router) {
				r.Get("/me", h.UserHandler.GetMe)
				r.Get("/matches", h.UserHandler.GetMatches)
				r.Get("/sessions", h.SessionHandler.ListMine)
				r.Get("/rewards", h.LeaderboardHandler.GetRewards)
				r.Post("/rewards/{rewardID}/claim", h.LeaderboardHandler.ClaimReward)
			})
			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", h.SessionHandler.CreateSession)
				r.Post("/{sessionID}/join", h.SessionHandler.JoinSession)
				r.Post("/{sessionID}/reveal", h.SessionHandler.RevealSession)
				r.Post("/{sessionID}/forfeit", h.SessionHandler.ForfeitSession)
				r.Post("/{sessionID}/cancel", h.SessionHandler.CancelSession)
			})
		})
	})

	return r
}
