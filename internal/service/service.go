package service

import (
	"time"

	"github.com/solrps/arena/internal/handlers/leaderboard"
	"github.com/solrps/arena/internal/handlers/session"
	"github.com/solrps/arena/internal/handlers/user"

	"github.com/solrps/arena/internal/pg"
	"github.com/solrps/arena/internal/repo"
	sessionservice "github.com/solrps/arena/internal/service/sessionservice"
	userservice "github.com/solrps/arena/internal/service/userservice"
	weeklyservice "github.com/solrps/arena/internal/service/weeklyservice"
)

type Services struct {
	UserService    user.Service
	SessionService session.Service
	MatchService   user.MatchService
	WeeklyService  leaderboard.Service

	// Weekly is the concrete weekly service; the background distributor needs
	// methods the HTTP surface does not expose.
	Weekly *weeklyservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, revealWindow time.Duration, seedBalance int64) *Services {
	sessionService := sessionservice.New(repo.SessionRepo, repo.UserRepo, repo.ResultRepo, txManager, revealWindow)
	userService := userservice.New(repo.UserRepo, seedBalance)
	weeklyService := weeklyservice.New(repo.WeeklyRepo, repo.ResultRepo, repo.UserRepo, txManager)

	return &Services{
		UserService:    userService,
		SessionService: sessionService,
		MatchService:   sessionService,
		WeeklyService:  weeklyService,
		Weekly:         weeklyService,
	}
}
