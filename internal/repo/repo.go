package repo

import (
	"github.com/solrps/arena/internal/pg"
	resultrepo "github.com/solrps/arena/internal/repo/result-repo"
	sessionrepo "github.com/solrps/arena/internal/repo/session-repo"
	userrepo "github.com/solrps/arena/internal/repo/user-repo"
	weeklyrepo "github.com/solrps/arena/internal/repo/weekly-repo"
)

type Repositories struct {
	UserRepo    *userrepo.Repository
	SessionRepo *sessionrepo.Repository
	ResultRepo  *resultrepo.Repository
	WeeklyRepo  *weeklyrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		SessionRepo: sessionrepo.New(conn),
		ResultRepo:  resultrepo.New(conn),
		WeeklyRepo:  weeklyrepo.New(conn),
	}
}
