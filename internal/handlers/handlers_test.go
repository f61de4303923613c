package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/solrps/arena/docs"
	"github.com/solrps/arena/internal/handlers/leaderboard"
	"github.com/solrps/arena/internal/handlers/session"
	"github.com/solrps/arena/internal/handlers/user"
	"github.com/solrps/arena/internal/service"
	"github.com/solrps/arena/pkg/identity"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		UserService:    user.NewMockService(ctrl),
		SessionService: session.NewMockService(ctrl),
		MatchService:   user.NewMockMatchService(ctrl),
		WeeklyService:  leaderboard.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserHandler := NewMockUserHandler(ctrl)
	mockSessionHandler := NewMockSessionHandler(ctrl)
	mockLeaderboardHandler := NewMockLeaderboardHandler(ctrl)

	mockUserHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().GetMe(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().GetMatches(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().CreateSession(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().GetSession(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().ListOpen(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().ListMine(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().JoinSession(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().RevealSession(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().ForfeitSession(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().CancelSession(gomock.Any(), gomock.Any()).AnyTimes()
	mockLeaderboardHandler.EXPECT().GetLeaderboard(gomock.Any(), gomock.Any()).AnyTimes()
	mockLeaderboardHandler.EXPECT().GetRewards(gomock.Any(), gomock.Any()).AnyTimes()
	mockLeaderboardHandler.EXPECT().ClaimReward(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		UserHandler:        mockUserHandler,
		SessionHandler:     mockSessionHandler,
		LeaderboardHandler: mockLeaderboardHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		authed bool
		status int
	}{
		{http.MethodPost, "/api/user/register", false, http.StatusOK},
		{http.MethodGet, "/api/leaderboard", false, http.StatusOK},
		{http.MethodGet, "/api/sessions", false, http.StatusOK},
		{http.MethodGet, "/api/sessions/sess-1", false, http.StatusOK},
		{http.MethodGet, "/api/user/me", true, http.StatusOK},
		{http.MethodGet, "/api/user/matches", true, http.StatusOK},
		{http.MethodGet, "/api/user/sessions", true, http.StatusOK},
		{http.MethodGet, "/api/user/rewards", true, http.StatusOK},
		{http.MethodPost, "/api/user/rewards/reward-1/claim", true, http.StatusOK},
		{http.MethodPost, "/api/sessions/", true, http.StatusOK},
		{http.MethodPost, "/api/sessions/sess-1/join", true, http.StatusOK},
		{http.MethodPost, "/api/sessions/sess-1/reveal", true, http.StatusOK},
		{http.MethodPost, "/api/sessions/sess-1/forfeit", true, http.StatusOK},
		{http.MethodPost, "/api/sessions/sess-1/cancel", true, http.StatusOK},
		// Authenticated routes reject an anonymous caller outright.
		{http.MethodGet, "/api/user/me", false, http.StatusUnauthorized},
		{http.MethodPost, "/api/sessions/sess-1/join", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(tt.method, tt.url, nil)
		if tt.authed {
			r.Header.Set(identity.Header, "alice")
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		assert.Equal(t, tt.status, w.Code, "%s %s", tt.method, tt.url)
	}
}
