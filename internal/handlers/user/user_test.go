package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/solrps/arena/internal/domain"
	"github.com/solrps/arena/internal/dto"
	userservice "github.com/solrps/arena/internal/service/userservice"
	"github.com/solrps/arena/pkg/identity"
)

func NewMock(t *testing.T) (*UserHandler, *MockService, *MockMatchService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	matchService := NewMockMatchService(ctrl)
	handler := New(service, matchService)
	return handler, service, matchService
}

func authedRequest(method, target, userID string, body []byte) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	if userID == "" {
		return r
	}
	return r.WithContext(context.WithValue(r.Context(), identity.UserIDKey, userID))
}

func TestRegisterHandler(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterRequestDTO{UserID: "alice", DisplayName: "Alice"})

	tests := []struct {
		name         string
		body         []byte
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Created with seed balance",
			body: body,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "alice", "Alice").
					Return(&domain.User{ID: "alice", DisplayName: "Alice", Balance: 1000}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Malformed body",
			body:         []byte("{"),
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Duplicate id",
			body: body,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "alice", "Alice").
					Return(nil, userservice.ErrUserExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Empty id",
			body: body,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "alice", "Alice").
					Return(nil, userservice.ErrInvalidID)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _ := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(service)
			}

			w := httptest.NewRecorder()
			handler.Register(w, authedRequest(http.MethodPost, "/api/user/register", "", tt.body))
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp dto.UserResponseDTO
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, int64(1000), resp.Balance)
			}
		})
	}
}

func TestGetMeHandler(t *testing.T) {
	t.Run("Profile returned", func(t *testing.T) {
		handler, service, _ := NewMock(t)
		service.EXPECT().Get(gomock.Any(), "alice").
			Return(&domain.User{ID: "alice", Balance: 700}, nil)

		w := httptest.NewRecorder()
		handler.GetMe(w, authedRequest(http.MethodGet, "/api/user/me", "alice", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.UserResponseDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(700), resp.Balance)
	})

	t.Run("Unregistered caller", func(t *testing.T) {
		handler, service, _ := NewMock(t)
		service.EXPECT().Get(gomock.Any(), "ghost").Return(nil, userservice.ErrUserNotFound)

		w := httptest.NewRecorder()
		handler.GetMe(w, authedRequest(http.MethodGet, "/api/user/me", "ghost", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetMatchesHandler(t *testing.T) {
	t.Run("History returned", func(t *testing.T) {
		handler, _, matchService := NewMock(t)
		matchService.EXPECT().GetMatches(gomock.Any(), "alice").Return([]domain.SettledMatch{
			{
				MatchResult: domain.MatchResult{SessionID: "sess-1", PayoutWinner: 540, WinnerUserID: "alice"},
				CreatorID:   "alice", ChallengerID: "bob",
			},
		}, nil)

		w := httptest.NewRecorder()
		handler.GetMatches(w, authedRequest(http.MethodGet, "/api/user/matches", "alice", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp []dto.MatchHistoryItemDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "bob", resp[0].ChallengerID)
	})

	t.Run("Empty history", func(t *testing.T) {
		handler, _, matchService := NewMock(t)
		matchService.EXPECT().GetMatches(gomock.Any(), "alice").Return(nil, nil)

		w := httptest.NewRecorder()
		handler.GetMatches(w, authedRequest(http.MethodGet, "/api/user/matches", "alice", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
