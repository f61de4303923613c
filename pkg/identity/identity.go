package identity

import (
	"context"
	"net/http"

	"github.com/solrps/arena/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

// Header names the caller for every authenticated route. There is no
// credential check behind it; the service trusts its front proxy for that.
const Header = "X-User-ID"

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(Header)
		if userID == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID pulls the caller id set by Middleware from the request context.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}
