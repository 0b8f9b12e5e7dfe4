package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/mlevko/storefront/internal/common"
)

type ctxKey string

const accountIDKey ctxKey = "accountID"

func accountIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(accountIDKey).(string)
	return id
}

// withAuth requires a bearer token and resolves it to an account ID, which is
// placed on the request context for the wrapped handler.
func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		authorization := r.Header.Get(common.AuthorizationHeaderName)
		if authorization == "" || !strings.HasPrefix(authorization, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authorization, "Bearer ")

		accountID, err := s.accounts.ResolveToken(r.Context(), token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, accountID)
		next(w, r.WithContext(ctx))
	}
}
