package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/workitem-service/internal/app/context"
)

// AppContext attaches a fresh appctx.RequestContext so board lookups made
// while serving one request are fetched once. A request that already carries
// one keeps it.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if appctx.FromContext(r.Context()) != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(r.Context(), appctx.New())))
		})
	}
}
