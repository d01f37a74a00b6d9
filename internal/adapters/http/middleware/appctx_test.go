package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/workitem-service/internal/adapters/http/middleware"
	appctx "github.com/jsamuelsen11/workitem-service/internal/app/context"
)

func TestAppContext_FreshPerRequest(t *testing.T) {
	t.Parallel()

	var seen []*appctx.RequestContext
	h := middleware.AppContext()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = append(seen, appctx.FromContext(r.Context()))
	}))

	serve(h, http.MethodPost, "/api/v1/stories/1/process")
	serve(h, http.MethodPost, "/api/v1/stories/1/process")

	require.Len(t, seen, 2)
	require.NotNil(t, seen[0])
	require.NotNil(t, seen[1])
	assert.NotSame(t, seen[0], seen[1])
}

func TestAppContext_KeepsExisting(t *testing.T) {
	t.Parallel()

	existing := appctx.New()
	var seen *appctx.RequestContext
	h := middleware.AppContext()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = appctx.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req = req.WithContext(appctx.WithRequestContext(req.Context(), existing))
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Same(t, existing, seen)
}
