package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	cases := map[string]string{
		"/":                    "/",
		"/messages":            "/messages",
		"/messages/17":         "/messages/:id",
		"/accounts":            "/accounts",
		"/accounts/3/messages": "/accounts/:id/messages",
		"/register":            "/register",
		"/login":               "/login",
	}
	for raw, want := range cases {
		require.Equal(t, want, canonicalPath(raw), "path %s", raw)
	}
}

func TestInstrumentHandlerPassesThrough(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	resp := httptest.NewRecorder()
	InstrumentHandler(ok).ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/register", nil))

	require.Equal(t, http.StatusConflict, resp.Code)
}
