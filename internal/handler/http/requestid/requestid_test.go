package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	assert.Equal(t, "abc", FromContext(WithRequestID(context.Background(), "abc")))
	assert.Equal(t, "", FromContext(context.Background()))
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "propagates existing id", incoming: "existing-request-id-456", keep: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces id with spaces", incoming: "bad id"},
		{name: "replaces id with newline", incoming: "bad\nid"},
		{name: "replaces oversized id", incoming: strings.Repeat("a", maxLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured string
			h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured = FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/articles", nil)
			if tt.incoming != "" {
				req.Header.Set(Header, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, captured, rec.Header().Get(Header))
			if tt.keep {
				assert.Equal(t, tt.incoming, captured)
				return
			}
			_, err := uuid.Parse(captured)
			require.NoError(t, err, "expected a generated UUID, got %q", captured)
		})
	}
}

func TestMiddleware_UniquePerRequest(t *testing.T) {
	seen := map[string]bool{}
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[FromContext(r.Context())] = true
	}))

	for i := 0; i < 10; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Len(t, seen, 10)
}
