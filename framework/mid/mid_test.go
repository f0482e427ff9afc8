package mid_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truegloryhair/commerce-reports/framework/mid"
	"github.com/truegloryhair/commerce-reports/framework/web"
)

func newTestApp() *web.App {
	app := web.NewTestApp(nil, mid.Logger(), mid.Errors(), mid.Sentry(), mid.Panics())

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, "OK", http.StatusOK)
	})

	app.Post("/tasks/request-error", func(ctx *gin.Context) error {
		return web.NewRequestError(errors.New("googleapi: Error 403: Access Denied"), http.StatusInternalServerError)
	})

	app.Post("/tasks/bad-request", func(ctx *gin.Context) error {
		return web.NewRequestError(errors.New("percentile must be in (0, 1]"), http.StatusBadRequest)
	})

	app.Post("/tasks/plain-error", func(ctx *gin.Context) error {
		return errors.New("connection reset by peer")
	})

	app.Post("/tasks/panic", func(ctx *gin.Context) error {
		var summary map[string]int
		summary["checkouts"]++

		return nil
	})

	return app
}

func TestMiddlewares(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "health",
			method:     http.MethodGet,
			path:       "/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "request error keeps the message",
			method:     http.MethodPost,
			path:       "/tasks/request-error",
			wantStatus: http.StatusInternalServerError,
			wantError:  "googleapi: Error 403: Access Denied",
		},
		{
			name:       "bad request",
			method:     http.MethodPost,
			path:       "/tasks/bad-request",
			wantStatus: http.StatusBadRequest,
			wantError:  "percentile must be in (0, 1]",
		},
		{
			name:       "unexpected error is hidden",
			method:     http.MethodPost,
			path:       "/tasks/plain-error",
			wantStatus: http.StatusInternalServerError,
			wantError:  http.StatusText(http.StatusInternalServerError),
		},
		{
			name:       "panic is recovered",
			method:     http.MethodPost,
			path:       "/tasks/panic",
			wantStatus: http.StatusInternalServerError,
			wantError:  http.StatusText(http.StatusInternalServerError),
		},
	}

	app := newTestApp()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			app.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantError == "" {
				return
			}

			var resp web.ErrorResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}
