package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	lifthttp "github.com/MrJamesThe3rd/liftdesk/internal/http"
)

func TestNew(t *testing.T) {
	router := lifthttp.New(lifthttp.Handlers{}, lifthttp.Options{AllowedOrigins: []string{"http://localhost:3000"}})

	type testCase struct {
		name       string
		method     string
		path       string
		headers    map[string]string
		wantStatus int
		wantHeader map[string]string
	}

	tests := []testCase{
		{
			name:       "Health",
			method:     http.MethodGet,
			path:       "/healthz",
			wantStatus: http.StatusOK,
		},
		{
			name:   "Preflight",
			method: http.MethodOptions,
			path:   "/api/v1/amcs",
			headers: map[string]string{
				"Origin":                        "http://localhost:3000",
				"Access-Control-Request-Method": http.MethodPost,
			},
			wantStatus: http.StatusOK,
			wantHeader: map[string]string{"Access-Control-Allow-Origin": "http://localhost:3000"},
		},
		{
			name:       "UnknownRoute",
			method:     http.MethodGet,
			path:       "/api/v2/amcs",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "RejectsNonJSONBody",
			method:     http.MethodPost,
			path:       "/api/v1/customers",
			headers:    map[string]string{"Content-Type": "text/plain"},
			wantStatus: http.StatusUnsupportedMediaType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.method == http.MethodPost {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader("hello"))
			}

			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			for k, v := range tt.wantHeader {
				assert.Equal(t, v, rec.Header().Get(k))
			}
		})
	}
}
