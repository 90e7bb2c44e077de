package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	transaction := `{"type":"expense","amount":"120.50","category":"Rent"}`

	// echo reports how many bytes the handler managed to read
	echo := func(c *gin.Context) {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusBadRequest, "read %d bytes: %v", len(data), err)
			return
		}
		c.String(http.StatusOK, "%d", len(data))
	}

	tests := []struct {
		name          string
		limit         int64
		method        string
		body          string
		contentLength int64 // -1 for a chunked body
		wantStatus    int
		wantBody      string
	}{
		{
			name:          "payload under the limit",
			limit:         1 << 10,
			method:        http.MethodPost,
			body:          transaction,
			contentLength: int64(len(transaction)),
			wantStatus:    http.StatusOK,
		},
		{
			name:          "declared length over the limit",
			limit:         32,
			method:        http.MethodPost,
			body:          transaction,
			contentLength: int64(len(transaction)),
			wantStatus:    http.StatusRequestEntityTooLarge,
			wantBody:      "PAYLOAD_TOO_LARGE",
		},
		{
			name:          "chunked body is cut off while reading",
			limit:         32,
			method:        http.MethodPut,
			body:          transaction,
			contentLength: -1,
			wantStatus:    http.StatusBadRequest,
			wantBody:      "request body too large",
		},
		{
			name:       "reads without a body pass",
			limit:      1,
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(BodyLimit(tt.limit))
			router.Handle(tt.method, "/api/v1/finances", echo)

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, "/api/v1/finances", body)
			if tt.body != "" {
				req.ContentLength = tt.contentLength
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}
