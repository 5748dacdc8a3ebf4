//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"dinner-club/internal/handler/api"
	"dinner-club/tests/common/httptest"
	sharedmock "dinner-club/tests/mock/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		dbErr  error
		status int
		body   string
	}{
		{name: "DB接続OK", status: http.StatusOK, body: "Service is healthy"},
		{name: "DB接続NG", dbErr: errors.New("connection refused"), status: http.StatusServiceUnavailable, body: "Database unavailable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uow := sharedmock.NewMockUnitOfWork(ctrl)
			uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).Return(tc.dbErr).Times(1)

			r := gin.New()
			r.GET("/health", api.NewHealthHandler(uow).Check)

			rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, "")
			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.body)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
