//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"dinner-club/internal/handler/api"
	resdto "dinner-club/internal/handler/dto/response"
	"dinner-club/internal/pkg/clock"
	"dinner-club/internal/pkg/config"
	"dinner-club/internal/usecase/commands"
	"dinner-club/tests/common/httptest"
	commandsmock "dinner-club/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCronHandlerCleanup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	url := "/cron/cleanup-past-events"
	cfg := config.NewTestConfig()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*gin.Engine, *commandsmock.MockCleanupCommands) {
		ctrl := gomock.NewController(t)
		cleanup := commandsmock.NewMockCleanupCommands(ctrl)
		h := api.NewCronHandler(cleanup, cfg, clock.NewMockClock(now))
		r := gin.New()
		r.GET(url, h.CleanupPastEvents)
		r.POST(url, h.CleanupPastEvents)
		return r, cleanup
	}

	t.Run("正しいシークレットで削除件数を返す", func(t *testing.T) {
		r, cleanup := setup(t)
		cutoff := now.AddDate(0, 0, -30)
		cleanup.EXPECT().CleanupPastEvents(gomock.Any()).Return(&commands.CleanupResult{Deleted: 4, Cutoff: cutoff}, nil).Times(1)

		rec := httptest.PerformRequest(t, r, http.MethodPost, url, nil, cfg.Cron.Secret)

		var res resdto.Envelope[resdto.CleanupResponse]
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.EqualValues(t, 4, res.Data.DeletedCount)
		assert.True(t, cutoff.Equal(res.Data.Cutoff))
		assert.True(t, now.Equal(res.Data.Timestamp))
		assert.Equal(t, "Successfully cleaned up 4 past events", res.Message)
	})

	t.Run("GETでも実行できる", func(t *testing.T) {
		r, cleanup := setup(t)
		cleanup.EXPECT().CleanupPastEvents(gomock.Any()).Return(&commands.CleanupResult{}, nil).Times(1)

		rec := httptest.PerformRequest(t, r, http.MethodGet, url, nil, cfg.Cron.Secret)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("シークレット不一致は401", func(t *testing.T) {
		for _, token := range []string{"", "wrong", cfg.Cron.Secret + "x"} {
			r, _ := setup(t)
			rec := httptest.PerformRequest(t, r, http.MethodPost, url, nil, token)
			httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Unauthorized")
		}
	})

	t.Run("内部エラーは500", func(t *testing.T) {
		r, cleanup := setup(t)
		cleanup.EXPECT().CleanupPastEvents(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(t, r, http.MethodPost, url, nil, cfg.Cron.Secret)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
