//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dinner-club/internal/handler/httperr"
	"dinner-club/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	Success bool `json:"success"`
	Error   struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

func run(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, body) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", h)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var b body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	return rec, b
}

func TestStatusOf(t *testing.T) {
	cases := map[errs.Kind]int{
		errs.KindNotFound:             http.StatusNotFound,
		errs.KindUnauthorized:         http.StatusForbidden,
		errs.KindValidation:           http.StatusBadRequest,
		errs.KindDeadlinePassed:       http.StatusBadRequest,
		errs.KindDuplicateReservation: http.StatusBadRequest,
		errs.KindAlreadyCancelled:     http.StatusBadRequest,
		errs.KindEventFull:            http.StatusBadRequest,
		errs.KindEventNotBookable:     http.StatusBadRequest,
		errs.KindInvalidToken:         http.StatusBadRequest,
		errs.KindTokenExpired:         http.StatusBadRequest,
		errs.Kind("SOMETHING_ELSE"):   http.StatusInternalServerError,
	}
	for kind, want := range cases {
		t.Run(string(kind), func(t *testing.T) {
			assert.Equal(t, want, httperr.StatusOf(kind))
		})
	}
}

func TestAbort(t *testing.T) {
	t.Run("タグ付きエラーは種別とメッセージをそのまま返す", func(t *testing.T) {
		err := errs.Wrap(errs.Tagged(errs.KindEventFull, "Event is full").WithDetail("remaining", 0), "create reservation")

		rec, b := run(t, func(c *gin.Context) { httperr.Abort(c, err) })

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, b.Success)
		assert.Equal(t, "EVENT_FULL", b.Error.Kind)
		assert.Equal(t, "Event is full", b.Error.Message)
		assert.Equal(t, float64(0), b.Detail["remaining"])
	})

	t.Run("タグなしエラーは内部情報を漏らさない", func(t *testing.T) {
		rec, b := run(t, func(c *gin.Context) {
			httperr.Abort(c, errors.New("pq: relation \"reservations\" does not exist"))
		})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", b.Error.Message)
		assert.Empty(t, b.Error.Kind)
		assert.NotContains(t, rec.Body.String(), "relation")
	})

	t.Run("ginのエラースタックに元のエラーが残る", func(t *testing.T) {
		orig := errs.Tagged(errs.KindNotFound, "Event not found")
		var captured []*gin.Error

		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.GET("/", func(c *gin.Context) {
			httperr.Abort(c, orig)
			captured = c.Errors
		})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Len(t, captured, 1)
		assert.ErrorIs(t, captured[0].Err, orig)
		assert.True(t, captured[0].IsType(gin.ErrorTypePublic))

		resp, ok := captured[0].Meta.(httperr.Response)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, resp.Status)
		assert.Equal(t, "Event not found", resp.Error.Message)
	})
}

func TestAbortValidation(t *testing.T) {
	rec, b := run(t, func(c *gin.Context) {
		httperr.AbortValidation(c, errors.New("bind failed"), "Invalid request body")
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION", b.Error.Kind)
	assert.Equal(t, "Invalid request body", b.Error.Message)
}

func TestAbortWithErrorNilPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "x", nil)
	})
}
