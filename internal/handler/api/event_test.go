//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"dinner-club/internal/domain/event"
	"dinner-club/internal/domain/user"
	"dinner-club/internal/handler/api"
	reqdto "dinner-club/internal/handler/dto/request"
	resdto "dinner-club/internal/handler/dto/response"
	"dinner-club/internal/usecase/commands"
	"dinner-club/internal/usecase/queries"
	"dinner-club/tests/common/httptest"
	"dinner-club/tests/common/testutil"
	commandsmock "dinner-club/tests/mock/commands"
	queriesmock "dinner-club/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEventCommands
	mockQueries  *queriesmock.MockEventQueries
	chefID       uuid.UUID
}

func TestEventHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}

func (s *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEventCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockEventQueries(s.mockCtrl)
	s.chefID = uuid.New()

	h := api.NewEventHandler(s.mockCommands, s.mockQueries)
	s.router.GET("/events", h.List)
	s.router.GET("/events/:id", h.Get)
	s.router.GET("/events/:id/availability", h.Availability)
	s.router.POST("/events", func(c *gin.Context) {
		c.Set("user_id", s.chefID)
		c.Set("user_role", user.RoleChef)
		h.Create(c)
	})
}

func (s *EventHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *EventHandlerTestSuite) TestList() {
	views := []*queries.EventView{
		{ID: uuid.New(), Title: "Sooner", MaxCapacity: 10, ConfirmedGuests: 4, RemainingSpots: 6, Status: "OPEN"},
		{ID: uuid.New(), Title: "Later", MaxCapacity: 8, ConfirmedGuests: 8, RemainingSpots: 0, Status: "FULL"},
	}

	s.Run("正常系: 一覧をcamelCaseで返す", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), 0).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events", nil, "")

		var res resdto.Envelope[[]resdto.EventResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Data, 2)
		s.Equal(6, res.Data[0].RemainingSpots)
		s.Contains(rec.Body.String(), `"remainingSpots"`)
	})

	s.Run("正常系: limitを渡す", func() {
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), 5).Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events?limit=5", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("異常系: limitが範囲外", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events?limit=500", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *EventHandlerTestSuite) TestGet() {
	id := uuid.New()

	s.Run("正常系", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(&queries.EventView{ID: id, Title: "Supper", ChefName: "Chef"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/"+id.String(), nil, "")

		var res resdto.Envelope[resdto.EventResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("Chef", res.Data.ChefName)
	})

	s.Run("異常系: 存在しない", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrEventNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/events/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")
	})
}

func (s *EventHandlerTestSuite) TestAvailability() {
	id := uuid.New()
	url := "/events/" + id.String() + "/availability"

	s.Run("正常系", func() {
		s.mockCommands.EXPECT().CheckAvailability(gomock.Any(), id, 3).Return(&event.Availability{
			EventID: id, MaxCapacity: 10, Confirmed: 8, Remaining: 2, Requested: 3, Available: false,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?guestCount=3", nil, "")

		var res resdto.Envelope[resdto.AvailabilityResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.False(res.Data.Available)
		s.Equal(2, res.Data.Remaining)
		s.Equal(8, res.Data.Confirmed)
		s.Equal(3, res.Data.Requested)
	})

	for _, q := range []string{"", "?guestCount=0", "?guestCount=-1", "?guestCount=two"} {
		s.Run("異常系: 人数が不正 "+q, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "guestCount must be a positive number")
		})
	}
}

func (s *EventHandlerTestSuite) TestCreate() {
	date := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	req := reqdto.CreateEventRequest{Title: "Supper", Date: date, MaxCapacity: 12, Publish: true}
	result := &commands.EventResult{
		ID: uuid.New(), ChefID: s.chefID, Title: "Supper", Date: date, MaxCapacity: 12, Status: "OPEN", AllowWaitlist: true,
	}

	s.Run("正常系: 呼び出し元をActorとして渡す", func() {
		actor := commands.Actor{UserID: s.chefID, Role: user.RoleChef}
		input := commands.CreateEventInput{Title: "Supper", Date: date, MaxCapacity: 12, AllowWaitlist: true, Publish: true}
		s.mockCommands.EXPECT().CreateEvent(gomock.Any(), actor, input).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/events", req, "")

		var res resdto.Envelope[resdto.EventResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("Event created", res.Message)
		s.Equal(12, res.Data.RemainingSpots)
	})

	s.Run("異常系: 入力検証", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "タイトル欠落", mutate: testutil.Field("title", nil)},
			{name: "日付欠落", mutate: testutil.Field("date", nil)},
			{name: "定員0", mutate: testutil.Field("maxCapacity", 0)},
			{name: "定員501", mutate: testutil.Field("maxCapacity", 501)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), req, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/events", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("異常系: ドメインエラー", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "過去日付", err: event.ErrDateInPast, status: http.StatusBadRequest, msg: "in the future"},
			{name: "主催権限なし", err: commands.ErrHostRoleRequired, status: http.StatusForbidden, msg: "Only chefs"},
			{name: "内部エラー", err: errors.New("boom"), status: http.StatusInternalServerError, msg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/events", req, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}
