//go:build unit

package api_test

import (
	"net/http"
	"testing"

	domreservation "restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/handler/api"
	resdto "restaurant-reservations/internal/handler/dto/response"
	"restaurant-reservations/internal/pkg/errs"
	"restaurant-reservations/internal/usecase/queries"
	"restaurant-reservations/tests/common/builder"
	"restaurant-reservations/tests/common/httptest"
	"restaurant-reservations/tests/common/testutil"
	commandsmock "restaurant-reservations/tests/mock/commands"
	queriesmock "restaurant-reservations/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/reservations", s.handler.List)
	s.router.POST("/reservations/new", s.handler.Create)
	s.router.GET("/reservations/:reservation_id", s.handler.Get)
	s.router.PUT("/reservations/:reservation_id", s.handler.Edit)
	s.router.PUT("/reservations/:reservation_id/status", s.handler.UpdateStatus)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func validationErr(err error) error { return errs.Mark(err, errs.ErrValidation) }

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations/new"
	reqBody := builder.NewReservationBuilder().BuildRequestDTO()
	returnView := builder.NewReservationBuilder().WithID(42).BuildView()

	s.Run("success: returns 201 with the stored reservation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in domreservation.BookingInput) (*queries.ReservationView, error) {
				s.Equal("Rick", in.FirstName)
				s.Equal(builder.FutureWednesday, in.ReservationDate)
				s.Equal(domreservation.Party(2), in.People)
				return returnView, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(42), body.ReservationID)
		s.Equal(builder.FutureWednesday, body.ReservationDate)
		s.Equal("13:30", body.ReservationTime)
		s.Equal("booked", body.Status)
	})

	s.Run("people sent as a string reaches the usecase as a non-integer", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.DataField("people", "2"))

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in domreservation.BookingInput) (*queries.ReservationView, error) {
				s.True(in.People.Present)
				s.False(in.People.Integer)
				return nil, validationErr(domreservation.ErrInvalidPeople)
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid number of people.")
	})

	s.Run("people beyond int32 reaches the usecase as a non-integer", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.DataField("people", int64(4294967297)))

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in domreservation.BookingInput) (*queries.ReservationView, error) {
				s.True(in.People.Present)
				s.False(in.People.Integer)
				return nil, validationErr(domreservation.ErrInvalidPeople)
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid number of people.")
	})

	s.Run("missing data envelope reaches the usecase as empty input", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), domreservation.BookingInput{}).
			Return(nil, validationErr(domreservation.ErrMissingData))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing data.")
	})

	s.Run("empty body reaches the usecase as empty input", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), domreservation.BookingInput{}).
			Return(nil, validationErr(domreservation.ErrMissingData))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing data.")
	})

	validation := []struct {
		name   string
		mutate func(map[string]any)
		err    error
	}{
		{name: "missing first_name", mutate: testutil.DataField("first_name", nil), err: domreservation.ErrMissingFields},
		{name: "closed day", mutate: testutil.DataField("reservation_date", "2035-01-02"), err: domreservation.ErrClosedDay},
		{name: "before opening", mutate: testutil.DataField("reservation_time", "10:29"), err: domreservation.ErrOutsideHours},
		{name: "malformed date", mutate: testutil.DataField("reservation_date", "01/03/2035"), err: domreservation.ErrInvalidDate},
	}

	s.Run("error: 400 with the usecase message", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, validationErr(tc.err))

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.err.Error())
			})
		}
	})

	s.Run("error: 400 on malformed JSON without calling the usecase", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"data": {`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Request body must be valid JSON.")
	})

	s.Run("error: 500 hides storage failures", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection reset"), errs.ErrStorage))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	views := []*queries.ReservationView{
		builder.NewReservationBuilder().WithID(1).WithSchedule(builder.FutureWednesday, "11:00").BuildView(),
		builder.NewReservationBuilder().WithID(2).WithSchedule(builder.FutureWednesday, "18:15").BuildView(),
	}

	s.Run("success: date listing", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListReservationsParams{Date: builder.FutureWednesday}).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?date="+builder.FutureWednesday, nil)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("11:00", body[0].ReservationTime)
		s.Equal("18:15", body[1].ReservationTime)
	})

	s.Run("success: phone search", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListReservationsParams{MobileNumber: "555-1234"}).Return(views[:1], nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?mobile_number=555-1234", nil)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: no matches renders an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*queries.ReservationView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"data": []}`, rec.Body.String())
	})

	s.Run("error: 400 on a malformed date", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, validationErr(queries.ErrInvalidListDate))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?date=tomorrow", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, queries.ErrInvalidListDate.Error())
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("success: returns the reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(7)).Return(builder.NewReservationBuilder().WithID(7).BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/7", nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(7), body.ReservationID)
		s.Equal("202-555-0164", body.MobileNumber)
	})

	s.Run("error: 404 with the id in the message", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(99)).
			Return(nil, errs.Mark(errs.New("Reservation 99 cannot be found."), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/99", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation 99 cannot be found.")
	})

	s.Run("error: 400 on a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Reservation id must be a positive integer.")
	})

	s.Run("error: 400 on a zero id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/0", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Reservation id must be a positive integer.")
	})
}

// ================================================================================
// TestEdit
// ================================================================================

func (s *ReservationHandlerTestSuite) TestEdit() {
	url := "/reservations/7"
	reqBody := builder.NewReservationBuilder().WithPeople(6).BuildRequestDTO()

	s.Run("success: returns the updated reservation", func() {
		s.mockCommands.EXPECT().Edit(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, in domreservation.BookingInput) (*queries.ReservationView, error) {
				s.Equal(domreservation.Party(6), in.People)
				return builder.NewReservationBuilder().WithID(7).WithPeople(6).BuildView(), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(6, body.People)
	})

	s.Run("error: 404 when the reservation does not exist", func() {
		s.mockCommands.EXPECT().Edit(gomock.Any(), int64(7), gomock.Any()).
			Return(nil, errs.Mark(errs.New("Reservation 7 cannot be found."), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation 7 cannot be found.")
	})

	s.Run("error: 400 when the reservation is no longer booked", func() {
		s.mockCommands.EXPECT().Edit(gomock.Any(), int64(7), gomock.Any()).
			Return(nil, errs.Mark(domreservation.ErrNotEditable, errs.ErrConflict))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, domreservation.ErrNotEditable.Error())
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	url := "/reservations/7/status"

	s.Run("success: returns the new status", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), int64(7), "cancelled").Return(domreservation.StatusCancelled, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"data": map[string]any{"status": "cancelled"}})

		var body resdto.StatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("missing status is passed as empty", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), int64(7), "").
			Return(domreservation.Status(""), validationErr(domreservation.ErrUnknownStatus))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"data": map[string]any{}})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status.")
	})

	s.Run("error: 400 on a finished reservation", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), int64(7), "seated").
			Return(domreservation.Status(""), errs.Mark(domreservation.ErrFinished, errs.ErrConflict))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"data": map[string]any{"status": "seated"}})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Reservation is in a finished status.")
	})
}
