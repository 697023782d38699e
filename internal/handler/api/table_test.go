//go:build unit

package api_test

import (
	"net/http"
	"testing"

	domtable "restaurant-reservations/internal/domain/table"
	"restaurant-reservations/internal/handler/api"
	reqdto "restaurant-reservations/internal/handler/dto/request"
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

type TableHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTableCommands
	mockQueries  *queriesmock.MockTableQueries
	handler      *api.TableHandler
}

func (s *TableHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTableCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTableQueries(s.mockCtrl)
	s.handler = api.NewTableHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/tables", s.handler.List)
	s.router.POST("/tables", s.handler.Create)
	s.router.GET("/tables/:table_id", s.handler.Get)
	s.router.PUT("/tables/:table_id/seat", s.handler.Seat)
	s.router.DELETE("/tables/:table_id/seat", s.handler.Unseat)
}

func (s *TableHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTableHandlerSuite(t *testing.T) {
	suite.Run(t, new(TableHandlerTestSuite))
}

type testCaseTable struct {
	name      string
	mutate    func(m map[string]any)
	expectMsg string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *TableHandlerTestSuite) TestCreate() {
	url := "/tables"
	reqBody := builder.NewTableBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 with a free table", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), "Bar #1", 4).
			Return(builder.NewTableBuilder().WithID(12).BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.TableResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(12), body.TableID)
		s.Equal("Bar #1", body.TableName)
		s.Nil(body.ReservationID)
		s.False(body.Occupied)
	})

	s.Run("success: table name is trimmed", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.DataField("table_name", "  #7  "))
		s.mockCommands.EXPECT().Create(gomock.Any(), "#7", 4).
			Return(builder.NewTableBuilder().With(func(b *builder.TableBuilder) { b.Name = "#7" }).BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	// Checked in the order the messages are listed.
	validation := []testCaseTable{
		{name: "missing table_name", mutate: testutil.DataField("table_name", nil), expectMsg: domtable.ErrInvalidName.Error()},
		{name: "one character table_name", mutate: testutil.DataField("table_name", "A"), expectMsg: domtable.ErrInvalidName.Error()},
		{name: "missing capacity", mutate: testutil.DataField("capacity", nil), expectMsg: domtable.ErrMissingCapacity.Error()},
		{name: "zero capacity", mutate: testutil.DataField("capacity", 0), expectMsg: domtable.ErrInvalidCapacity.Error()},
		{name: "string capacity", mutate: testutil.DataField("capacity", "4"), expectMsg: domtable.ErrInvalidCapacity.Error()},
		{name: "fractional capacity", mutate: testutil.DataField("capacity", 2.5), expectMsg: domtable.ErrInvalidCapacity.Error()},
		{name: "capacity beyond int32", mutate: testutil.DataField("capacity", int64(4294967298)), expectMsg: domtable.ErrInvalidCapacity.Error()},
		{name: "created already occupied", mutate: testutil.DataField("reservation_id", 3), expectMsg: domtable.ErrAlreadyOccupied.Error()},
		{name: "missing data", mutate: testutil.Field("data", nil), expectMsg: domtable.ErrMissingData.Error()},
	}

	s.Run("error: 400 on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectMsg)
			})
		}
	})

	s.Run("error: 400 on duplicate name", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New(`Table name "Bar #1" already exists.`), errs.ErrConflict))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, `Table name "Bar #1" already exists.`)
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *TableHandlerTestSuite) TestList() {
	s.Run("success: lists tables with occupancy", func() {
		views := []*queries.TableView{
			builder.NewTableBuilder().WithID(1).BuildView(),
			builder.NewTableBuilder().WithID(2).OccupiedBy(5).BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tables", nil)

		var body []resdto.TableResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.False(body[0].Occupied)
		s.True(body[1].Occupied)
		s.Require().NotNil(body[1].ReservationID)
		s.Equal(int64(5), *body[1].ReservationID)
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errs.Mark(errs.New("pool closed"), errs.ErrStorage))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tables", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *TableHandlerTestSuite) TestGet() {
	s.Run("success: returns the table", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(3)).
			Return(builder.NewTableBuilder().WithID(3).OccupiedBy(7).BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tables/3", nil)

		var body resdto.TableResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(3), body.TableID)
		s.True(body.Occupied)
	})

	s.Run("error: 404 when the table does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(3)).
			Return(nil, errs.Mark(errs.New("Table 3 cannot be found."), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tables/3", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Table 3 cannot be found.")
	})

	s.Run("error: 400 on a non-numeric table id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tables/x", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Table id must be a positive integer.")
	})
}

// ================================================================================
// TestSeat
// ================================================================================

func (s *TableHandlerTestSuite) TestSeat() {
	url := "/tables/3/seat"
	seated := builder.NewTableBuilder().WithID(3).OccupiedBy(7).BuildView()

	s.Run("success: seats the reservation", func() {
		s.mockCommands.EXPECT().Seat(gomock.Any(), int64(3), int64(7)).Return(seated, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, builder.SeatRequestDTO(7))

		var body resdto.TableResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Occupied)
		s.Equal(int64(7), *body.ReservationID)
	})

	s.Run("success: reservation_id given as a string", func() {
		s.mockCommands.EXPECT().Seat(gomock.Any(), int64(3), int64(7)).Return(seated, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"data": map[string]any{"reservation_id": "7"}})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	invalid := []struct {
		name      string
		body      any
		expectMsg string
	}{
		{name: "missing data", body: map[string]any{}, expectMsg: domtable.ErrMissingData.Error()},
		{name: "missing reservation_id", body: map[string]any{"data": map[string]any{}}, expectMsg: domtable.ErrMissingReservation.Error()},
		{name: "non-numeric reservation_id", body: map[string]any{"data": map[string]any{"reservation_id": "abc"}}, expectMsg: reqdto.ErrInvalidReservationID.Error()},
	}

	s.Run("error: 400 on invalid payload", func() {
		for _, tc := range invalid {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, tc.body)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectMsg)
			})
		}
	})

	usecaseErrors := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "party too large", err: errs.Mark(domtable.ErrCapacityExceeded, errs.ErrConflict), expectCode: http.StatusBadRequest},
		{name: "table occupied", err: errs.Mark(domtable.ErrOccupied, errs.ErrConflict), expectCode: http.StatusBadRequest},
		{name: "reservation missing", err: errs.Mark(errs.New("Reservation 7 not found."), errs.ErrNotFound), expectCode: http.StatusNotFound},
		{name: "table missing", err: errs.Mark(errs.New("Table 3 cannot be found."), errs.ErrNotFound), expectCode: http.StatusNotFound},
	}

	s.Run("error: usecase errors are mapped to status codes", func() {
		for _, tc := range usecaseErrors {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Seat(gomock.Any(), int64(3), int64(7)).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, builder.SeatRequestDTO(7))
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.err.Error())
			})
		}
	})

	s.Run("error: 400 on a non-numeric table id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/tables/x/seat", builder.SeatRequestDTO(7))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Table id must be a positive integer.")
	})
}

// ================================================================================
// TestUnseat
// ================================================================================

func (s *TableHandlerTestSuite) TestUnseat() {
	url := "/tables/3/seat"

	s.Run("success: frees the table", func() {
		s.mockCommands.EXPECT().Unseat(gomock.Any(), int64(3)).Return(builder.NewTableBuilder().WithID(3).BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)

		var body resdto.TableResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Occupied)
	})

	s.Run("error: 400 when the table is free", func() {
		s.mockCommands.EXPECT().Unseat(gomock.Any(), int64(3)).Return(nil, errs.Mark(domtable.ErrNotOccupied, errs.ErrConflict))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Table is not occupied")
	})

	s.Run("error: 404 when the table does not exist", func() {
		s.mockCommands.EXPECT().Unseat(gomock.Any(), int64(3)).
			Return(nil, errs.Mark(errs.New("Table 3 cannot be found."), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Table 3 cannot be found.")
	})
}
