package api

import (
	"net/http"

	reqdto "restaurant-reservations/internal/handler/dto/request"
	resdto "restaurant-reservations/internal/handler/dto/response"
	"restaurant-reservations/internal/handler/middleware"
	"restaurant-reservations/internal/usecase/commands"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	cmds commands.TableCommands
	q    queries.TableQueries
}

func NewTableHandler(cmds commands.TableCommands, q queries.TableQueries) *TableHandler {
	return &TableHandler{cmds: cmds, q: q}
}

// @Summary List tables
// @Tags tables
// @Produce json
// @Success 200 {object} resdto.DataResponse[[]resdto.TableResponse]
// @Failure 500 {object} httperr.Response
// @Router /tables [get]
func (h *TableHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Data(resdto.FromTableList(views)))
}

// @Summary Get table
// @Tags tables
// @Produce json
// @Param table_id path int true "Table ID"
// @Success 200 {object} resdto.DataResponse[resdto.TableResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tables/{table_id} [get]
func (h *TableHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "table_id", "Table")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Data(resdto.FromTableView(view)))
}

// @Summary Create table
// @Tags tables
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTableRequest true "Table"
// @Success 201 {object} resdto.DataResponse[resdto.TableResponse]
// @Failure 400 {object} httperr.Response
// @Router /tables [post]
func (h *TableHandler) Create(c *gin.Context) {
	var req reqdto.CreateTableRequest
	if !bindJSON(c, &req) {
		return
	}
	name, capacity, err := req.Validate()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), name, capacity)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.Data(resdto.FromTableView(view)))
}

// @Summary Seat a reservation
// @Description Binds the reservation to the table and marks it seated in one transaction
// @Tags tables
// @Accept json
// @Produce json
// @Param table_id path int true "Table ID"
// @Param request body reqdto.SeatRequest true "Reservation to seat"
// @Success 200 {object} resdto.DataResponse[resdto.TableResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tables/{table_id}/seat [put]
func (h *TableHandler) Seat(c *gin.Context) {
	tableID, ok := parseIDParam(c, "table_id", "Table")
	if !ok {
		return
	}
	var req reqdto.SeatRequest
	if !bindJSON(c, &req) {
		return
	}
	reservationID, err := req.ReservationID()
	if err != nil {
		middleware.RecordSeating("seat", err)
		abortWithUsecaseError(c, err)
		return
	}
	view, err := h.cmds.Seat(c.Request.Context(), tableID, reservationID)
	middleware.RecordSeating("seat", err)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Data(resdto.FromTableView(view)))
}

// @Summary Finish a seating
// @Description Frees the table and marks its reservation finished in one transaction
// @Tags tables
// @Produce json
// @Param table_id path int true "Table ID"
// @Success 200 {object} resdto.DataResponse[resdto.TableResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tables/{table_id}/seat [delete]
func (h *TableHandler) Unseat(c *gin.Context) {
	tableID, ok := parseIDParam(c, "table_id", "Table")
	if !ok {
		return
	}
	view, err := h.cmds.Unseat(c.Request.Context(), tableID)
	middleware.RecordSeating("unseat", err)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Data(resdto.FromTableView(view)))
}
