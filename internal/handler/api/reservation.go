package api

import (
	"net/http"

	reqdto "restaurant-reservations/internal/handler/dto/request"
	resdto "restaurant-reservations/internal/handler/dto/response"
	"restaurant-reservations/internal/usecase/commands"
	"restaurant-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary List reservations
// @Description Reservations on a date (default today, finished ones excluded), or a phone search when mobile_number is given
// @Tags reservations
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param mobile_number query string false "Phone number or fragment"
// @Success 200 {object} resdto.DataResponse[[]resdto.ReservationResponse]
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), queries.ListReservationsParams{
		Date:         c.Query("date"),
		MobileNumber: c.Query("mobile_number"),
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Data(resdto.FromReservationList(views)))
}

// @Summary Create reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.ReservationRequest true "Reservation"
// @Success 201 {object} resdto.DataResponse[resdto.ReservationResponse]
// @Failure 400 {object} httperr.Response
// @Router /reservations/new [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.ReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.Data(resdto.FromReservationView(view)))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param reservation_id path int true "Reservation ID"
// @Success 200 {object} resdto.DataResponse[resdto.ReservationResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{reservation_id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "reservation_id", "Reservation")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Data(resdto.FromReservationView(view)))
}

// @Summary Edit reservation
// @Description Revalidates and overwrites every field of a booked reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation_id path int true "Reservation ID"
// @Param request body reqdto.ReservationRequest true "Reservation"
// @Success 200 {object} resdto.DataResponse[resdto.ReservationResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{reservation_id} [put]
func (h *ReservationHandler) Edit(c *gin.Context) {
	id, ok := parseIDParam(c, "reservation_id", "Reservation")
	if !ok {
		return
	}
	var req reqdto.ReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.Edit(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Data(resdto.FromReservationView(view)))
}

// @Summary Update reservation status
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation_id path int true "Reservation ID"
// @Param request body reqdto.StatusRequest true "New status"
// @Success 200 {object} resdto.DataResponse[resdto.StatusResponse]
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{reservation_id}/status [put]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "reservation_id", "Reservation")
	if !ok {
		return
	}
	var req reqdto.StatusRequest
	if !bindJSON(c, &req) {
		return
	}
	status, err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Data(resdto.StatusResponse{Status: status.String()}))
}
