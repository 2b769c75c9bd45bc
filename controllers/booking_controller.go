package controllers

import (
	"hotelinfo/dto"
	"hotelinfo/repository"
	"hotelinfo/response"
	"hotelinfo/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	repo    repository.HotelInfoRepository
	booking *services.BookingFacade
}

func NewBookingController(repo repository.HotelInfoRepository, booking *services.BookingFacade) *BookingController {
	return &BookingController{repo: repo, booking: booking}
}

// CreateBooking godoc
// @Summary Book a room
// @Tags bookings
// @Security Bearer
// @Param booking body dto.BookingRequest true "booking"
// @Success 201 {object} dto.BookingDetailsDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings [post]
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input dto.BookingRequest
	if !bindJSON(c, &input) {
		return
	}

	booking, err := bc.booking.CreateBooking(c.Request.Context(), currentUserID(c), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Created(c, location("/bookings/%d", booking.ID), dto.ToBookingDetailsDto(*booking))
}

// GetBooking godoc
// @Summary Get a booking
// @Description Users see only their own bookings.
// @Tags bookings
// @Security Bearer
// @Param bookingId path int true "booking id"
// @Success 200 {object} dto.BookingDetailsDto
// @Failure 404 {object} response.Response
// @Router /bookings/{bookingId} [get]
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseID(c, "bookingId")
	if !ok {
		return
	}
	booking, err := bc.booking.GetBooking(c.Request.Context(), id, currentUserID(c), isAdmin(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, dto.ToBookingDetailsDto(*booking))
}

// GetBookings godoc
// @Summary List bookings
// @Description Admins see every booking, users their own.
// @Tags bookings
// @Security Bearer
// @Param pageSize query int false "page size, max 20"
// @Param pageNumber query int false "page number"
// @Success 200 {array} dto.BookingDetailsDto
// @Router /bookings [get]
func (bc *BookingController) GetBookings(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	filter := repository.BookingFilter{}
	filter.PageNumber, filter.PageSize = repository.NormalizePage(q.PageNumber, q.PageSize)
	if !isAdmin(c) {
		userID := currentUserID(c)
		filter.UserID = &userID
	}

	bookings, meta, err := bc.repo.ListBookings(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.SuccessWithPagination(c, dto.ToBookingDetailsDtoList(bookings), meta)
}
