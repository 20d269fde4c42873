package api

import (
	"errors"
	"net/http"

	reqdto "bookit/internal/handler/dto/request"
	resdto "bookit/internal/handler/dto/response"
	"bookit/internal/handler/httperr"
	"bookit/internal/infra"
	"bookit/internal/usecase/commands"
	"bookit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Failure reasons surfaced to the client. The UI only ever sees
// confirmed/rejected/failed plus one of these; raw store errors stay inside.
const (
	reasonValidation    = "validation_error"
	reasonCapacity      = "capacity_error"
	reasonTransient     = "transient_error"
	reasonBookingRecord = "booking_record_error"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Submit a booking attempt for a slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingConfirmationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": string(commands.OutcomeRejected),
			"reason": reasonValidation,
			"error":  "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToInput())
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingConfirmation(result))
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := string(commands.OutcomeFor(err))
	switch {
	case errors.Is(err, commands.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"status": status,
			"reason": reasonValidation,
			"error":  "Invalid booking details",
		})
	case errors.Is(err, commands.ErrPromoNotFound):
		c.JSON(http.StatusBadRequest, gin.H{
			"status": status,
			"reason": reasonValidation,
			"error":  "Invalid promo code",
		})
	case errors.Is(err, commands.ErrExperienceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"status": status,
			"reason": reasonValidation,
			"error":  "Experience not found",
		})
	case errors.Is(err, commands.ErrSlotNotFound):
		c.JSON(http.StatusConflict, gin.H{
			"status": status,
			"reason": reasonCapacity,
			"error":  "Slot not found",
		})
	case errors.Is(err, commands.ErrSlotSoldOut):
		c.JSON(http.StatusConflict, gin.H{
			"status": status,
			"reason": reasonCapacity,
			"error":  "This slot is already sold out",
		})
	case errors.Is(err, commands.ErrReservationFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"status": status,
			"reason": reasonTransient,
			"error":  "Booking failed, please try again later",
		})
	case errors.Is(err, commands.ErrBookingRecordFailed):
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": status,
			"reason": reasonBookingRecord,
			"error":  "Booking could not be completed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Get booking
// @Description Look up a booking by its reference id
// @Tags bookings
// @Produce json
// @Param referenceId path string true "Booking reference id"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{referenceId} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	referenceID := c.Param("referenceId")

	bookingRM, err := h.bookingQueries.GetByReferenceID(c.Request.Context(), referenceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(bookingRM))
}
