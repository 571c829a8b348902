package dto

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"innkeep/internal/domains/booking/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreateBookingRequest struct {
	UserID       string `json:"user_id"        validate:"required"`
	RoomID       string `json:"room_id"        validate:"required"`
	CheckInDate  string `json:"check_in_date"  validate:"required"`
	CheckOutDate string `json:"check_out_date" validate:"required"`
}

func (c *CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.BookingDateFormat, c.CheckInDate)
	if err != nil {
		return checkIn, checkOut, err //nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.BookingDateFormat, c.CheckOutDate)

	return checkIn, checkOut, err //nolint:wrapcheck
}

func (c *CreateBookingRequest) ToModel(createdBy string, checkIn, checkOut time.Time) model.Booking {
	return model.Booking{
		ID:           uuid.NewString(),
		UserID:       c.UserID,
		RoomID:       sql.NullString{String: c.RoomID, Valid: true},
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       model.StatusBooked,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UpdateBookingRequest struct {
	CheckInDate  string `json:"check_in_date"  validate:"omitempty"`
	CheckOutDate string `json:"check_out_date" validate:"omitempty"`
	Status       string `db:"status"           json:"status" validate:"omitempty,oneof=booked cancelled completed"`
}

type BookingResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name,omitempty"`
	UserEmail    string  `json:"user_email,omitempty"`
	RoomID       string  `json:"room_id,omitempty"`
	RoomNumber   string  `json:"room_number,omitempty"`
	RoomType     string  `json:"room_type,omitempty"`
	RoomPrice    float64 `json:"room_price,omitempty"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	Status       string  `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.UserName = model.UserName.String
	r.UserEmail = model.UserEmail.String
	r.RoomID = model.RoomID.String
	r.RoomNumber = model.RoomNumber.String
	r.RoomType = model.RoomType.String
	r.RoomPrice = model.RoomPrice.Float64
	r.CheckInDate = model.CheckInDate.Format(constant.BookingDateFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.BookingDateFormat)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingCreatedEvent is published to the booking topic after a successful
// booking transaction.
type BookingCreatedEvent struct {
	BookingID    string  `json:"booking_id"`
	UserID       string  `json:"user_id"`
	RoomID       string  `json:"room_id"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	Nights       int     `json:"nights"`
	Amount       float64 `json:"amount"`
	CreatedAt    string  `json:"created_at"`
}
