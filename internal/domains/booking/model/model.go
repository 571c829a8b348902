package model

import (
	"database/sql"
	"time"

	"innkeep/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldStatus       = "status"
)

const (
	StatusBooked    = "booked"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Booking keeps its row when the referenced room is deleted, the room
// reference is nulled by the schema and the joined room fields come back
// absent.
type Booking struct {
	ID           string         `db:"id"`
	UserID       string         `db:"user_id"`
	RoomID       sql.NullString `db:"room_id"`
	CheckInDate  time.Time      `db:"check_in_date"`
	CheckOutDate time.Time      `db:"check_out_date"`
	Status       string         `db:"status"`

	UserName   sql.NullString  `db:"user_name"   table:"users" column:"name"`
	UserEmail  sql.NullString  `db:"user_email"  table:"users" column:"email"`
	RoomNumber sql.NullString  `db:"room_number" table:"rooms" column:"room_number"`
	RoomType   sql.NullString  `db:"room_type"   table:"rooms" column:"type"`
	RoomPrice  sql.NullFloat64 `db:"room_price"  table:"rooms" column:"price"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN users ON users.id = bookings.user_id LEFT JOIN rooms ON rooms.id = bookings.room_id"
}
