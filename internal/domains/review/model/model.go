package model

import (
	"database/sql"

	"innkeep/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldBookingID = "booking_id"
	FieldRoomID    = "room_id"
	FieldRating    = "rating"
)

// A booking carries at most one review, enforced by a unique constraint on
// booking_id.
type Review struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	BookingID string `db:"booking_id"`
	RoomID    string `db:"room_id"`
	Rating    int    `db:"rating"`
	Comment   string `db:"comment"`

	UserName   sql.NullString `db:"user_name"   table:"users" column:"name"`
	RoomNumber sql.NullString `db:"room_number" table:"rooms" column:"room_number"`
	model.Metadata
}

func (Review) GetJoinQuery() string {
	return "LEFT JOIN users ON users.id = reviews.user_id LEFT JOIN rooms ON rooms.id = reviews.room_id"
}
