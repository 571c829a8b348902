package model

import "innkeep/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomNumber  = "room_number"
	FieldType        = "type"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldImage       = "image"
)

type Room struct {
	ID          string  `db:"id"`
	RoomNumber  string  `db:"room_number"`
	Type        string  `db:"type"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Image       string  `db:"image"`
	model.Metadata
}
