package model

import (
	"database/sql"

	"innkeep/shared/model"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID     = "id"
	FieldUserID = "user_id"
	FieldType   = "type"
	FieldIsRead = "is_read"
)

const (
	TypeBooking = "BOOKING"
	TypePayment = "PAYMENT"
	TypeSystem  = "SYSTEM"
)

type Notification struct {
	ID      string `db:"id"`
	UserID  string `db:"user_id"`
	Message string `db:"message"`
	Type    string `db:"type"`
	IsRead  bool   `db:"is_read"`

	UserName sql.NullString `db:"user_name" table:"users" column:"name"`
	model.Metadata
}

func (Notification) GetJoinQuery() string {
	return "LEFT JOIN users ON users.id = notifications.user_id"
}
