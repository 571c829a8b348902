package model

import (
	"database/sql"

	"innkeep/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldUserID        = "user_id"
	FieldAmount        = "amount"
	FieldPaymentMethod = "payment_method"
	FieldPaymentStatus = "payment_status"
)

const (
	MethodCard   = "CARD"
	MethodCash   = "CASH"
	MethodOnline = "ONLINE"

	StatusPaid    = "PAID"
	StatusNotPaid = "NOT PAID"
)

type Payment struct {
	ID            string  `db:"id"`
	BookingID     string  `db:"booking_id"`
	UserID        string  `db:"user_id"`
	Amount        float64 `db:"amount"`
	PaymentMethod string  `db:"payment_method"`
	PaymentStatus string  `db:"payment_status"`

	UserName  sql.NullString `db:"user_name"  table:"users" column:"name"`
	UserEmail sql.NullString `db:"user_email" table:"users" column:"email"`
	model.Metadata
}

func (Payment) GetJoinQuery() string {
	return "LEFT JOIN users ON users.id = payments.user_id"
}
