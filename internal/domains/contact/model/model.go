package model

import (
	"time"

	"innkeep/shared/model"
)

const (
	TableName  = "contacts"
	EntityName = "contact"

	FieldID          = "id"
	FieldStatus      = "status"
	FieldSubmittedAt = "submitted_at"
)

const (
	StatusPending = "pending"
	StatusRead    = "read"
	StatusReplied = "replied"
)

type Contact struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	Subject     string    `db:"subject"`
	Message     string    `db:"message"`
	Status      string    `db:"status"`
	SubmittedAt time.Time `db:"submitted_at"`
	model.Metadata
}
