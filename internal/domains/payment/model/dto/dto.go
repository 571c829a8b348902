package dto

import (
	"github.com/google/uuid"

	"innkeep/internal/domains/payment/model"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreatePaymentRequest struct {
	BookingID     string  `json:"booking_id"     validate:"required"`
	UserID        string  `json:"user_id"        validate:"required"`
	Amount        float64 `json:"amount"         validate:"required,gte=0"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,oneof=CARD CASH ONLINE"`
	PaymentStatus string  `json:"payment_status" validate:"omitempty,oneof=PAID 'NOT PAID'"`
}

func (c *CreatePaymentRequest) ToModel(createdBy string) model.Payment {
	method := c.PaymentMethod
	if method == "" {
		method = model.MethodCard
	}

	status := c.PaymentStatus
	if status == "" {
		status = model.StatusNotPaid
	}

	return model.Payment{
		ID:            uuid.NewString(),
		BookingID:     c.BookingID,
		UserID:        c.UserID,
		Amount:        c.Amount,
		PaymentMethod: method,
		PaymentStatus: status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UpdatePaymentRequest struct {
	Amount        *float64 `db:"amount"         json:"amount"         validate:"omitempty,gte=0"`
	PaymentMethod string   `db:"payment_method" json:"payment_method" validate:"omitempty,oneof=CARD CASH ONLINE"`
	PaymentStatus string   `db:"payment_status" json:"payment_status" validate:"omitempty,oneof=PAID 'NOT PAID'"`
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	BookingID     string  `json:"booking_id"`
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name,omitempty"`
	UserEmail     string  `json:"user_email,omitempty"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.UserID = model.UserID
	r.UserName = model.UserName.String
	r.UserEmail = model.UserEmail.String
	r.Amount = model.Amount
	r.PaymentMethod = model.PaymentMethod
	r.PaymentStatus = model.PaymentStatus
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
