package dto

import (
	"github.com/google/uuid"

	"innkeep/internal/domains/contact/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreateContactRequest struct {
	Name    string `json:"name"    validate:"required,max=255"`
	Email   string `json:"email"   validate:"required,email,max=255"`
	Phone   string `json:"phone"   validate:"omitempty,max=32"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=2000"`
}

func (c *CreateContactRequest) ToModel() model.Contact {
	return model.Contact{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Subject:     c.Subject,
		Message:     c.Message,
		Status:      model.StatusPending,
		SubmittedAt: timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.SystemUser,
			ModifiedBy: constant.SystemUser,
		},
	}
}

type UpdateContactStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=pending read replied"`
}

type ContactResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
	gDto.Metadata
}

func (r *ContactResponse) FromModel(model model.Contact) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Subject = model.Subject
	r.Message = model.Message
	r.Status = model.Status
	r.SubmittedAt = model.SubmittedAt.Format(constant.DateFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetContactsResponse struct {
	Contacts  []ContactResponse `json:"contacts"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetContactsResponse) FromModels(models []model.Contact, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Contacts = make([]ContactResponse, len(models))
	for i, mod := range models {
		r.Contacts[i].FromModel(mod)
	}
}
