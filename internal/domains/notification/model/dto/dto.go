package dto

import (
	"github.com/google/uuid"

	"innkeep/internal/domains/notification/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreateNotificationRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Message string `json:"message" validate:"required,max=2000"`
	Type    string `json:"type"    validate:"omitempty,oneof=BOOKING PAYMENT SYSTEM"`
}

func (c *CreateNotificationRequest) ToModel(createdBy string) model.Notification {
	notificationType := c.Type
	if notificationType == "" {
		notificationType = model.TypeSystem
	}

	return model.Notification{
		ID:      uuid.NewString(),
		UserID:  c.UserID,
		Message: c.Message,
		Type:    notificationType,
		IsRead:  false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UpdateNotificationRequest struct {
	Message string `db:"message" json:"message" validate:"omitempty,max=2000"`
	IsRead  *bool  `db:"is_read" json:"is_read" validate:"omitempty"`
}

type NotificationResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name,omitempty"`
	Message  string `json:"message"`
	Type     string `json:"type"`
	IsRead   bool   `json:"is_read"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.UserName = model.UserName.String
	r.Message = model.Message
	r.Type = model.Type
	r.IsRead = model.IsRead
	r.Metadata.FromModel(model.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}

// NotificationEvent is the payload pushed over the realtime channel.
type NotificationEvent struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

func (e *NotificationEvent) FromModel(model model.Notification) {
	e.ID = model.ID
	e.Message = model.Message
	e.Type = model.Type
	e.IsRead = model.IsRead
	e.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
}
