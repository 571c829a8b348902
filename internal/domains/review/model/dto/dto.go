package dto

import (
	"github.com/google/uuid"

	"innkeep/internal/domains/review/model"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreateReviewRequest struct {
	UserID    string `json:"user_id"    validate:"required"`
	BookingID string `json:"booking_id" validate:"required"`
	RoomID    string `json:"room_id"    validate:"required"`
	Rating    int    `json:"rating"     validate:"required,min=1,max=5"`
	Comment   string `json:"comment"    validate:"omitempty,max=1000"`
}

func (c *CreateReviewRequest) ToModel(createdBy string) model.Review {
	return model.Review{
		ID:        uuid.NewString(),
		UserID:    c.UserID,
		BookingID: c.BookingID,
		RoomID:    c.RoomID,
		Rating:    c.Rating,
		Comment:   c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UpdateReviewRequest struct {
	Rating  int    `db:"rating"  json:"rating"  validate:"omitempty,min=1,max=5"`
	Comment string `db:"comment" json:"comment" validate:"omitempty,max=1000"`
}

type ReviewResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name,omitempty"`
	BookingID  string `json:"booking_id"`
	RoomID     string `json:"room_id"`
	RoomNumber string `json:"room_number,omitempty"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.UserName = model.UserName.String
	r.BookingID = model.BookingID
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber.String
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
