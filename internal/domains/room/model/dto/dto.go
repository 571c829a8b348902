package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"innkeep/internal/domains/room/model"
	"innkeep/shared"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber  string  `json:"room_number" validate:"required,max=20"`
	Type        string  `json:"type"        validate:"required,max=100"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Price       float64 `json:"price"       validate:"required,gte=0"`
}

func (c *CreateRoomRequest) ToModel(createdBy string) model.Room {
	return model.Room{
		ID:          uuid.NewString(),
		RoomNumber:  c.RoomNumber,
		Type:        c.Type,
		Description: c.Description,
		Price:       c.Price,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber  string   `db:"room_number" json:"room_number" validate:"omitempty,max=20"`
	Type        string   `db:"type"        json:"type"        validate:"omitempty,max=100"`
	Description string   `db:"description" json:"description" validate:"omitempty,max=2000"`
	Price       *float64 `db:"price"       json:"price"       validate:"omitempty,gte=0"`
}

type UploadRoomImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ImageFile multipart.File        `json:"-"`
}

type UploadRoomImageResponse struct {
	URL string `json:"url"`
}

type RoomResponse struct {
	ID          string  `json:"id"`
	RoomNumber  string  `json:"room_number"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Type = model.Type
	r.Description = model.Description
	r.Price = model.Price
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
