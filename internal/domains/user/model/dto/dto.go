package dto

import (
	"github.com/google/uuid"

	"innkeep/internal/domains/user/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin user"`
}

// ToModel builds the persisted user. The password passed in must already be
// hashed.
func (c *CreateUserRequest) ToModel(createdBy, hashedPassword string) model.User {
	role := c.Role
	if role == "" {
		role = constant.RoleUser
	}

	return model.User{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Email:    c.Email,
		Password: hashedPassword,
		Role:     role,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

type UpdateUserRequest struct {
	Name   string `db:"name"   json:"name"   validate:"omitempty,max=100"`
	Email  string `db:"email"  json:"email"  validate:"omitempty,email,max=100"`
	Role   string `db:"role"   json:"role"   validate:"omitempty,oneof=admin user"`
	Active *bool  `db:"active" json:"active" validate:"omitempty"`
}

type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Role = model.Role
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
