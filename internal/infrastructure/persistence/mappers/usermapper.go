// Package mappers converts between persistence models and domain aggregates.
package mappers

import (
	"github.com/menuqr-inc/menuqr/internal/domain/user"
	"github.com/menuqr-inc/menuqr/internal/infrastructure/persistence/models"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		model.Role,
		model.ResetToken,
		model.ResetTokenExp,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *UserMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:            u.ID(),
		Name:          u.Name(),
		Email:         u.Email(),
		PasswordHash:  u.PasswordHash(),
		Role:          u.Role(),
		ResetToken:    u.ResetToken(),
		ResetTokenExp: u.ResetTokenExp(),
		CreatedAt:     u.CreatedAt(),
		UpdatedAt:     u.UpdatedAt(),
	}
}
