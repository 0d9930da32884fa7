package mappers

import (
	"strings"
	"time"

	"github.com/back-informatica/chamados/internal/domain/user"
	vo "github.com/back-informatica/chamados/internal/domain/user/valueobjects"
	"github.com/back-informatica/chamados/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		Role:         u.Role().String(),
		EmpresaID:    u.EmpresaID(),
		Status:       u.Status().String(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
	if username := u.Username(); username != "" {
		model.Username = &username
	}
	return model
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	var username string
	if model.Username != nil {
		username = *model.Username
	}
	status, err := vo.NewStatus(strings.ToLower(model.Status))
	if err != nil {
		status = vo.StatusActive
	}
	return user.ReconstructUser(
		model.ID,
		model.Name,
		username,
		model.Email,
		vo.Role(strings.ToLower(model.Role)),
		model.EmpresaID,
		status,
		model.PasswordHash,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
