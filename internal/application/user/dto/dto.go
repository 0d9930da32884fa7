package dto

import "github.com/back-informatica/chamados/internal/domain/user"

// AuthUserDTO is the profile summary returned by token login.
type AuthUserDTO struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginUserDTO is the account summary returned by password login.
type LoginUserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	EmpresaID string `json:"empresa_id"`
}

type LoginResponseDTO struct {
	User      LoginUserDTO `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
}

// UserDTO is the full account view printed by the provisioning commands.
type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	EmpresaID string `json:"empresa_id"`
	Status    string `json:"status"`
}

func ToLoginUserDTO(u *user.User) LoginUserDTO {
	return LoginUserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Username:  u.Username(),
		Role:      u.Role().String(),
		EmpresaID: u.EmpresaID(),
	}
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Username:  u.Username(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		EmpresaID: u.EmpresaID(),
		Status:    u.Status().String(),
	}
}
