package user

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/back-informatica/chamados/internal/domain/user/valueobjects"
)

// User is a profile keyed by the identity subject id.
type User struct {
	id           string
	name         string
	username     string
	email        string
	role         vo.Role
	empresaID    string
	status       vo.Status
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewProfile builds the default profile created on a subject's first
// verified login.
func NewProfile(uid, email string, now time.Time) (*User, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, fmt.Errorf("uid is required")
	}
	return &User{
		id:        uid,
		email:     strings.ToLower(strings.TrimSpace(email)),
		role:      vo.RoleClient,
		status:    vo.StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// NewUser builds a provisioned account that can log in with a password.
func NewUser(id, username, name, email string, role vo.Role, empresaID, passwordHash string, now time.Time) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	return &User{
		id:           id,
		name:         strings.TrimSpace(name),
		username:     username,
		email:        strings.ToLower(strings.TrimSpace(email)),
		role:         role,
		empresaID:    strings.TrimSpace(empresaID),
		status:       vo.StatusActive,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id, name, username, email string,
	role vo.Role,
	empresaID string,
	status vo.Status,
	passwordHash string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if !role.IsValid() {
		role = vo.RoleClient
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid user status: %s", status)
	}
	return &User{
		id:           id,
		name:         name,
		username:     username,
		email:        email,
		role:         role,
		empresaID:    empresaID,
		status:       status,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() string { return u.id }
func (u *User) Name() string { return u.name }
func (u *User) Username() string { return u.username }
func (u *User) Email() string { return u.email }
func (u *User) Role() vo.Role { return u.role }
func (u *User) EmpresaID() string { return u.empresaID }
func (u *User) Status() vo.Status { return u.status }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) IsBlocked() bool {
	return u.status.IsBlocked()
}

func (u *User) HasPassword() bool {
	return u.passwordHash != ""
}

func (u *User) Block(now time.Time) {
	u.status = vo.StatusBlocked
	u.updatedAt = now
}
