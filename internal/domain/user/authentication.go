package user

import "errors"

var ErrPasswordNotSet = errors.New("password not set")

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// VerifyPassword checks password against the stored hash. Profiles created by
// token login have no password and always fail.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	if !u.HasPassword() {
		return ErrPasswordNotSet
	}
	return hasher.Verify(password, u.passwordHash)
}
