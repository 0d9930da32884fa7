package valueobjects

import "fmt"

// Status is the account state of a user profile.
type Status string

const (
	StatusActive  Status = "active"
	StatusBlocked Status = "blocked"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusBlocked
}

func (s Status) IsBlocked() bool {
	return s == StatusBlocked
}

// NewStatus parses s; an empty value means active.
func NewStatus(s string) (Status, error) {
	if s == "" {
		return StatusActive, nil
	}
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid user status: %s", s)
	}
	return st, nil
}
