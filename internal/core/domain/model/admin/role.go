package admin

import (
	"fmt"

	"schoollunch/internal/pkg/errs"
)

// Role is a staff member's level. Both roles currently hold the same
// capabilities.
type Role int

const (
	UnknownRole Role = iota
	Staff
	Manager
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		Staff:       "STAFF",
		Manager:     "MANAGER",
	}
}

func ParseRole(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != UnknownRole && str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if r != Staff && r != Manager {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
