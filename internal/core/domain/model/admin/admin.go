package admin

import "schoollunch/internal/pkg/errs"

// Admin is a staff account. UserID is the identity provider's user id.
type Admin struct {
	userID string
	role   Role
}

func NewAdmin(userID string, role Role) (*Admin, error) {
	if userID == "" {
		return nil, errs.NewValueIsRequiredError("userId")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	return &Admin{userID: userID, role: role}, nil
}

func (a *Admin) UserID() string { return a.userID }
func (a *Admin) Role() Role     { return a.role }
