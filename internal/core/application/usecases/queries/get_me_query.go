package queries

import (
	"context"
	"errors"

	"schoollunch/internal/pkg/errs"
	"schoollunch/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetMeQueryIsNotConstructed = errors.New(
	"GetMeQuery must be created via NewGetMeQuery constructor",
)

// GetMeQuery describes the signed-in user: roster entry and staff role.
type GetMeQuery struct {
	actorID string

	guard guard.ConstructorGuard
}

func NewGetMeQuery(actorID string) (GetMeQuery, error) {
	if actorID == "" {
		return GetMeQuery{}, errs.NewValueIsRequiredError("actorId")
	}
	return GetMeQuery{actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMeQuery) Validate() error {
	return q.guard.Validate(ErrGetMeQueryIsNotConstructed)
}

type StudentView struct {
	ID        string
	Name      string
	ClassName string
	Grade     int
	IsActive  bool
}

// MeView has a nil Student for staff without a roster entry and an empty
// AdminRole for students.
type MeView struct {
	UserID    string
	Student   *StudentView
	AdminRole string
}

// GetMeQueryHandler resolves the caller's profile and staff role.
type GetMeQueryHandler struct {
	db *gorm.DB
}

// NewGetMeQueryHandler creates the profile reader.
func NewGetMeQueryHandler(db *gorm.DB) GetMeQueryHandler {
	return GetMeQueryHandler{db: db}
}

// Handle fails with errs.ErrObjectNotFound for a user that is neither a
// student nor staff; such users register through POST /me.
func (h GetMeQueryHandler) Handle(ctx context.Context, query GetMeQuery) (MeView, error) {
	if err := query.Validate(); err != nil {
		return MeView{}, err
	}

	me := MeView{UserID: query.actorID}

	var students []StudentView
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, class_name, grade, is_active
		FROM students
		WHERE id = ?
	`, query.actorID).Scan(&students).Error
	if err != nil {
		return MeView{}, err
	}
	if len(students) > 0 {
		me.Student = &students[0]
	}

	var roles []string
	err = h.db.WithContext(ctx).Table("admins").Where("user_id = ?", query.actorID).Pluck("role", &roles).Error
	if err != nil {
		return MeView{}, err
	}
	if len(roles) > 0 {
		me.AdminRole = roles[0]
	}

	if me.Student == nil && me.AdminRole == "" {
		return MeView{}, errs.NewObjectNotFoundError("userId", query.actorID)
	}
	return me, nil
}
