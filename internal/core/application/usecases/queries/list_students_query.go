package queries

import (
	"context"
	"errors"

	"schoollunch/internal/core/application/access"
	"schoollunch/internal/core/domain/model/student"
	"schoollunch/internal/pkg/errs"
	"schoollunch/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListStudentsQueryIsNotConstructed = errors.New(
	"ListStudentsQuery must be created via NewListStudentsQuery constructor",
)

// ListStudentsQuery returns the roster for staff, optionally one grade only.
type ListStudentsQuery struct {
	actorID string
	grade   int

	guard guard.ConstructorGuard
}

// NewListStudentsQuery treats grade 0 as every grade.
func NewListStudentsQuery(actorID string, grade int) (ListStudentsQuery, error) {
	if actorID == "" {
		return ListStudentsQuery{}, errs.NewValueIsRequiredError("actorId")
	}
	if grade != 0 {
		if err := student.ValidateGrade(grade); err != nil {
			return ListStudentsQuery{}, err
		}
	}
	return ListStudentsQuery{actorID: actorID, grade: grade, guard: guard.NewConstructorGuard()}, nil
}

func (q ListStudentsQuery) Validate() error {
	return q.guard.Validate(ErrListStudentsQueryIsNotConstructed)
}

// ListStudentsQueryHandler reads the roster. Staff only.
type ListStudentsQueryHandler struct {
	db         *gorm.DB
	authorizer Authorizer
}

// NewListStudentsQueryHandler creates the roster reader.
func NewListStudentsQueryHandler(db *gorm.DB, authorizer Authorizer) ListStudentsQueryHandler {
	return ListStudentsQueryHandler{db: db, authorizer: authorizer}
}

// Handle orders by grade, class and name.
func (h ListStudentsQueryHandler) Handle(ctx context.Context, query ListStudentsQuery) ([]StudentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.authorizer.Authorize(ctx, query.actorID, access.ManageStudents); err != nil {
		return nil, err
	}

	q := h.db.WithContext(ctx).Table("students").Select("id, name, class_name, grade, is_active")
	if query.grade != 0 {
		q = q.Where("grade = ?", query.grade)
	}

	students := make([]StudentView, 0)
	if err := q.Order("grade, class_name, name").Scan(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}
