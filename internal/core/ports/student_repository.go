package ports

import (
	"context"

	"schoollunch/internal/core/domain/model/student"
)

type StudentRepository interface {
	// Add fails with errs.ErrValueIsInvalid when the id is taken.
	Add(ctx context.Context, aggregate *student.Student) error
	Update(ctx context.Context, aggregate *student.Student) error
	// Get returns errs.ErrObjectNotFound for an unknown id.
	Get(ctx context.Context, id string) (*student.Student, error)
	Delete(ctx context.Context, id string) error
	// MoveGrade reassigns every student of fromGrade to toGrade and returns
	// how many were moved.
	MoveGrade(ctx context.Context, fromGrade, toGrade int) (int64, error)
}
