package ports

import (
	"context"

	"schoollunch/internal/core/domain/model/admin"
	"schoollunch/internal/core/domain/model/student"
)

// Directory resolves an authenticated user id to the accounts it owns.
// Both lookups return errs.ErrObjectNotFound when there is no such account.
type Directory interface {
	FindAdmin(ctx context.Context, userID string) (*admin.Admin, error)
	FindStudent(ctx context.Context, userID string) (*student.Student, error)
}
