package adminrepo

import (
	"context"
	"errors"

	"schoollunch/internal/adapters/out/postgres/studentrepo"
	"schoollunch/internal/core/domain/model/admin"
	"schoollunch/internal/core/domain/model/student"
	"schoollunch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDirectory reads accounts outside of any Unit of Work.
type GormDirectory struct {
	db *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

func (d *GormDirectory) FindAdmin(ctx context.Context, userID string) (*admin.Admin, error) {
	var dto AdminDTO
	if err := d.db.WithContext(ctx).First(&dto, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userId", userID)
		}
		return nil, err
	}
	return toDomain(dto)
}

func (d *GormDirectory) FindStudent(ctx context.Context, userID string) (*student.Student, error) {
	var dto studentrepo.StudentDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("studentId", userID)
		}
		return nil, err
	}
	return studentrepo.ToDomain(dto)
}

// Grant registers userID as staff with the given role, replacing any
// previous role.
func (d *GormDirectory) Grant(ctx context.Context, a *admin.Admin) error {
	dto := AdminDTO{UserID: a.UserID(), Role: a.Role().String()}
	return d.db.WithContext(ctx).Save(&dto).Error
}
