package studentrepo

import (
	"context"
	"errors"
	"fmt"

	"schoollunch/internal/core/domain/model/student"
	"schoollunch/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormStudentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormStudentRepository(db *gorm.DB, tracker aggregateTracker) *GormStudentRepository {
	return &GormStudentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormStudentRepository) Add(ctx context.Context, aggregate *student.Student) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("studentId",
				fmt.Errorf("%s is already registered", aggregate.ID()))
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormStudentRepository) Update(ctx context.Context, aggregate *student.Student) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&StudentDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "class_name", "grade", "is_active", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("studentId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormStudentRepository) Get(ctx context.Context, id string) (*student.Student, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("studentId")
	}

	var dto StudentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("studentId", id)
		}
		return nil, err
	}

	return ToDomain(dto)
}

func (r *GormStudentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&StudentDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("studentId", id)
	}
	return nil
}

func (r *GormStudentRepository) MoveGrade(ctx context.Context, fromGrade, toGrade int) (int64, error) {
	if err := errors.Join(student.ValidateGrade(fromGrade), student.ValidateGrade(toGrade)); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Model(&StudentDTO{}).
		Where("grade = ?", fromGrade).
		Update("grade", toGrade)
	return result.RowsAffected, result.Error
}
