// Package studentrepo persists the student roster. Student ids are the
// identity provider's user ids.
package studentrepo

import (
	"time"

	"schoollunch/internal/core/domain/model/student"
)

type StudentDTO struct {
	ID        string `gorm:"type:varchar(255);primaryKey"`
	Name      string `gorm:"type:varchar(255);not null"`
	ClassName string `gorm:"type:varchar(64);not null"`
	Grade     int    `gorm:"type:smallint;not null;index"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StudentDTO) TableName() string {
	return "students"
}

func fromDomain(s *student.Student) StudentDTO {
	return StudentDTO{
		ID:        s.ID(),
		Name:      s.Name(),
		ClassName: s.ClassName(),
		Grade:     s.Grade(),
		IsActive:  s.IsActive(),
	}
}

// ToDomain is exported for the directory adapter.
func ToDomain(dto StudentDTO) (*student.Student, error) {
	return student.NewStudent(dto.ID, dto.Name, dto.ClassName, dto.Grade, dto.IsActive)
}
