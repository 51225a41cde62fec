// Package adminrepo resolves signed-in users to staff and student accounts.
package adminrepo

import (
	"time"

	"schoollunch/internal/core/domain/model/admin"
)

type AdminDTO struct {
	UserID    string `gorm:"type:varchar(255);primaryKey"`
	Role      string `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time
}

func (AdminDTO) TableName() string {
	return "admins"
}

func toDomain(dto AdminDTO) (*admin.Admin, error) {
	role, err := admin.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return admin.NewAdmin(dto.UserID, role)
}
