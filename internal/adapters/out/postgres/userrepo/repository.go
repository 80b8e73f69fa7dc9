// Package userrepo persists back-office users with GORM.
package userrepo

import (
	"context"
	"errors"
	"time"

	"retail/internal/core/domain/model/user"
	"retail/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserDTO maps a user to the users table.
type UserDTO struct {
	Username     string    `gorm:"primaryKey;type:text"`
	PasswordHash []byte    `gorm:"type:bytea;not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Get(ctx context.Context, username string) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", username)
		}
		return nil, err
	}

	return user.RestoreUser(dto.Username, dto.PasswordHash)
}

// Save upserts the user keyed by username.
func (r *GormUserRepository) Save(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := UserDTO{
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		UpdatedAt:    time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "updated_at"}),
	}).Create(&dto).Error
}
