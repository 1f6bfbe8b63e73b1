package repository

import (
	"Marquee/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PermissionRepo interface {
	GetPermission(ctx context.Context, userID uint64) (*model.Permission, error)
	UpdateVisibility(ctx context.Context, userID uint64, category, value string) (int64, error)
}

type PermissionRepoImpl struct {
	db *gorm.DB
}

func NewPermissionRepo(db *gorm.DB) PermissionRepo {
	return &PermissionRepoImpl{db: db}
}

func (s *PermissionRepoImpl) GetPermission(ctx context.Context, userID uint64) (*model.Permission, error) {
	permission := &model.Permission{}
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(permission)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return permission, nil
}

// UpdateVisibility 覆盖写某一类可见性，category 由上层枚举校验
func (s *PermissionRepoImpl) UpdateVisibility(ctx context.Context, userID uint64, category, value string) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Permission{}).
		Where("user_id = ?", userID).
		Update(category, value)
	return result.RowsAffected, result.Error
}
