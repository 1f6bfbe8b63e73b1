package repository

import (
	"Marquee/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User, permission *model.Permission, roles *[]*model.UserRole) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("UserRoles").
		First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("UserRoles").
		Where("username = ?", username).
		First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

// CreateUser 建用户、默认权限行和角色，同一事务
func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User, permission *model.Permission, roles *[]*model.UserRole) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(user); result.Error != nil {
			return result.Error
		}

		permission.UserID = user.ID
		if result := tx.Create(permission); result.Error != nil {
			return result.Error
		}

		for _, role := range *roles {
			role.UserID = user.ID
		}
		if result := tx.Create(roles); result.Error != nil {
			return result.Error
		}

		return nil
	})
}

// DeleteUser 注销用户并级联清理关注边、角色和权限行
func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.UserRole{}).Where("user_id = ?", id).Delete(&model.UserRole{})
		if result.Error != nil {
			return result.Error
		}

		result = tx.Model(&model.UserFollow{}).Where("follower_id = ?", id).Delete(&model.UserFollow{})
		if result.Error != nil {
			return result.Error
		}

		result = tx.Model(&model.UserFollow{}).Where("following_id = ?", id).Delete(&model.UserFollow{})
		if result.Error != nil {
			return result.Error
		}

		result = tx.Model(&model.Permission{}).Where("user_id = ?", id).Delete(&model.Permission{})
		if result.Error != nil {
			return result.Error
		}

		result = tx.Delete(&model.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}
