package repository

import (
	"Marquee/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type WalletRepo interface {
	GetBalance(ctx context.Context, userID uint64) (*int64, error)
	AddBalance(ctx context.Context, userID uint64, amount int64) (int64, error)
	DeductBalance(ctx context.Context, userID uint64, amount int64) (int64, error)
}

type WalletRepoImpl struct {
	db *gorm.DB
}

func NewWalletRepo(db *gorm.DB) WalletRepo {
	return &WalletRepoImpl{db: db}
}

// GetBalance 获取用户余额，用户不存在返回 nil
func (s *WalletRepoImpl) GetBalance(ctx context.Context, userID uint64) (*int64, error) {
	var user model.User
	result := s.db.WithContext(ctx).
		Select("id", "balance").
		First(&user, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user.Balance, nil
}

// AddBalance 充值，单条原子更新
func (s *WalletRepoImpl) AddBalance(ctx context.Context, userID uint64, amount int64) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount))
	return result.RowsAffected, result.Error
}

// DeductBalance 扣款，余额不足时不更新任何行
func (s *WalletRepoImpl) DeductBalance(ctx context.Context, userID uint64, amount int64) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount))
	return result.RowsAffected, result.Error
}
