package repository

import (
	"Marquee/internal/model"
	"Marquee/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

// errBalanceNotEnough 仅用于回滚下单事务，不向外传播
var errBalanceNotEnough = errors.New("balance not enough")

type OrderRepo interface {
	CreateOrderWithDebit(ctx context.Context, order *model.Order) (bool, error)
	GetPendingOrderCount(ctx context.Context, userID uint64) (int64, error)
	GetPendingVideoOrderCount(ctx context.Context, userID, videoID uint64) (int64, error)
	DeleteOnlineOrder(ctx context.Context, userID, videoID uint64) (int64, error)
	GetCartOrders(ctx context.Context, userID uint64) ([]*model.Order, error)
}

type OrderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepo {
	return &OrderRepoImpl{db: db}
}

// CreateOrderWithDebit 扣款和落单在同一事务内完成
// 余额不足时返回 (false, nil)，不产生订单也不扣款
func (s *OrderRepoImpl) CreateOrderWithDebit(ctx context.Context, order *model.Order) (bool, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.User{}).
			Where("id = ? AND balance >= ?", order.UserID, order.Price).
			UpdateColumn("balance", gorm.Expr("balance - ?", order.Price))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errBalanceNotEnough
		}
		return tx.Create(order).Error
	})
	if errors.Is(err, errBalanceNotEnough) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetPendingOrderCount 统计用户待观看的在线订单数
func (s *OrderRepoImpl) GetPendingOrderCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("user_id = ? AND purchase_type = ?", userID, consts.PurchaseTypeOnline).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// GetPendingVideoOrderCount 统计用户对某影片的待观看在线订单数
func (s *OrderRepoImpl) GetPendingVideoOrderCount(ctx context.Context, userID, videoID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("user_id = ? AND video_id = ? AND purchase_type = ?", userID, videoID, consts.PurchaseTypeOnline).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// DeleteOnlineOrder 核销一条在线订单，不存在时为幂等空操作
func (s *OrderRepoImpl) DeleteOnlineOrder(ctx context.Context, userID, videoID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ? AND purchase_type = ?", userID, videoID, consts.PurchaseTypeOnline).
		Order("id").
		Limit(1).
		Delete(&model.Order{})
	return result.RowsAffected, result.Error
}

// GetCartOrders 获取用户购物车订单，按下单先后排序
func (s *OrderRepoImpl) GetCartOrders(ctx context.Context, userID uint64) ([]*model.Order, error) {
	var orders []*model.Order
	result := s.db.WithContext(ctx).
		Preload("Video").
		Where("user_id = ?", userID).
		Order("id").
		Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}
	return orders, nil
}
