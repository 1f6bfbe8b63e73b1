package service

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/model"
	"Marquee/internal/pkg/consts"
	"Marquee/internal/repository"
	"context"
	"time"
)

type OrderService interface {
	Purchase(ctx context.Context, userID, videoID uint64, purchaseType uint8) error
	HasPendingOrder(ctx context.Context, userID uint64) (bool, error)
	HasPendingVideoOrder(ctx context.Context, userID, videoID uint64) (bool, error)
	ConsumeOnlineOrder(ctx context.Context, userID, videoID uint64) error
	ListCart(ctx context.Context, userID uint64) ([]*dto.CartItemDTO, error)
}

type OrderServiceImpl struct {
	orderRepo repository.OrderRepo
	videoRepo repository.VideoRepo
}

func NewOrderService(orderRepo repository.OrderRepo, videoRepo repository.VideoRepo) OrderService {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
		videoRepo: videoRepo,
	}
}

// Purchase 按购买类型取价，扣款与落单在仓储层同一事务内完成
func (s *OrderServiceImpl) Purchase(ctx context.Context, userID, videoID uint64, purchaseType uint8) error {
	if purchaseType != consts.PurchaseTypeOnline && purchaseType != consts.PurchaseTypePhysical {
		return ErrParamInvalid
	}

	video, err := s.videoRepo.GetVideoByID(ctx, videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return ErrVideoNotFound
	}

	price := video.OnlinePrice
	if purchaseType == consts.PurchaseTypePhysical {
		price = video.DiscPrice
	}

	order := &model.Order{
		UserID:       userID,
		VideoID:      videoID,
		PurchaseType: purchaseType,
		Price:        price,
		CreatedAt:    time.Now(),
	}

	ok, err := s.orderRepo.CreateOrderWithDebit(ctx, order)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInsufficientFunds
	}
	return nil
}

func (s *OrderServiceImpl) HasPendingOrder(ctx context.Context, userID uint64) (bool, error) {
	count, err := s.orderRepo.GetPendingOrderCount(ctx, userID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *OrderServiceImpl) HasPendingVideoOrder(ctx context.Context, userID, videoID uint64) (bool, error) {
	count, err := s.orderRepo.GetPendingVideoOrderCount(ctx, userID, videoID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ConsumeOnlineOrder 核销一条在线订单，没有可核销订单时为幂等空操作
func (s *OrderServiceImpl) ConsumeOnlineOrder(ctx context.Context, userID, videoID uint64) error {
	_, err := s.orderRepo.DeleteOnlineOrder(ctx, userID, videoID)
	return err
}

func (s *OrderServiceImpl) ListCart(ctx context.Context, userID uint64) ([]*dto.CartItemDTO, error) {
	orders, err := s.orderRepo.GetCartOrders(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CartItemDTO, 0, len(orders))
	for _, order := range orders {
		items = append(items, &dto.CartItemDTO{
			OrderID:      order.ID,
			VideoTitle:   order.Video.Title,
			PurchaseType: order.PurchaseType,
			Price:        order.Price,
		})
	}
	return items, nil
}
