package handler

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/pkg/response"
	"Marquee/internal/pkg/util"
	"Marquee/internal/service"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderSvc service.OrderService
}

func NewOrderHandler(orderSvc service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderSvc: orderSvc,
	}
}

// Purchase 下单即扣款，余额不足整单失败
func (s *OrderHandler) Purchase(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var purchaseDTO dto.PurchaseDTO
	err := c.ShouldBind(&purchaseDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&purchaseDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.orderSvc.Purchase(c.Request.Context(), userID, purchaseDTO.VideoID, purchaseDTO.PurchaseType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *OrderHandler) GetCart(c *gin.Context) {
	userID := c.GetUint64("user_id")
	items, err := s.orderSvc.ListCart(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}
