package dto

// PurchaseDTO 下单
type PurchaseDTO struct {
	VideoID      uint64 `json:"video_id" binding:"required"`
	PurchaseType uint8  `json:"purchase_type" binding:"required" validate:"min=1,max=2"`
}

// CartItemDTO 购物车条目
type CartItemDTO struct {
	OrderID      uint64 `json:"order_id"`
	VideoTitle   string `json:"video_title"`
	PurchaseType uint8  `json:"purchase_type"`
	Price        int64  `json:"price"`
}
