package api

import "Marquee/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler        *handler.UserHandler
	UserFollowHandler  *handler.UserFollowHandler
	WalletHandler      *handler.WalletHandler
	OrderHandler       *handler.OrderHandler
	ConsumptionHandler *handler.ConsumptionHandler
	FeedHandler        *handler.FeedHandler
	PermissionHandler  *handler.PermissionHandler
	VideoHandler       *handler.VideoHandler
}
