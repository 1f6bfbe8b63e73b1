package wire

import (
	"Marquee/internal/api"
	"Marquee/internal/api/config"
	"Marquee/internal/api/handler"
	"Marquee/internal/job"
	"Marquee/internal/pkg/cron"
	"Marquee/internal/pkg/kafka"
	"Marquee/internal/repository"
	"Marquee/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronManager  *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)
	walletRepo := repository.NewWalletRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	consumptionRepo := repository.NewConsumptionRepo(db)
	videoRepo := repository.NewVideoRepo(db)
	feedRepo := repository.NewFeedRepo(db)
	permissionRepo := repository.NewPermissionRepo(db)

	userService := service.NewUserService(userRepo, roleRepo)
	userFollowService := service.NewUserFollowService(userFollowRepo, userRepo)
	walletService := service.NewWalletService(walletRepo)
	orderService := service.NewOrderService(orderRepo, videoRepo)
	consumptionService := service.NewConsumptionService(consumptionRepo, orderRepo, videoRepo)
	videoService := service.NewVideoService(videoRepo, consumptionRepo)
	feedService := service.NewFeedService(feedRepo)
	permissionService := service.NewPermissionService(permissionRepo)

	handlers := &api.HandlersGroup{
		UserHandler:        handler.NewUserHandler(userService),
		UserFollowHandler:  handler.NewUserFollowHandler(userFollowService),
		WalletHandler:      handler.NewWalletHandler(walletService),
		OrderHandler:       handler.NewOrderHandler(orderService),
		ConsumptionHandler: handler.NewConsumptionHandler(consumptionService),
		FeedHandler:        handler.NewFeedHandler(feedService),
		PermissionHandler:  handler.NewPermissionHandler(permissionService),
		VideoHandler:       handler.NewVideoHandler(videoService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg)
	if err != nil {
		return nil, err
	}

	videoStatsJob := job.NewVideoStatsJob(videoService)
	cronMgr := cron.NewCronManager(videoStatsJob)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronManager:  cronMgr,
	}, nil
}
