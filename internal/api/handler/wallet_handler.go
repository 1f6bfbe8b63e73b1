package handler

import (
	"Marquee/internal/api/dto"
	"Marquee/internal/pkg/response"
	"Marquee/internal/pkg/util"
	"Marquee/internal/service"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletSvc service.WalletService
}

func NewWalletHandler(walletSvc service.WalletService) *WalletHandler {
	return &WalletHandler{
		walletSvc: walletSvc,
	}
}

func (s *WalletHandler) GetBalance(c *gin.Context) {
	userID := c.GetUint64("user_id")
	balance, err := s.walletSvc.GetBalance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.BalanceDTO{Balance: balance})
}

func (s *WalletHandler) Deposit(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var depositDTO dto.DepositDTO
	err := c.ShouldBind(&depositDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&depositDTO); err != nil {
		response.Error(c, err)
		return
	}
	balance, err := s.walletSvc.Deposit(c.Request.Context(), userID, depositDTO.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.BalanceDTO{Balance: balance})
}
