package dto

// DepositDTO 充值
type DepositDTO struct {
	Amount int64 `json:"amount" binding:"required"`
}

// BalanceDTO 余额
type BalanceDTO struct {
	Balance int64 `json:"balance"`
}
