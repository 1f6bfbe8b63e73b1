package service

import (
	"Marquee/internal/repository"
	"context"
)

type WalletService interface {
	GetBalance(ctx context.Context, userID uint64) (int64, error)
	Deposit(ctx context.Context, userID uint64, amount int64) (int64, error)
	Withdraw(ctx context.Context, userID uint64, amount int64) (int64, error)
}

type WalletServiceImpl struct {
	walletRepo repository.WalletRepo
}

func NewWalletService(walletRepo repository.WalletRepo) WalletService {
	return &WalletServiceImpl{walletRepo: walletRepo}
}

func (s *WalletServiceImpl) GetBalance(ctx context.Context, userID uint64) (int64, error) {
	balance, err := s.walletRepo.GetBalance(ctx, userID)
	if err != nil {
		return 0, err
	}
	if balance == nil {
		return 0, ErrUserNotFound
	}
	return *balance, nil
}

func (s *WalletServiceImpl) Deposit(ctx context.Context, userID uint64, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrAmountInvalid
	}

	rows, err := s.walletRepo.AddBalance(ctx, userID, amount)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, ErrUserNotFound
	}

	return s.GetBalance(ctx, userID)
}

// Withdraw 余额不足时整笔失败，不做部分扣款
func (s *WalletServiceImpl) Withdraw(ctx context.Context, userID uint64, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrAmountInvalid
	}

	rows, err := s.walletRepo.DeductBalance(ctx, userID, amount)
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		// 区分用户不存在和余额不足
		balance, err := s.walletRepo.GetBalance(ctx, userID)
		if err != nil {
			return 0, err
		}
		if balance == nil {
			return 0, ErrUserNotFound
		}
		return 0, ErrInsufficientFunds
	}

	return s.GetBalance(ctx, userID)
}
