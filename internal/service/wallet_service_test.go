package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletDeposit(t *testing.T) {
	walletRepo := newFakeWalletRepo()
	walletRepo.balances[1] = 0
	svc := NewWalletService(walletRepo)
	ctx := context.Background()

	balance, err := svc.Deposit(ctx, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	balance, err = svc.Deposit(ctx, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(150), balance)
}

func TestWalletDepositInvalidAmount(t *testing.T) {
	walletRepo := newFakeWalletRepo()
	walletRepo.balances[1] = 10
	svc := NewWalletService(walletRepo)
	ctx := context.Background()

	_, err := svc.Deposit(ctx, 1, 0)
	assert.ErrorIs(t, err, ErrAmountInvalid)

	_, err = svc.Deposit(ctx, 1, -5)
	assert.ErrorIs(t, err, ErrAmountInvalid)

	balance, err := svc.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance)
}

func TestWalletDepositUnknownUser(t *testing.T) {
	svc := NewWalletService(newFakeWalletRepo())

	_, err := svc.Deposit(context.Background(), 42, 100)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestWalletWithdraw(t *testing.T) {
	walletRepo := newFakeWalletRepo()
	walletRepo.balances[1] = 100
	svc := NewWalletService(walletRepo)

	balance, err := svc.Withdraw(context.Background(), 1, 40)
	require.NoError(t, err)
	assert.Equal(t, int64(60), balance)
}

func TestWalletWithdrawInsufficientFunds(t *testing.T) {
	walletRepo := newFakeWalletRepo()
	walletRepo.balances[1] = 10
	svc := NewWalletService(walletRepo)
	ctx := context.Background()

	_, err := svc.Withdraw(ctx, 1, 40)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// 失败的取款不能动余额
	balance, err := svc.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance)
}

func TestWalletWithdrawUnknownUser(t *testing.T) {
	svc := NewWalletService(newFakeWalletRepo())

	_, err := svc.Withdraw(context.Background(), 42, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
