package service

import (
	"Marquee/internal/pkg/consts"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderFixture(balance int64) (*fakeWalletRepo, *fakeVideoRepo, *fakeOrderRepo, OrderService) {
	walletRepo := newFakeWalletRepo()
	walletRepo.balances[1] = balance
	videoRepo := newFakeVideoRepo()
	orderRepo := newFakeOrderRepo(walletRepo, videoRepo)
	return walletRepo, videoRepo, orderRepo, NewOrderService(orderRepo, videoRepo)
}

func TestPurchaseDebitsAndCreatesOrder(t *testing.T) {
	walletRepo, videoRepo, orderRepo, svc := newOrderFixture(100)
	video := videoRepo.addVideo("Dune", 30, 80)
	ctx := context.Background()

	err := svc.Purchase(ctx, 1, video.ID, consts.PurchaseTypeOnline)
	require.NoError(t, err)

	assert.Equal(t, int64(70), walletRepo.balances[1])
	pending, err := svc.HasPendingVideoOrder(ctx, 1, video.ID)
	require.NoError(t, err)
	assert.True(t, pending)
	assert.Len(t, orderRepo.orders, 1)
	assert.Equal(t, int64(30), orderRepo.orders[0].Price)
}

func TestPurchasePhysicalUsesDiscPrice(t *testing.T) {
	walletRepo, videoRepo, _, svc := newOrderFixture(100)
	video := videoRepo.addVideo("Dune", 30, 80)
	ctx := context.Background()

	err := svc.Purchase(ctx, 1, video.ID, consts.PurchaseTypePhysical)
	require.NoError(t, err)
	assert.Equal(t, int64(20), walletRepo.balances[1])

	// 实体碟不算待观看
	pending, err := svc.HasPendingOrder(ctx, 1)
	require.NoError(t, err)
	assert.False(t, pending)
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	walletRepo, videoRepo, orderRepo, svc := newOrderFixture(10)
	video := videoRepo.addVideo("Dune", 30, 80)

	err := svc.Purchase(context.Background(), 1, video.ID, consts.PurchaseTypeOnline)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// 失败的购买既不扣款也不落单
	assert.Equal(t, int64(10), walletRepo.balances[1])
	assert.Empty(t, orderRepo.orders)
}

func TestPurchaseValidation(t *testing.T) {
	_, videoRepo, _, svc := newOrderFixture(100)
	video := videoRepo.addVideo("Dune", 30, 80)
	ctx := context.Background()

	err := svc.Purchase(ctx, 1, video.ID, 3)
	assert.ErrorIs(t, err, ErrParamInvalid)

	err = svc.Purchase(ctx, 1, 999, consts.PurchaseTypeOnline)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestConsumeOnlineOrderIdempotent(t *testing.T) {
	_, videoRepo, orderRepo, svc := newOrderFixture(100)
	video := videoRepo.addVideo("Dune", 30, 80)
	ctx := context.Background()

	require.NoError(t, svc.Purchase(ctx, 1, video.ID, consts.PurchaseTypeOnline))
	require.NoError(t, svc.ConsumeOnlineOrder(ctx, 1, video.ID))
	assert.Empty(t, orderRepo.orders)

	// 没有可核销订单时是空操作
	require.NoError(t, svc.ConsumeOnlineOrder(ctx, 1, video.ID))
}

func TestListCart(t *testing.T) {
	_, videoRepo, _, svc := newOrderFixture(1000)
	first := videoRepo.addVideo("Dune", 30, 80)
	second := videoRepo.addVideo("Heat", 25, 60)
	ctx := context.Background()

	require.NoError(t, svc.Purchase(ctx, 1, first.ID, consts.PurchaseTypeOnline))
	require.NoError(t, svc.Purchase(ctx, 1, second.ID, consts.PurchaseTypePhysical))

	items, err := svc.ListCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Dune", items[0].VideoTitle)
	assert.Equal(t, int64(30), items[0].Price)
	assert.Equal(t, "Heat", items[1].VideoTitle)
	assert.Equal(t, consts.PurchaseTypePhysical, items[1].PurchaseType)
}
