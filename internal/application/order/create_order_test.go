package order

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libreria/bookshop/internal/domain/cart"
	"github.com/libreria/bookshop/internal/domain/order"
	apperrors "github.com/libreria/bookshop/pkg/errors"
	"github.com/libreria/bookshop/pkg/metrics"
)

func TestMain(m *testing.M) {
	metrics.InitMetrics()
	os.Exit(m.Run())
}

// fakeTxManager 直接执行闭包，不包事务
type fakeTxManager struct{}

func (f *fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeCartRepo 按用户维护购物车展示行
type fakeCartRepo struct {
	lines map[uint][]cart.Line
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{lines: make(map[uint][]cart.Line)}
}

func (f *fakeCartRepo) Upsert(ctx context.Context, item *cart.Item) error { return nil }

func (f *fakeCartRepo) FindByUserAndBook(ctx context.Context, userID, bookID uint) (*cart.Item, error) {
	return nil, nil
}

func (f *fakeCartRepo) ListByUser(ctx context.Context, userID uint) ([]cart.Line, error) {
	return f.lines[userID], nil
}

func (f *fakeCartRepo) Remove(ctx context.Context, userID, bookID uint) error { return nil }

func (f *fakeCartRepo) DeleteByUser(ctx context.Context, userID uint) error {
	delete(f.lines, userID)
	return nil
}

// fakeOrderRepo 记录创建的订单
type fakeOrderRepo struct {
	nextID  uint
	created []*order.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	f.nextID++
	o.ID = f.nextID
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	for _, o := range f.created {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (f *fakeOrderRepo) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	return nil, order.ErrOrderNotFound
}

func (f *fakeOrderRepo) Update(ctx context.Context, o *order.Order) error { return nil }

func (f *fakeOrderRepo) ListByUser(ctx context.Context, userID uint, page, limit int) ([]order.Summary, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderRepo) ListAll(ctx context.Context, filter order.SearchFilter) ([]order.Summary, int64, error) {
	return nil, 0, nil
}

func TestCreateOrder_FromCart(t *testing.T) {
	cartRepo := newFakeCartRepo()
	cartRepo.lines[1] = []cart.Line{
		{BookID: 10, Title: "Go语言实战", Price: 1500, Quantity: 2},
		{BookID: 20, Title: "数据库系统概念", Price: 900, Quantity: 1},
	}
	orderRepo := &fakeOrderRepo{}
	uc := NewCreateOrderUseCase(orderRepo, cartRepo, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)

	// 金额按明细重算：1500*2 + 900*1
	assert.Equal(t, int64(3900), resp.Total)
	assert.Equal(t, order.StatusPending.String(), resp.Status)
	assert.True(t, len(resp.OrderNo) > 0)

	// 明细做了价格快照
	require.Len(t, orderRepo.created, 1)
	created := orderRepo.created[0]
	require.Len(t, created.Items, 2)
	assert.Equal(t, int64(1500), created.Items[0].Price)
	assert.Equal(t, 2, created.Items[0].Quantity)

	// 下单成功后购物车被清空
	assert.Empty(t, cartRepo.lines[1])
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	uc := NewCreateOrderUseCase(&fakeOrderRepo{}, newFakeCartRepo(), &fakeTxManager{})

	_, err := uc.Execute(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, cart.ErrCartEmpty)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreateOrder_OwnOrdersOnly(t *testing.T) {
	// 不同用户的购物车互不影响
	cartRepo := newFakeCartRepo()
	cartRepo.lines[1] = []cart.Line{{BookID: 10, Price: 1000, Quantity: 1}}
	cartRepo.lines[2] = []cart.Line{{BookID: 20, Price: 2000, Quantity: 3}}
	orderRepo := &fakeOrderRepo{}
	uc := NewCreateOrderUseCase(orderRepo, cartRepo, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, int64(6000), resp.Total)
	assert.Equal(t, uint(2), orderRepo.created[0].UserID)

	// 用户1的购物车原样保留
	assert.Len(t, cartRepo.lines[1], 1)
}
