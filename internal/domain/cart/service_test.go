package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libreria/bookshop/internal/domain/book"
	apperrors "github.com/libreria/bookshop/pkg/errors"
)

// fakeTxManager 直接执行fn（单元测试不需要真实事务）
type fakeTxManager struct{}

func (fakeTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeBookRepo 内存版图书仓储
type fakeBookRepo struct {
	books map[uint]*book.Book
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error { return nil }
func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) error { return nil }
func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error      { return nil }
func (r *fakeBookRepo) List(ctx context.Context, f book.SearchFilter) ([]book.Summary, int64, error) {
	return nil, 0, nil
}
func (r *fakeBookRepo) AddImage(ctx context.Context, img *book.BookImage) error { return nil }
func (r *fakeBookRepo) FindCategoryByID(ctx context.Context, id uint) (*book.Category, error) {
	return nil, book.ErrCategoryNotFound
}
func (r *fakeBookRepo) ListCategories(ctx context.Context) ([]book.Category, error) {
	return nil, nil
}

// fakeCartRepo 内存版购物车仓储
type fakeCartRepo struct {
	books map[uint]*book.Book // 用于ListByUser关联实时价格
	items map[uint]map[uint]*Item
}

func newFakeCartRepo(books map[uint]*book.Book) *fakeCartRepo {
	return &fakeCartRepo{books: books, items: make(map[uint]map[uint]*Item)}
}

func (r *fakeCartRepo) Upsert(ctx context.Context, item *Item) error {
	if r.items[item.UserID] == nil {
		r.items[item.UserID] = make(map[uint]*Item)
	}
	if existing, ok := r.items[item.UserID][item.BookID]; ok {
		existing.Quantity += item.Quantity
		return nil
	}
	r.items[item.UserID][item.BookID] = item
	return nil
}

func (r *fakeCartRepo) FindByUserAndBook(ctx context.Context, userID, bookID uint) (*Item, error) {
	item, ok := r.items[userID][bookID]
	if !ok {
		return nil, nil
	}
	return item, nil
}

func (r *fakeCartRepo) ListByUser(ctx context.Context, userID uint) ([]Line, error) {
	var lines []Line
	for bookID, item := range r.items[userID] {
		b := r.books[bookID]
		lines = append(lines, Line{
			BookID:   bookID,
			Title:    b.Title,
			Author:   b.Author,
			Type:     b.Type.String(),
			Price:    b.Price,
			Quantity: item.Quantity,
			ImageURL: b.PrimaryImageURL(),
		})
	}
	return lines, nil
}

func (r *fakeCartRepo) Remove(ctx context.Context, userID, bookID uint) error {
	delete(r.items[userID], bookID)
	return nil
}

func (r *fakeCartRepo) DeleteByUser(ctx context.Context, userID uint) error {
	delete(r.items, userID)
	return nil
}

func newTestService() (Service, *fakeCartRepo, map[uint]*book.Book) {
	physical := book.NewBook("Go程序设计", "Alan", "", 1500, 5, book.TypePhysical)
	physical.ID = 1
	digital := book.NewBook("Go电子版", "Alan", "", 900, 0, book.TypeDigital)
	digital.ID = 2
	inactive := book.NewBook("已下架", "Bob", "", 1000, 10, book.TypePhysical)
	inactive.ID = 3
	inactive.Deactivate()

	books := map[uint]*book.Book{1: physical, 2: digital, 3: inactive}
	cartRepo := newFakeCartRepo(books)
	svc := NewService(cartRepo, &fakeBookRepo{books: books}, fakeTxManager{})
	return svc, cartRepo, books
}

func TestAddToCart_Success(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, 10, 1, 2))

	item, err := repo.FindByUserAndBook(ctx, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
}

// TestAddToCart_Increment 重复加购累加数量而不是覆盖
func TestAddToCart_Increment(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, 10, 1, 2))
	require.NoError(t, svc.AddToCart(ctx, 10, 1, 3))

	item, err := repo.FindByUserAndBook(ctx, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
}

// TestAddToCart_InsufficientStock 库存5，已有2，再加4应失败（2+4>5）
func TestAddToCart_InsufficientStock(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, 10, 1, 2))

	err := svc.AddToCart(ctx, 10, 1, 4)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// 失败不应改变已有数量
	item, err := repo.FindByUserAndBook(ctx, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
}

// TestAddToCart_DigitalUnlimited 电子书不受库存约束
func TestAddToCart_DigitalUnlimited(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	assert.NoError(t, svc.AddToCart(ctx, 10, 2, 100))
	assert.NoError(t, svc.AddToCart(ctx, 10, 2, 100))
}

// TestAddToCart_InactiveBook 下架图书表现为"不存在"
func TestAddToCart_InactiveBook(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.AddToCart(context.Background(), 10, 3, 1)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestAddToCart_InvalidQuantity(t *testing.T) {
	svc, _, _ := newTestService()

	assert.ErrorIs(t, svc.AddToCart(context.Background(), 10, 1, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, svc.AddToCart(context.Background(), 10, 1, -1), ErrInvalidQuantity)
}

func TestAddToCart_BookNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.AddToCart(context.Background(), 10, 999, 1)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

// TestGetCart 合计金额 = Σ(当前单价×数量)
func TestGetCart(t *testing.T) {
	svc, _, books := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, 10, 1, 2)) // 1500*2 = 3000
	require.NoError(t, svc.AddToCart(ctx, 10, 2, 1)) // 900*1  = 900

	c, err := svc.GetCart(ctx, 10)
	require.NoError(t, err)

	assert.Len(t, c.Lines, 2)
	assert.Equal(t, 3, c.TotalItems)
	assert.Equal(t, int64(3900), c.TotalPrice)

	// 展示价格跟随图书当前价格（不是加购时的价格）
	books[1].UpdatePrice(2000)
	c, err = svc.GetCart(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(4900), c.TotalPrice)
}

// TestGetCart_Empty 空购物车返回专门的错误
func TestGetCart_Empty(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetCart(context.Background(), 10)
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRemoveFromCart(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, 10, 1, 2))
	require.NoError(t, svc.RemoveFromCart(ctx, 10, 1))

	item, err := repo.FindByUserAndBook(ctx, 10, 1)
	require.NoError(t, err)
	assert.Nil(t, item)
}
