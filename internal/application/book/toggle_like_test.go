package book

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libreria/bookshop/internal/domain/book"
	apperrors "github.com/libreria/bookshop/pkg/errors"
	"github.com/libreria/bookshop/pkg/metrics"
)

func TestMain(m *testing.M) {
	metrics.InitMetrics()
	os.Exit(m.Run())
}

// fakeBookService 只实现toggle用到的GetBook
type fakeBookService struct {
	books map[uint]*book.Book
}

func (f *fakeBookService) CreateBook(ctx context.Context, title, author, description string, price int64, stock int, bookType book.BookType, categoryIDs []uint) (*book.Book, error) {
	panic("not used")
}

func (f *fakeBookService) GetBook(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (f *fakeBookService) UpdateBook(ctx context.Context, id uint, title, author, description string, price int64, stock int) (*book.Book, error) {
	panic("not used")
}

func (f *fakeBookService) DeleteBook(ctx context.Context, id uint) error { panic("not used") }

func (f *fakeBookService) ListBooks(ctx context.Context, filter book.SearchFilter) ([]book.Summary, int64, error) {
	panic("not used")
}

// fakeLikeRepo 内存点赞仓储
type fakeLikeRepo struct {
	nextID uint
	likes  map[uint]*book.Like // id → like
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[uint]*book.Like)}
}

func (f *fakeLikeRepo) Find(ctx context.Context, userID, bookID uint) (*book.Like, error) {
	for _, l := range f.likes {
		if l.UserID == userID && l.BookID == bookID {
			return l, nil
		}
	}
	return nil, apperrors.New(apperrors.ErrCodeNotFound, "点赞记录不存在")
}

func (f *fakeLikeRepo) Create(ctx context.Context, like *book.Like) error {
	f.nextID++
	like.ID = f.nextID
	f.likes[like.ID] = like
	return nil
}

func (f *fakeLikeRepo) Delete(ctx context.Context, id uint) error {
	delete(f.likes, id)
	return nil
}

func (f *fakeLikeRepo) CountByBook(ctx context.Context, bookID uint) (int64, error) {
	var count int64
	for _, l := range f.likes {
		if l.BookID == bookID {
			count++
		}
	}
	return count, nil
}

func newToggleUseCase() (*ToggleLikeUseCase, *fakeLikeRepo) {
	active := book.NewBook("Go语言实战", "William Kennedy", "", 5900, 10, book.TypePhysical)
	active.ID = 1

	inactive := book.NewBook("已下架的书", "无名氏", "", 1000, 0, book.TypePhysical)
	inactive.ID = 2
	inactive.Deactivate()

	svc := &fakeBookService{books: map[uint]*book.Book{1: active, 2: inactive}}
	likeRepo := newFakeLikeRepo()
	return NewToggleLikeUseCase(svc, likeRepo), likeRepo
}

func TestToggleLike_AddThenRemove(t *testing.T) {
	uc, _ := newToggleUseCase()
	ctx := context.Background()

	// 第一次toggle：点赞
	resp, err := uc.Execute(ctx, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, MsgLikeAdded, resp.Message)
	assert.Equal(t, int64(1), resp.LikesCount)

	// 第二次toggle：取消
	resp, err = uc.Execute(ctx, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, MsgLikeRemoved, resp.Message)
	assert.Equal(t, int64(0), resp.LikesCount)

	// 第三次toggle：重新点赞
	resp, err = uc.Execute(ctx, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, MsgLikeAdded, resp.Message)
	assert.Equal(t, int64(1), resp.LikesCount)
}

func TestToggleLike_CountPerBook(t *testing.T) {
	uc, likeRepo := newToggleUseCase()
	ctx := context.Background()

	// 两个用户点赞同一本书
	_, err := uc.Execute(ctx, 100, 1)
	require.NoError(t, err)
	resp, err := uc.Execute(ctx, 200, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.LikesCount)

	count, err := likeRepo.CountByBook(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestToggleLike_BookNotFound(t *testing.T) {
	uc, _ := newToggleUseCase()

	_, err := uc.Execute(context.Background(), 100, 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestToggleLike_InactiveBook(t *testing.T) {
	uc, _ := newToggleUseCase()

	// 已下架的图书对外等同于不存在
	_, err := uc.Execute(context.Background(), 100, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}
