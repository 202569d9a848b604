package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasStockFor(t *testing.T) {
	physical := NewBook("Go程序设计", "Alan", "", 4900, 5, TypePhysical)
	digital := NewBook("Go电子版", "Alan", "", 2900, 0, TypeDigital)

	// 实体书受库存约束
	assert.True(t, physical.HasStockFor(5))
	assert.False(t, physical.HasStockFor(6))

	// 电子书库存无限
	assert.True(t, digital.HasStockFor(1))
	assert.True(t, digital.HasStockFor(9999))
}

func TestAttachFile(t *testing.T) {
	digital := NewBook("Go电子版", "Alan", "", 2900, 0, TypeDigital)
	physical := NewBook("Go程序设计", "Alan", "", 4900, 5, TypePhysical)

	assert.NoError(t, digital.AttachFile("/uploads/book.pdf"))
	assert.Equal(t, "/uploads/book.pdf", digital.FileURL)

	assert.ErrorIs(t, physical.AttachFile("/uploads/book.pdf"), ErrNotDigitalBook)
}

func TestPrimaryImageURL(t *testing.T) {
	b := NewBook("Go程序设计", "Alan", "", 4900, 5, TypePhysical)
	assert.Empty(t, b.PrimaryImageURL())

	b.Images = []BookImage{
		{URL: "/uploads/a.jpg"},
		{URL: "/uploads/b.jpg", IsPrimary: true},
	}
	assert.Equal(t, "/uploads/b.jpg", b.PrimaryImageURL())

	// 无主图时回退第一张
	b.Images[1].IsPrimary = false
	assert.Equal(t, "/uploads/a.jpg", b.PrimaryImageURL())
}

func TestUpdatePriceAndStock(t *testing.T) {
	b := NewBook("Go程序设计", "Alan", "", 4900, 5, TypePhysical)

	assert.ErrorIs(t, b.UpdatePrice(0), ErrInvalidPrice)
	assert.NoError(t, b.UpdatePrice(5900))
	assert.Equal(t, int64(5900), b.Price)

	assert.ErrorIs(t, b.UpdateStock(-1), ErrInvalidStock)
	assert.NoError(t, b.UpdateStock(0))
	assert.Equal(t, 0, b.Stock)
}

func TestParseBookType(t *testing.T) {
	bt, ok := ParseBookType("PHYSICAL")
	assert.True(t, ok)
	assert.Equal(t, TypePhysical, bt)

	_, ok = ParseBookType("EBOOK")
	assert.False(t, ok)
}
