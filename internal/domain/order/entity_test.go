package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	o, err := NewOrder("ORD1", 10, []Item{
		{BookID: 1, Quantity: 2, Price: 1500},
		{BookID: 2, Quantity: 1, Price: 1500},
	})
	require.NoError(t, err)
	return o
}

// TestNewOrder 总金额由明细计算，初始状态Pending
func TestNewOrder(t *testing.T) {
	o := newTestOrder(t)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, int64(4500), o.Total)
}

func TestNewOrder_EmptyItems(t *testing.T) {
	_, err := NewOrder("ORD1", 10, nil)
	assert.ErrorIs(t, err, ErrInvalidOrderItems)
}

func TestNewOrder_InvalidQuantity(t *testing.T) {
	_, err := NewOrder("ORD1", 10, []Item{{BookID: 1, Quantity: 0, Price: 100}})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

// TestStatusMachine 合法流转：Pending→Paid→Shipped→Completed
func TestStatusMachine(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.Pay())
	require.NoError(t, o.Ship())
	require.NoError(t, o.Complete())
	assert.Equal(t, StatusCompleted, o.Status)

	// 终态不允许再流转
	assert.ErrorIs(t, o.Cancel(), ErrInvalidStatusTransition)
}

// TestStatusMachine_Cancel 仅Pending/Paid可取消
func TestStatusMachine_Cancel(t *testing.T) {
	o := newTestOrder(t)
	require.NoError(t, o.Cancel())
	assert.Equal(t, StatusCancelled, o.Status)

	o = newTestOrder(t)
	require.NoError(t, o.Pay())
	require.NoError(t, o.Cancel())

	o = newTestOrder(t)
	require.NoError(t, o.Pay())
	require.NoError(t, o.Ship())
	assert.ErrorIs(t, o.Cancel(), ErrInvalidStatusTransition)
}

// TestStatusMachine_NoSkip 不允许跳级流转
func TestStatusMachine_NoSkip(t *testing.T) {
	o := newTestOrder(t)
	assert.ErrorIs(t, o.Ship(), ErrInvalidStatusTransition)
	assert.ErrorIs(t, o.Complete(), ErrInvalidStatusTransition)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.String())
	assert.Equal(t, "Cancelled", StatusCancelled.String())
	assert.Equal(t, "Unknown", Status(99).String())
}

func TestParseStatus(t *testing.T) {
	s, ok := ParseStatus("Shipped")
	assert.True(t, ok)
	assert.Equal(t, StatusShipped, s)

	_, ok = ParseStatus("Delivered")
	assert.False(t, ok)
}

func TestIsOwnedBy(t *testing.T) {
	o := newTestOrder(t)
	assert.True(t, o.IsOwnedBy(10))
	assert.False(t, o.IsOwnedBy(11))
}

func TestGenerateOrderNo(t *testing.T) {
	no := GenerateOrderNo()
	assert.True(t, strings.HasPrefix(no, "ORD"))
	// ORD + 10位时间戳 + 6位随机数
	assert.Len(t, no, 19)
}

func TestSearchFilterDefaults(t *testing.T) {
	f := NewSearchFilter("", 0, 0)
	assert.Equal(t, DefaultPage, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)

	f = NewSearchFilter("alice", 3, 20)
	assert.Equal(t, 40, f.Offset())
}
