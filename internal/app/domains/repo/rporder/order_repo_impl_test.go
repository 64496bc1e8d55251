package rporder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rlconnector/internal/app/domains/repo/rporder"
	"rlconnector/internal/app/pkg/errorx"
	"rlconnector/internal/app/pkg/testsuit"
)

func newRepo(t *testing.T) rporder.OrderRepository {
	db := testsuit.InitSQLite(t)
	testsuit.SeedFixtures(t, db)
	return rporder.NewOrderRepository(db)
}

func TestOrderRepository_GetByIncrementID(t *testing.T) {
	repo := newRepo(t)

	order, err := repo.GetByIncrementID(context.Background(), testsuit.SimpleOrderIncrementID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), order.EntityID)
	assert.Equal(t, testsuit.SimpleOrderIncrementID, order.IncrementID)
	require.NotNil(t, order.CustomerID)
	assert.Equal(t, int64(7), *order.CustomerID)
	assert.Equal(t, "jane@example.com", order.CustomerEmail)
	assert.True(t, testsuit.OrderCreatedAt.Equal(order.CreatedAt))

	require.NotNil(t, order.BillingAddress)
	assert.Equal(t, []string{"Damrak 1", "2nd floor"}, order.BillingAddress.Street)
	require.NotNil(t, order.ShippingAddress)
	assert.Equal(t, []string{"Kalverstraat 10", "A", "box 3"}, order.ShippingAddress.Street)
	assert.Equal(t, "+31 20 222 2222", order.ShippingAddress.Telephone)

	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(1), order.Items[0].ItemID)
	assert.Equal(t, "SNK-001", order.Items[0].SKU)
	assert.Equal(t, "49.95", order.Items[0].BasePrice.String())
	assert.Equal(t, "120.88", order.Items[0].RowTotalInclTax.String())
}

func TestOrderRepository_GetByIncrementID_Bundle(t *testing.T) {
	repo := newRepo(t)

	order, err := repo.GetByIncrementID(context.Background(), testsuit.BundleOrderIncrementID)
	require.NoError(t, err)

	assert.Nil(t, order.CustomerID)
	assert.NotNil(t, order.BillingAddress)
	assert.Nil(t, order.ShippingAddress)

	require.Len(t, order.Items, 4)
	bundle := order.Items[0]
	assert.True(t, bundle.IsBundle())
	require.Len(t, bundle.Children, 2)
	assert.Equal(t, int64(4), bundle.Children[0].ItemID)
	assert.Equal(t, int64(5), bundle.Children[1].ItemID)
	assert.True(t, bundle.Children[0].HasParent())

	assert.Len(t, order.VisibleItems(), 2)
}

func TestOrderRepository_GetByIncrementID_NotFound(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.GetByIncrementID(context.Background(), "999999999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorx.ErrOrderNotFound))
	assert.Contains(t, err.Error(), "999999999")
}

func TestOrderRepository_GetByIncrementID_ExactMatch(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.GetByIncrementID(context.Background(), "00000010")
	assert.True(t, errors.Is(err, errorx.ErrOrderNotFound))

	_, err = repo.GetByIncrementID(context.Background(), "%0000101")
	assert.True(t, errors.Is(err, errorx.ErrOrderNotFound))
}
