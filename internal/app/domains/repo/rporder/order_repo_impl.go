package rporder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rlconnector/common/entity"
	"rlconnector/internal/app/domains/entity/etorder"
	"rlconnector/internal/app/pkg/errorx"

	"gorm.io/gorm"
)

// OrderRepositoryImpl 订单仓储实现（MySQL）
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// GetByIncrementID 根据订单号查询订单，将 GORM 模型转换为领域对象
func (r *OrderRepositoryImpl) GetByIncrementID(ctx context.Context, incrementID string) (*etorder.Order, error) {
	var po entity.SalesOrder
	err := r.db.WithContext(ctx).Where("increment_id = ?", incrementID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("increment_id=%s: %w", incrementID, errorx.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("query sales_order failed: %w", err)
	}

	var addresses []entity.SalesOrderAddress
	if err := r.db.WithContext(ctx).
		Where("parent_id = ?", po.EntityID).
		Order("entity_id ASC").
		Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("query sales_order_address failed: %w", err)
	}

	var items []entity.SalesOrderItem
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", po.EntityID).
		Order("item_id ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("query sales_order_item failed: %w", err)
	}

	return r.toDomainModel(&po, addresses, items), nil
}

// toDomainModel GORM 模型转换为领域对象
func (r *OrderRepositoryImpl) toDomainModel(po *entity.SalesOrder, addresses []entity.SalesOrderAddress, items []entity.SalesOrderItem) *etorder.Order {
	order := &etorder.Order{
		EntityID:      po.EntityID,
		IncrementID:   po.IncrementID,
		CustomerID:    po.CustomerID,
		CustomerEmail: po.CustomerEmail,
		CreatedAt:     po.CreatedAt,
		Items:         make([]*etorder.Item, 0, len(items)),
	}

	for i := range addresses {
		switch addresses[i].AddressType {
		case entity.AddressTypeBilling:
			order.BillingAddress = toAddress(&addresses[i])
		case entity.AddressTypeShipping:
			order.ShippingAddress = toAddress(&addresses[i])
		}
	}

	for i := range items {
		order.Items = append(order.Items, toItem(&items[i]))
	}
	order.AttachChildren()

	return order
}

func toAddress(po *entity.SalesOrderAddress) *etorder.Address {
	var street []string
	if po.Street != "" {
		street = strings.Split(po.Street, "\n")
	}
	return &etorder.Address{
		Firstname: po.Firstname,
		Lastname:  po.Lastname,
		Postcode:  po.Postcode,
		City:      po.City,
		CountryID: po.CountryID,
		Street:    street,
		Telephone: po.Telephone,
	}
}

func toItem(po *entity.SalesOrderItem) *etorder.Item {
	return &etorder.Item{
		ItemID:          po.ItemID,
		ParentItemID:    po.ParentItemID,
		ProductID:       po.ProductID,
		ProductType:     po.ProductType,
		SKU:             po.SKU,
		Name:            po.Name,
		QtyOrdered:      po.QtyOrdered,
		BasePrice:       po.BasePrice,
		DiscountAmount:  po.DiscountAmount,
		PriceInclTax:    po.PriceInclTax,
		RowTotalInclTax: po.RowTotalInclTax,
	}
}
