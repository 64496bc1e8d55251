package svorderinfo

import (
	"context"
	"errors"
	"strings"
	"time"

	"rlconnector/internal/app/domains/apimodel/response"
	"rlconnector/internal/app/domains/entity/etcatalog"
	"rlconnector/internal/app/domains/entity/etorder"
	"rlconnector/internal/app/domains/modules/mdcatalog"
	"rlconnector/internal/app/domains/modules/mdorder"
	"rlconnector/internal/app/domains/modules/mdsettings"
	"rlconnector/internal/app/pkg/errorx"
	"rlconnector/internal/app/pkg/logger"
	"rlconnector/internal/app/pkg/metrics"
)

// MaxIncrementIDLength sales_order.increment_id 的列宽
const MaxIncrementIDLength = 50

// OrderInfoService 订单快照服务，负责组装退货系统所需的订单数据
type OrderInfoService struct {
	orderModule   *mdorder.OrderModule
	catalogModule *mdcatalog.CatalogModule
	settings      mdsettings.Settings
	logger        logger.Logger
	metrics       *metrics.Metrics
}

// NewOrderInfoService 创建订单快照服务实例，metrics 可以为 nil
func NewOrderInfoService(
	orderModule *mdorder.OrderModule,
	catalogModule *mdcatalog.CatalogModule,
	settings mdsettings.Settings,
	log logger.Logger,
	m *metrics.Metrics,
) *OrderInfoService {
	return &OrderInfoService{
		orderModule:   orderModule,
		catalogModule: catalogModule,
		settings:      settings,
		logger:        log,
		metrics:       m,
	}
}

// Snapshot 组装对外快照
// 成功时 return_code=0 并附带 result；任何错误都返回 return_code=112 和错误信息，不返回部分结果
func (s *OrderInfoService) Snapshot(ctx context.Context, incrementID string) *response.OrderSnapshot {
	start := time.Now()
	ctx = logger.WithIncrementID(ctx, incrementID)

	snapshot := s.newSnapshot(ctx)
	info, err := s.GetOrderInfo(ctx, incrementID)
	if err != nil {
		return s.fail(ctx, snapshot, err, start)
	}

	s.metrics.ObserveOrderInfo("", time.Since(start))
	return snapshot.Succeed(info)
}

// Reject 请求在进入查询前已被拒绝（如参数绑定失败），返回带版本号的失败快照
func (s *OrderInfoService) Reject(ctx context.Context, err error) *response.OrderSnapshot {
	start := time.Now()
	return s.fail(ctx, s.newSnapshot(ctx), err, start)
}

func (s *OrderInfoService) newSnapshot(ctx context.Context) *response.OrderSnapshot {
	version, err := s.orderModule.InstalledModuleVersion(ctx)
	if err != nil {
		s.logger.Warnf(ctx, "[RET_ORDER_INFO] read installed module version failed: %v", err)
	}
	return response.NewOrderSnapshot(version)
}

func (s *OrderInfoService) fail(ctx context.Context, snapshot *response.OrderSnapshot, err error, start time.Time) *response.OrderSnapshot {
	kind := errorx.KindOf(err)
	s.metrics.ObserveOrderInfo(string(kind), time.Since(start))

	if kind == errorx.KindNotFound || kind == errorx.KindInvalidInput {
		s.logger.Infof(ctx, "[RET_ORDER_INFO] %v (kind=%s)", err, kind)
	} else {
		s.logger.Errorf(ctx, "[RET_ORDER_INFO] %v (kind=%s)", err, kind)
	}
	return snapshot.Fail(err)
}

// GetOrderInfo 查询并组装订单信息（纯查询，无副作用）
// 返回的错误均为 *errorx.Error
func (s *OrderInfoService) GetOrderInfo(ctx context.Context, incrementID string) (*response.OrderInfo, error) {
	if err := validateIncrementID(incrementID); err != nil {
		return nil, err
	}

	s.logger.Debugf(ctx, "[RET_ORDER_INFO] Increment Id %s", incrementID)

	order, err := s.orderModule.GetOrderByIncrementID(ctx, incrementID)
	if err != nil {
		if errors.Is(err, errorx.ErrOrderNotFound) {
			return nil, errorx.NotFound(err, "order with increment id %s not found", incrementID)
		}
		return nil, errorx.Storage(err, "load order %s failed: %v", incrementID, err)
	}

	info := response.FromOrderEntity(order)
	s.logger.Debugf(ctx, "[RET_ORDER_INFO] Order Id %d", info.OrderID)
	s.logger.Debugf(ctx, "[RET_ORDER_INFO] Customer Email %s", info.Customer.Email)

	separateBundle, err := s.settings.SeparateBundleEnabled(ctx)
	if err != nil {
		return nil, errorx.Storage(err, "read separate bundle setting failed: %v", err)
	}
	eanAttributeCode, err := s.settings.EanAttributeCode(ctx)
	if err != nil {
		return nil, errorx.Storage(err, "read ean attribute code setting failed: %v", err)
	}

	items := order.VisibleItems()
	if separateBundle {
		items = order.AllItems()
	}
	s.logger.Debugf(ctx, "[RET_ORDER_INFO] Order has items %d", len(items))

	products, err := s.catalogModule.LoadProducts(ctx, referencedProductIDs(items, separateBundle))
	if err != nil {
		return nil, errorx.Storage(err, "load products failed: %v", err)
	}

	resolver := &productResolver{
		products:         products,
		images:           s.catalogModule.Images(),
		eanAttributeCode: eanAttributeCode,
	}

	for position, item := range items {
		// 子订单行只在父订单行下展示
		if item.HasParent() {
			continue
		}

		line := &response.OrderProduct{
			LineFields: response.FromItemEntity(item),
			ItemType:   item.ProductType,
		}

		if item.IsBundle() && separateBundle {
			line.BundleInfo = response.NewSeparatedBundle(item)
			for childPosition, child := range item.Children {
				bundleChild := &response.BundleChild{LineFields: response.FromItemEntity(child)}
				bundleChild.Name, bundleChild.CatalogInfo = resolver.resolve(child)
				line.BundleChildren.Add(childPosition, bundleChild)
			}
		}

		line.Name, line.CatalogInfo = resolver.resolve(item)
		info.OrderProducts.Add(position, line)
	}

	return info, nil
}

func validateIncrementID(incrementID string) error {
	if strings.TrimSpace(incrementID) == "" {
		return errorx.InvalidInput("increment id is required")
	}
	if len(incrementID) > MaxIncrementIDLength {
		return errorx.InvalidInput("increment id must be at most %d characters", MaxIncrementIDLength)
	}
	return nil
}

// referencedProductIDs 收集需要解析的商品：顶层订单行，以及拆分展示时组合商品的子订单行
func referencedProductIDs(items []*etorder.Item, separateBundle bool) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if item.HasParent() {
			continue
		}
		ids = append(ids, item.ProductID)
		if item.IsBundle() && separateBundle {
			for _, child := range item.Children {
				ids = append(ids, child.ProductID)
			}
		}
	}
	return ids
}

type productResolver struct {
	products         map[int64]*etcatalog.Product
	images           *mdcatalog.ImageResolver
	eanAttributeCode string
}

// resolve 商品存在时返回商品名和商品库字段；已删除时只返回订单行中保存的商品名
func (r *productResolver) resolve(item *etorder.Item) (string, *response.CatalogInfo) {
	product, ok := r.products[item.ProductID]
	if !ok {
		return item.Name, nil
	}

	var upc interface{}
	if r.eanAttributeCode != "" {
		upc = product.Attribute(r.eanAttributeCode)
	}

	links := response.CatalogLinks{
		LargeImage:   r.images.LargeProductImageURL(product),
		GalleryImage: r.images.FirstGalleryImageURL(product),
		URL:          r.images.ProductURL(product),
	}
	return product.Name, response.FromProductEntity(product, links, upc)
}
