package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/felstore-tech/analytics-backend/internal/domain"
	"github.com/felstore-tech/analytics-backend/internal/query"
	"github.com/felstore-tech/analytics-backend/pkg/e"
	"github.com/felstore-tech/analytics-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Канонические параметры каталога запросов.
const (
	categoryBooks = "Books"
	categoryBaby  = "Baby"
	categoryToys  = "Toys"

	expensiveBookMinPrice = 100_00 // 100.00 в копейках
	recentOrdersLimit     = 3
	springTier            = 2
)

var (
	toysDiscountFactor = decimal.NewFromFloat(0.9)

	springFrom   = time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)
	springTo     = time.Date(2021, time.April, 1, 0, 0, 0, 0, time.UTC)
	midMarch     = time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC)
	februaryFrom = time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC)
	februaryTo   = time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)
)

// AnalyticsUseCase выполняет каталог аналитических запросов по снапшоту данных
// и раздаёт готовый отчёт кэшу, архиву и подписчикам.
type AnalyticsUseCase struct {
	customerRepo CustomerRepository
	productRepo  ProductRepository
	orderRepo    OrderRepository
	cacheRepo    CacheRepository
	archiveRepo  ArchiveRepository
	publisher    ReportPublisher
	logger       logger.Logger
}

func NewAnalyticsUC(
	customerRepo CustomerRepository,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	cacheRepo CacheRepository,
	archiveRepo ArchiveRepository,
	publisher ReportPublisher,
	logger logger.Logger,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		cacheRepo:    cacheRepo,
		archiveRepo:  archiveRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// RunReport строит снапшот, прогоняет весь каталог запросов и раздаёт отчёт.
// Ошибки кэша, архива и публикации не фатальны: отчёт уже посчитан.
func (a *AnalyticsUseCase) RunReport(ctx context.Context) (*RetailReport, error) {
	const op = "AnalyticsUseCase.RunReport"

	snapshot, err := a.buildSnapshot(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	report := a.assembleReport(snapshot)

	if err := a.cacheRepo.SetReport(ctx, report); err != nil {
		a.logger.Warnf("Failed to cache report: %v", e.Wrap(op, err))
	}

	key, err := a.archiveRepo.StoreReport(ctx, report)
	if err != nil {
		a.logger.Warnf("Failed to archive report: %v", e.Wrap(op, err))
	} else {
		a.logger.Debugf("Report archived as %s", key)
	}

	if err := a.publisher.PublishReport(ctx, report); err != nil {
		a.logger.Warnf("Failed to publish report: %v", e.Wrap(op, err))
	}

	a.logger.Infof(
		"Report %s generated: %d customers, %d products, %d orders",
		report.RunID, report.CustomerCount, report.ProductCount, report.OrderCount,
	)

	return report, nil
}

// LatestReport возвращает последний отчёт из кэша, при промахе считает заново.
func (a *AnalyticsUseCase) LatestReport(ctx context.Context) (*RetailReport, error) {
	const op = "AnalyticsUseCase.LatestReport"

	report, err := a.cacheRepo.GetReport(ctx)
	if err == nil {
		return report, nil
	}

	a.logger.Debugf("Report cache miss: %v", err)

	report, err = a.RunReport(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return report, nil
}

// buildSnapshot загружает все три коллекции целиком и строит индексы.
func (a *AnalyticsUseCase) buildSnapshot(ctx context.Context) (*query.Snapshot, error) {
	customers, err := a.customerRepo.LoadAll(ctx)
	if err != nil {
		return nil, e.Wrap("load customers", err)
	}

	products, err := a.productRepo.LoadAll(ctx)
	if err != nil {
		return nil, e.Wrap("load products", err)
	}

	orders, err := a.orderRepo.LoadAll(ctx)
	if err != nil {
		return nil, e.Wrap("load orders", err)
	}

	return query.NewSnapshot(customers, products, orders), nil
}

// assembleReport прогоняет каталог запросов с каноническими параметрами.
func (a *AnalyticsUseCase) assembleReport(snapshot *query.Snapshot) *RetailReport {
	report := &RetailReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),

		CustomerCount: len(snapshot.Customers),
		ProductCount:  len(snapshot.Products),
		OrderCount:    len(snapshot.Orders),

		ExpensiveBooks: NewProductViews(
			query.ProductsByCategoryMinPrice(snapshot.Products, categoryBooks, expensiveBookMinPrice),
		),
		BabyOrders: NewOrderViews(
			query.OrdersWithProductCategory(snapshot, categoryBaby),
		),
		DiscountedToys: NewProductViews(
			query.DiscountByCategory(snapshot.Products, categoryToys, toysDiscountFactor),
		),
		TierTwoSpringProducts: NewProductViews(
			query.ProductsOrderedByTierBetween(snapshot, springTier, springFrom, springTo),
		),
		RecentOrders: NewOrderViews(
			query.MostRecentOrders(snapshot.Orders, recentOrdersLimit),
		),
		MidMarchProducts: NewProductViews(
			query.ProductsOrderedOn(snapshot, midMarch),
		),
		FebruaryTotal:   Money(query.TotalOrderedBetween(snapshot, februaryFrom, februaryTo)),
		MidMarchAverage: query.AverageOrderedPriceOn(snapshot, midMarch).Shift(-2).StringFixed(2),
		BookStats: NewPriceStatsView(
			query.CategoryPriceStats(snapshot.Products, categoryBooks),
		),
		OrderProductCounts: query.ProductCountPerOrder(snapshot.Orders),
		OrdersPerCustomer:  newCustomerOrdersViews(query.OrdersByCustomer(snapshot)),
		OrderTotals:        newOrderTotals(query.TotalPerOrder(snapshot)),
		NamesByCategory:    query.ProductNamesByCategory(snapshot.Products),
		TopByCategory:      newTopByCategory(query.MostExpensivePerCategory(snapshot.Products)),
	}

	// Отсутствие книг — не ошибка прогона, в отчёте просто нет поля.
	if cheapest, err := query.CheapestInCategory(snapshot.Products, categoryBooks); err == nil {
		view := NewProductView(cheapest)
		report.CheapestBook = &view
	} else {
		a.logger.Warnf("Cheapest book unavailable: %v", err)
	}

	return report
}

// newCustomerOrdersViews разворачивает группировку по покупателю
// в список, упорядоченный по id покупателя.
func newCustomerOrdersViews(grouped map[domain.Customer][]domain.Order) []CustomerOrdersView {
	result := make([]CustomerOrdersView, 0, len(grouped))
	for customer, orders := range grouped {
		orderIDs := make([]int64, 0, len(orders))
		for _, order := range orders {
			orderIDs = append(orderIDs, order.ID)
		}

		result = append(result, CustomerOrdersView{
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
			Tier:         customer.Tier,
			OrderIDs:     orderIDs,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CustomerID < result[j].CustomerID
	})

	return result
}

func newOrderTotals(totals map[int64]int64) map[int64]string {
	result := make(map[int64]string, len(totals))
	for orderID, total := range totals {
		result[orderID] = Money(total)
	}

	return result
}

func newTopByCategory(top map[string]domain.Product) map[string]ProductView {
	result := make(map[string]ProductView, len(top))
	for category, product := range top {
		result[category] = NewProductView(product)
	}

	return result
}
