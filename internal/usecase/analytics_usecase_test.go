package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/felstore-tech/analytics-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FAKES

type fakeCustomerRepo struct {
	customers []domain.Customer
	err       error
}

func (f *fakeCustomerRepo) LoadAll(_ context.Context) ([]domain.Customer, error) {
	return f.customers, f.err
}

type fakeProductRepo struct {
	products []domain.Product
	err      error
}

func (f *fakeProductRepo) LoadAll(_ context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

type fakeOrderRepo struct {
	orders []domain.Order
	err    error
}

func (f *fakeOrderRepo) LoadAll(_ context.Context) ([]domain.Order, error) {
	return f.orders, f.err
}

type fakeCacheRepo struct {
	report   *RetailReport
	getErr   error
	setErr   error
	setCalls int
}

func (f *fakeCacheRepo) GetReport(_ context.Context) (*RetailReport, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.report, nil
}

func (f *fakeCacheRepo) SetReport(_ context.Context, report *RetailReport) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.report = report
	return nil
}

type fakeArchiveRepo struct {
	err    error
	stored []*RetailReport
}

func (f *fakeArchiveRepo) StoreReport(_ context.Context, report *RetailReport) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.stored = append(f.stored, report)
	return "reports/" + report.RunID + ".json", nil
}

type fakePublisher struct {
	err       error
	published int
}

func (f *fakePublisher) PublishReport(_ context.Context, _ *RetailReport) error {
	f.published++
	return f.err
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

// FIXTURE

func fixtureCustomers() []domain.Customer {
	return []domain.Customer{
		{ID: 1, Name: "Diana", Tier: 1},
		{ID: 2, Name: "Clark", Tier: 2},
	}
}

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Atlas", Category: "Books", Price: 120_00},
		{ID: 2, Name: "Novel", Category: "Books", Price: 80_00},
		{ID: 3, Name: "Doll", Category: "Toys", Price: 50_00},
		{ID: 4, Name: "Monitor", Category: "Baby", Price: 99_00},
	}
}

func fixtureOrders() []domain.Order {
	return []domain.Order{
		{ID: 1, OrderDate: time.Date(2021, time.February, 10, 0, 0, 0, 0, time.UTC), CustomerID: 2, ProductIDs: []int64{1, 3}},
		{ID: 2, OrderDate: time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC), CustomerID: 1, ProductIDs: []int64{2, 4}},
		{ID: 3, OrderDate: time.Date(2021, time.April, 10, 0, 0, 0, 0, time.UTC), CustomerID: 2, ProductIDs: []int64{4}},
	}
}

func newTestUC(cache *fakeCacheRepo, archive *fakeArchiveRepo, publisher *fakePublisher) *AnalyticsUseCase {
	return NewAnalyticsUC(
		&fakeCustomerRepo{customers: fixtureCustomers()},
		&fakeProductRepo{products: fixtureProducts()},
		&fakeOrderRepo{orders: fixtureOrders()},
		cache,
		archive,
		publisher,
		nopLogger{},
	)
}

// TESTS

func TestRunReport(t *testing.T) {
	cache := &fakeCacheRepo{}
	archive := &fakeArchiveRepo{}
	publisher := &fakePublisher{}
	uc := newTestUC(cache, archive, publisher)

	report, err := uc.RunReport(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 2, report.CustomerCount)
	assert.Equal(t, 4, report.ProductCount)
	assert.Equal(t, 3, report.OrderCount)

	// Books дороже 100.00 — только Atlas
	require.Len(t, report.ExpensiveBooks, 1)
	assert.Equal(t, "Atlas", report.ExpensiveBooks[0].Name)
	assert.Equal(t, "120.00", report.ExpensiveBooks[0].Price)

	// Заказы с товарами категории Baby
	require.Len(t, report.BabyOrders, 2)
	assert.Equal(t, int64(2), report.BabyOrders[0].ID)

	// Скидка 10% на Toys
	require.Len(t, report.DiscountedToys, 1)
	assert.Equal(t, "45.00", report.DiscountedToys[0].Price)

	// Tier 2 в интервале Feb-Apr: только заказ 1
	require.Len(t, report.TierTwoSpringProducts, 2)

	require.NotNil(t, report.CheapestBook)
	assert.Equal(t, "Novel", report.CheapestBook.Name)

	require.Len(t, report.RecentOrders, 3)
	assert.Equal(t, int64(3), report.RecentOrders[0].ID)

	require.Len(t, report.MidMarchProducts, 2)

	// Февраль: заказ 1 с товарами 120.00 и 50.00
	assert.Equal(t, "170.00", report.FebruaryTotal)

	// 15 марта: (80.00 + 99.00) / 2
	assert.Equal(t, "89.50", report.MidMarchAverage)

	assert.Equal(t, 2, report.BookStats.Count)
	assert.Equal(t, "200.00", report.BookStats.Sum)
	assert.Equal(t, "100.00", report.BookStats.Avg)
	assert.Equal(t, "80.00", report.BookStats.Min)
	assert.Equal(t, "120.00", report.BookStats.Max)

	assert.Equal(t, map[int64]int{1: 2, 2: 2, 3: 1}, report.OrderProductCounts)

	require.Len(t, report.OrdersPerCustomer, 2)
	assert.Equal(t, int64(1), report.OrdersPerCustomer[0].CustomerID)
	assert.Equal(t, []int64{2}, report.OrdersPerCustomer[0].OrderIDs)
	assert.Equal(t, []int64{1, 3}, report.OrdersPerCustomer[1].OrderIDs)

	assert.Equal(t, "170.00", report.OrderTotals[1])
	assert.Equal(t, "179.00", report.OrderTotals[2])
	assert.Equal(t, "99.00", report.OrderTotals[3])

	assert.Equal(t, []string{"Atlas", "Novel"}, report.NamesByCategory["Books"])

	assert.Equal(t, "Atlas", report.TopByCategory["Books"].Name)
	assert.Equal(t, "Doll", report.TopByCategory["Toys"].Name)

	// Отчёт разошёлся по всем потребителям
	assert.Equal(t, 1, cache.setCalls)
	require.Len(t, archive.stored, 1)
	assert.Equal(t, 1, publisher.published)
}

func TestRunReportBestEffortDelivery(t *testing.T) {
	cache := &fakeCacheRepo{setErr: errors.New("redis down")}
	archive := &fakeArchiveRepo{err: errors.New("minio down")}
	publisher := &fakePublisher{err: errors.New("kafka down")}
	uc := newTestUC(cache, archive, publisher)

	report, err := uc.RunReport(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, report)
}

func TestRunReportLoadFailure(t *testing.T) {
	loadErr := errors.New("connection refused")
	uc := NewAnalyticsUC(
		&fakeCustomerRepo{err: loadErr},
		&fakeProductRepo{},
		&fakeOrderRepo{},
		&fakeCacheRepo{},
		&fakeArchiveRepo{},
		&fakePublisher{},
		nopLogger{},
	)

	_, err := uc.RunReport(context.Background())
	require.ErrorIs(t, err, loadErr)
}

func TestRunReportWithoutBooks(t *testing.T) {
	uc := NewAnalyticsUC(
		&fakeCustomerRepo{customers: fixtureCustomers()},
		&fakeProductRepo{products: []domain.Product{
			{ID: 3, Name: "Doll", Category: "Toys", Price: 50_00},
		}},
		&fakeOrderRepo{},
		&fakeCacheRepo{},
		&fakeArchiveRepo{},
		&fakePublisher{},
		nopLogger{},
	)

	report, err := uc.RunReport(context.Background())

	require.NoError(t, err)
	assert.Nil(t, report.CheapestBook)
	assert.Equal(t, 0, report.BookStats.Count)
}

func TestLatestReport(t *testing.T) {
	t.Run("cache hit skips recompute", func(t *testing.T) {
		cached := &RetailReport{RunID: "cached-run"}
		cache := &fakeCacheRepo{report: cached}
		publisher := &fakePublisher{}
		uc := newTestUC(cache, &fakeArchiveRepo{}, publisher)

		report, err := uc.LatestReport(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "cached-run", report.RunID)
		assert.Equal(t, 0, publisher.published)
	})

	t.Run("cache miss recomputes", func(t *testing.T) {
		cache := &fakeCacheRepo{getErr: errors.New("cache miss")}
		publisher := &fakePublisher{}
		uc := newTestUC(cache, &fakeArchiveRepo{}, publisher)

		report, err := uc.LatestReport(context.Background())

		require.NoError(t, err)
		assert.NotEmpty(t, report.RunID)
		assert.Equal(t, 1, publisher.published)
	})
}
