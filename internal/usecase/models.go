package usecase

import (
	"time"

	"github.com/felstore-tech/analytics-backend/internal/domain"
	"github.com/felstore-tech/analytics-backend/internal/query"
	"github.com/shopspring/decimal"
)

// ANALYTICS USECASE

// RetailReport — результат одного прогона каталога аналитических запросов.
// Сериализуется как есть в кэш, архив и сообщение для подписчиков.
type RetailReport struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	CustomerCount int `json:"customer_count"`
	ProductCount  int `json:"product_count"`
	OrderCount    int `json:"order_count"`

	ExpensiveBooks        []ProductView            `json:"expensive_books"`
	BabyOrders            []OrderView              `json:"baby_orders"`
	DiscountedToys        []ProductView            `json:"discounted_toys"`
	TierTwoSpringProducts []ProductView            `json:"tier_two_spring_products"`
	CheapestBook          *ProductView             `json:"cheapest_book,omitempty"`
	RecentOrders          []OrderView              `json:"recent_orders"`
	MidMarchProducts      []ProductView            `json:"mid_march_products"`
	FebruaryTotal         string                   `json:"february_total"`
	MidMarchAverage       string                   `json:"mid_march_average"`
	BookStats             PriceStatsView           `json:"book_stats"`
	OrderProductCounts    map[int64]int            `json:"order_product_counts"`
	OrdersPerCustomer     []CustomerOrdersView     `json:"orders_per_customer"`
	OrderTotals           map[int64]string         `json:"order_totals"`
	NamesByCategory       map[string][]string      `json:"names_by_category"`
	TopByCategory         map[string]ProductView   `json:"top_by_category"`
}

// ProductView — DTO товара с денежной ценой в строковом виде ("120.00").
type ProductView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
}

// OrderView — DTO заказа для отчёта.
type OrderView struct {
	ID         int64   `json:"id"`
	OrderDate  string  `json:"order_date"`
	CustomerID int64   `json:"customer_id"`
	ProductIDs []int64 `json:"product_ids"`
}

// PriceStatsView — DTO сводной статистики цен.
type PriceStatsView struct {
	Count int    `json:"count"`
	Sum   string `json:"sum"`
	Avg   string `json:"avg"`
	Min   string `json:"min"`
	Max   string `json:"max"`
}

// CustomerOrdersView — заказы одного покупателя в порядке снапшота.
type CustomerOrdersView struct {
	CustomerID   int64   `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Tier         int     `json:"tier"`
	OrderIDs     []int64 `json:"order_ids"`
}

// MAPPERS

// Money переводит цену в копейках в строку вида "120.00".
func Money(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func NewProductView(product domain.Product) ProductView {
	return ProductView{
		ID:       product.ID,
		Name:     product.Name,
		Category: product.Category,
		Price:    Money(product.Price),
	}
}

func NewProductViews(products []domain.Product) []ProductView {
	result := make([]ProductView, 0, len(products))
	for _, product := range products {
		result = append(result, NewProductView(product))
	}

	return result
}

func NewOrderView(order domain.Order) OrderView {
	return OrderView{
		ID:         order.ID,
		OrderDate:  order.OrderDate.Format(time.DateOnly),
		CustomerID: order.CustomerID,
		ProductIDs: order.ProductIDs,
	}
}

func NewOrderViews(orders []domain.Order) []OrderView {
	result := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		result = append(result, NewOrderView(order))
	}

	return result
}

func NewPriceStatsView(stats query.PriceStats) PriceStatsView {
	return PriceStatsView{
		Count: stats.Count,
		Sum:   Money(stats.Sum),
		Avg:   stats.Avg.Shift(-2).StringFixed(2),
		Min:   Money(stats.Min),
		Max:   Money(stats.Max),
	}
}
