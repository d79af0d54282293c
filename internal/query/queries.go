// Package query реализует фиксированный каталог аналитических запросов
// по срезу данных {Customers, Products, Orders}. Все функции чистые:
// не изменяют снапшот и не держат состояния между вызовами.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/felstore-tech/analytics-backend/internal/domain"
	"github.com/felstore-tech/analytics-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// PriceStats — сводная статистика цен товаров категории.
// При Count == 0 числовые поля нулевые, вызывающий проверяет Count.
type PriceStats struct {
	Count int
	Sum   int64
	Avg   decimal.Decimal
	Min   int64
	Max   int64
}

// matchCategory сравнивает категории без учёта регистра.
func matchCategory(product domain.Product, category string) bool {
	return strings.EqualFold(product.Category, category)
}

// ProductsByCategoryMinPrice возвращает товары категории с ценой строго выше minPrice.
// Порядок результата — порядок исходного среза.
func ProductsByCategoryMinPrice(products []domain.Product, category string, minPrice int64) []domain.Product {
	result := make([]domain.Product, 0)
	for _, product := range products {
		if matchCategory(product, category) && product.Price > minPrice {
			result = append(result, product)
		}
	}

	return result
}

// OrdersWithProductCategory возвращает заказы, где хотя бы один товар принадлежит категории.
func OrdersWithProductCategory(s *Snapshot, category string) []domain.Order {
	result := make([]domain.Order, 0)
	for _, order := range s.Orders {
		for _, id := range order.ProductIDs {
			product, ok := s.ProductByID(id)
			if ok && matchCategory(product, category) {
				result = append(result, order)
				break
			}
		}
	}

	return result
}

// DiscountByCategory применяет множитель factor к ценам товаров категории
// и возвращает только изменённые копии. Исходные товары не мутируются,
// цена округляется до целых копеек.
func DiscountByCategory(products []domain.Product, category string, factor decimal.Decimal) []domain.Product {
	result := make([]domain.Product, 0)
	for _, product := range products {
		if !matchCategory(product, category) {
			continue
		}

		discounted := decimal.NewFromInt(product.Price).Mul(factor).Round(0).IntPart()
		result = append(result, product.WithPrice(discounted))
	}

	return result
}

// ProductsOrderedByTierBetween возвращает товары без повторов, заказанные покупателями
// заданного уровня в интервале дат [from, to] (обе границы включительно).
// Повторы отбрасываются по идентификатору товара, остаётся первое вхождение.
func ProductsOrderedByTierBetween(s *Snapshot, tier int, from, to time.Time) []domain.Product {
	seen := make(map[int64]struct{})
	result := make([]domain.Product, 0)

	for _, order := range s.Orders {
		customer, ok := s.CustomerByID(order.CustomerID)
		if !ok || customer.Tier != tier {
			continue
		}

		if order.OrderDate.Before(from) || order.OrderDate.After(to) {
			continue
		}

		for _, product := range s.OrderProducts(order) {
			if _, dup := seen[product.ID]; dup {
				continue
			}
			seen[product.ID] = struct{}{}
			result = append(result, product)
		}
	}

	return result
}

// CheapestInCategory возвращает самый дешёвый товар категории.
// При равных ценах побеждает первый по порядку среза.
// Если категория пуста, возвращается e.ErrNoProductInCategory.
func CheapestInCategory(products []domain.Product, category string) (domain.Product, error) {
	var (
		cheapest domain.Product
		found    bool
	)

	for _, product := range products {
		if !matchCategory(product, category) {
			continue
		}

		if !found || product.Price < cheapest.Price {
			cheapest = product
			found = true
		}
	}

	if !found {
		return domain.Product{}, e.ErrNoProductInCategory
	}

	return cheapest, nil
}

// MostRecentOrders возвращает n самых свежих заказов по убыванию даты.
// Сортировка стабильная: при равных датах сохраняется порядок среза.
// Если заказов меньше n, возвращаются все.
func MostRecentOrders(orders []domain.Order, n int) []domain.Order {
	if n <= 0 {
		return []domain.Order{}
	}

	sorted := make([]domain.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderDate.After(sorted[j].OrderDate)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}

// ProductsOrderedOn возвращает товары без повторов из заказов ровно на указанную дату.
func ProductsOrderedOn(s *Snapshot, date time.Time) []domain.Product {
	seen := make(map[int64]struct{})
	result := make([]domain.Product, 0)

	for _, order := range s.Orders {
		if !order.OrderDate.Equal(date) {
			continue
		}

		for _, product := range s.OrderProducts(order) {
			if _, dup := seen[product.ID]; dup {
				continue
			}
			seen[product.ID] = struct{}{}
			result = append(result, product)
		}
	}

	return result
}

// TotalOrderedBetween возвращает сумму цен всех товарных позиций заказов
// в полуинтервале дат [from, toExclusive). Товар учитывается в каждом заказе,
// где встречается: дедупликации между заказами нет.
func TotalOrderedBetween(s *Snapshot, from, toExclusive time.Time) int64 {
	var sum int64
	for _, order := range s.Orders {
		if order.OrderDate.Before(from) || !order.OrderDate.Before(toExclusive) {
			continue
		}

		for _, product := range s.OrderProducts(order) {
			sum += product.Price
		}
	}

	return sum
}

// AverageOrderedPriceOn возвращает среднюю цену товарной позиции по заказам
// ровно на указанную дату, округлённую до копеек. Без заказов — ноль, не ошибка.
func AverageOrderedPriceOn(s *Snapshot, date time.Time) decimal.Decimal {
	var (
		sum   int64
		count int64
	)

	for _, order := range s.Orders {
		if !order.OrderDate.Equal(date) {
			continue
		}

		for _, product := range s.OrderProducts(order) {
			sum += product.Price
			count++
		}
	}

	if count == 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(count)).Round(2)
}

// CategoryPriceStats возвращает статистику цен {count, sum, avg, min, max} по категории.
// Пустая категория даёт нулевую статистику, не ошибку.
func CategoryPriceStats(products []domain.Product, category string) PriceStats {
	stats := PriceStats{Avg: decimal.Zero}

	for _, product := range products {
		if !matchCategory(product, category) {
			continue
		}

		if stats.Count == 0 {
			stats.Min = product.Price
			stats.Max = product.Price
		} else {
			if product.Price < stats.Min {
				stats.Min = product.Price
			}
			if product.Price > stats.Max {
				stats.Max = product.Price
			}
		}

		stats.Sum += product.Price
		stats.Count++
	}

	if stats.Count > 0 {
		stats.Avg = decimal.NewFromInt(stats.Sum).
			Div(decimal.NewFromInt(int64(stats.Count))).
			Round(2)
	}

	return stats
}

// ProductCountPerOrder возвращает отображение id заказа в число его товарных позиций.
func ProductCountPerOrder(orders []domain.Order) map[int64]int {
	result := make(map[int64]int, len(orders))
	for _, order := range orders {
		result[order.ID] = len(order.ProductIDs)
	}

	return result
}

// OrdersByCustomer группирует заказы по покупателю, сохраняя порядок среза внутри группы.
// Заказы с неизвестным покупателем пропускаются.
func OrdersByCustomer(s *Snapshot) map[domain.Customer][]domain.Order {
	result := make(map[domain.Customer][]domain.Order)
	for _, order := range s.Orders {
		customer, ok := s.CustomerByID(order.CustomerID)
		if !ok {
			continue
		}

		result[customer] = append(result[customer], order)
	}

	return result
}

// TotalPerOrder возвращает отображение id заказа в сумму цен его товаров.
// Товары заказа — множество, каждый входит в сумму ровно один раз.
func TotalPerOrder(s *Snapshot) map[int64]int64 {
	result := make(map[int64]int64, len(s.Orders))
	for _, order := range s.Orders {
		var total int64
		for _, product := range s.OrderProducts(order) {
			total += product.Price
		}

		result[order.ID] = total
	}

	return result
}

// ProductNamesByCategory группирует имена товаров по категории, сохраняя порядок среза.
// Ключи — категории в исходном написании.
func ProductNamesByCategory(products []domain.Product) map[string][]string {
	result := make(map[string][]string)
	for _, product := range products {
		result[product.Category] = append(result[product.Category], product.Name)
	}

	return result
}

// MostExpensivePerCategory возвращает самый дорогой товар каждой категории.
// При равных ценах побеждает последний по порядку среза,
// в отличие от CheapestInCategory, где побеждает первый.
func MostExpensivePerCategory(products []domain.Product) map[string]domain.Product {
	result := make(map[string]domain.Product)
	for _, product := range products {
		best, ok := result[product.Category]
		if !ok || product.Price >= best.Price {
			result[product.Category] = product
		}
	}

	return result
}
