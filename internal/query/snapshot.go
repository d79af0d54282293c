package query

import (
	"github.com/felstore-tech/analytics-backend/internal/domain"
)

// Snapshot — полностью материализованный срез коллекций на момент запроса.
// Запросы только читают снапшот. Обратные связи Product->Orders и Customer->Orders
// не хранятся в сущностях, а выводятся через индексы по идентификаторам.
type Snapshot struct {
	Customers []domain.Customer
	Products  []domain.Product
	Orders    []domain.Order

	productByID  map[int64]domain.Product
	customerByID map[int64]domain.Customer
}

// NewSnapshot строит снапшот и одноразовые индексы по идентификаторам.
func NewSnapshot(customers []domain.Customer, products []domain.Product, orders []domain.Order) *Snapshot {
	s := &Snapshot{
		Customers:    customers,
		Products:     products,
		Orders:       orders,
		productByID:  make(map[int64]domain.Product, len(products)),
		customerByID: make(map[int64]domain.Customer, len(customers)),
	}

	for _, product := range products {
		s.productByID[product.ID] = product
	}

	for _, customer := range customers {
		s.customerByID[customer.ID] = customer
	}

	return s
}

// ProductByID возвращает товар по идентификатору.
func (s *Snapshot) ProductByID(id int64) (domain.Product, bool) {
	product, ok := s.productByID[id]
	return product, ok
}

// CustomerByID возвращает покупателя по идентификатору.
func (s *Snapshot) CustomerByID(id int64) (domain.Customer, bool) {
	customer, ok := s.customerByID[id]
	return customer, ok
}

// OrderProducts возвращает товары заказа в порядке ссылок заказа.
// Висячие ссылки на отсутствующие товары пропускаются.
func (s *Snapshot) OrderProducts(order domain.Order) []domain.Product {
	products := make([]domain.Product, 0, len(order.ProductIDs))
	for _, id := range order.ProductIDs {
		if product, ok := s.productByID[id]; ok {
			products = append(products, product)
		}
	}

	return products
}
