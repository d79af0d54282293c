package domain

// Product описывает товар каталога.
// Категория сравнивается без учёта регистра при фильтрации.
type Product struct {
	ID       int64
	Name     string
	Category string
	Price    int64 // Цена хранится в копейках
}

func NewProduct(name string, category string, price int64) *Product {
	return &Product{
		Name:     name,
		Category: category,
		Price:    price,
	}
}

// WithPrice возвращает копию товара с новой ценой.
// Исходное значение не изменяется: история заказов, посчитанная по старой цене, не затрагивается.
func (p Product) WithPrice(price int64) Product {
	p.Price = price
	return p
}
