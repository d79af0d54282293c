package converter

import "time"

// CustomerModel представляет запись таблицы customers в PostgreSQL.
type CustomerModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Tier int    `db:"tier"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Category string `db:"category"`
	Price    int64  `db:"price"`
}

// OrderModel представляет заказ вместе с агрегированными id товаров
// из таблицы order_products.
type OrderModel struct {
	ID         int64     `db:"id"`
	OrderDate  time.Time `db:"order_date"`
	CustomerID int64     `db:"customer_id"`
	ProductIDs []int64   `db:"product_ids"`
}
