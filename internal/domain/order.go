package domain

import "time"

// Order описывает заказ.
// Связи хранятся идентификаторами: CustomerID — владелец заказа,
// ProductIDs — множество товаров заказа (без количества, вхождение булево).
// Обратные связи Product->Orders и Customer->Orders строятся индексами снапшота.
type Order struct {
	ID         int64
	OrderDate  time.Time // календарная дата, полночь UTC
	CustomerID int64
	ProductIDs []int64
}

func NewOrder(orderDate time.Time, customerID int64, productIDs []int64) *Order {
	return &Order{
		OrderDate:  Day(orderDate),
		CustomerID: customerID,
		ProductIDs: productIDs,
	}
}

// Day нормализует момент времени до календарной даты (полночь UTC).
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
