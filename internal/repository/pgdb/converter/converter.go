//go:generate goverter gen github.com/felstore-tech/analytics-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/felstore-tech/analytics-backend/internal/domain"
)

// CustomerConverter преобразует сущности Customer между domain и моделью PostgreSQL.
// goverter:converter
type CustomerConverter interface {
	ToEntity(model *CustomerModel) *domain.Customer
	ToArrEntity(models []CustomerModel) []domain.Customer
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
type ProductConverter interface {
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

// OrderConverter преобразует сущности Order между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertDate
type OrderConverter interface {
	ToEntity(model *OrderModel) *domain.Order
	ToArrEntity(models []OrderModel) []domain.Order
}

// ConvertDate нормализует момент времени из БД до календарной даты.
func ConvertDate(t time.Time) time.Time {
	return domain.Day(t)
}
