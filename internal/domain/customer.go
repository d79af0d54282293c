package domain

// Customer описывает покупателя.
// Tier — уровень сегментации покупателя (небольшое положительное число).
type Customer struct {
	ID   int64
	Name string
	Tier int
}

func NewCustomer(name string, tier int) *Customer {
	return &Customer{
		Name: name,
		Tier: tier,
	}
}
