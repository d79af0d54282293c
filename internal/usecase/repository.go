package usecase

import (
	"context"

	"github.com/felstore-tech/analytics-backend/internal/domain"
)

// Репозитории снапшота: только полная выборка, без операций записи.

type CustomerRepository interface {
	LoadAll(ctx context.Context) ([]domain.Customer, error)
}

type ProductRepository interface {
	LoadAll(ctx context.Context) ([]domain.Product, error)
}

type OrderRepository interface {
	LoadAll(ctx context.Context) ([]domain.Order, error)
}

type CacheRepository interface {
	GetReport(ctx context.Context) (*RetailReport, error)
	SetReport(ctx context.Context, report *RetailReport) error
}

type ArchiveRepository interface {
	StoreReport(ctx context.Context, report *RetailReport) (string, error)
}
