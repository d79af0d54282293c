package usecase

import "context"

type AnalyticsUC interface {
	RunReport(ctx context.Context) (*RetailReport, error)
	LatestReport(ctx context.Context) (*RetailReport, error)
}
