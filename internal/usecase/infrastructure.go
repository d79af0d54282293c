package usecase

import "context"

type ReportPublisher interface {
	PublishReport(ctx context.Context, report *RetailReport) error
}
