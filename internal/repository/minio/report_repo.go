package minio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/felstore-tech/analytics-backend/internal/cfg"
	"github.com/felstore-tech/analytics-backend/internal/usecase"
	"github.com/felstore-tech/analytics-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ReportRepo реализует архив отчётов поверх MinIO.
// Каждый прогон складывается отдельным JSON-объектом, ничего не перезаписывается.
type ReportRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewReportRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ReportRepo {
	return &ReportRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// StoreReport сохраняет отчёт в бакет и возвращает ключ объекта.
func (r *ReportRepo) StoreReport(ctx context.Context, report *usecase.RetailReport) (string, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	objectKey := reportObjectKey(report)
	reader := bytes.NewReader(data)

	info, err := r.mc.PutObject(ctx, r.cfg.BucketName, objectKey, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// reportObjectKey строит ключ вида reports/2026-08-31/<run-id>.json
func reportObjectKey(report *usecase.RetailReport) string {
	return fmt.Sprintf("reports/%s/%s.json", report.GeneratedAt.Format(time.DateOnly), report.RunID)
}
