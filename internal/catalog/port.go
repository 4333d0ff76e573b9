package catalog

import (
	"context"

	"safar-travel-api/internal/logs"
)

type CatalogServicePort interface {
	List(d Dashboard) ([]PackageRecord, error)
	Save(ctx context.Context, d Dashboard, in SaveInput) (*PackageRecord, bool, error)
	ToggleActive(d Dashboard, id int, isActive bool) (*PackageRecord, error)
	Delete(ctx context.Context, d Dashboard, id int) error
}

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ CatalogServicePort = (*CatalogService)(nil)
var _ LogServicePort = (*logs.LogService)(nil)
