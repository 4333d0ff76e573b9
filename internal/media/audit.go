package media

import (
	"context"

	"gorm.io/gorm"
)

type AuditService struct {
	DB    *gorm.DB
	Store *GCSStore
}

type AuditResult struct {
	Objects []ObjectInfo `json:"objects"`
	Orphans []ObjectInfo `json:"orphans"`
}

// Audit lists the bucket under prefix and flags objects no record points to.
// Upload and record write are not transactional, so a crash in between can
// leak an object; this is the reconciliation view for that accepted gap.
func (as *AuditService) Audit(ctx context.Context, prefix string) (*AuditResult, error) {
	objects, err := as.Store.ListObjects(ctx, prefix)
	if err != nil {
		return nil, err
	}

	referenced := map[string]struct{}{}
	for _, table := range []string{"package_records", "trips"} {
		var ids []string
		if err := as.DB.Table(table).
			Where("media_object_id <> ''").
			Pluck("media_object_id", &ids).Error; err != nil {
			return nil, err
		}
		for _, id := range ids {
			referenced[id] = struct{}{}
		}
	}

	result := &AuditResult{Objects: objects, Orphans: []ObjectInfo{}}
	for _, obj := range objects {
		if _, ok := referenced[obj.Name]; !ok {
			result.Orphans = append(result.Orphans, obj)
		}
	}

	return result, nil
}
