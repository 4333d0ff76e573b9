package catalog

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"safar-travel-api/internal/media"

	"gorm.io/gorm"
)

type CatalogService struct {
	DB    *gorm.DB
	Media media.Store
}

func (cs *CatalogService) List(d Dashboard) ([]PackageRecord, error) {
	var records []PackageRecord
	result := cs.DB.
		Where("kind = ?", d.Kind).
		Order("created_at DESC").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}
	return records, nil
}

// Save creates a new record when input carries no id, otherwise updates the
// existing one. Returns the saved record and whether it was created.
func (cs *CatalogService) Save(ctx context.Context, d Dashboard, in SaveInput) (*PackageRecord, bool, error) {
	if in.ID == nil {
		record, err := cs.create(ctx, d, in)
		return record, true, err
	}
	record, err := cs.update(ctx, d, in)
	return record, false, err
}

// create enforces the one-record-per-category rule for category-exclusive
// dashboards: the superseded record (and its media object, best effort) is
// removed before the new media upload. If that upload then fails the
// category is left empty; there is no rollback of the deletion.
func (cs *CatalogService) create(ctx context.Context, d Dashboard, in SaveInput) (*PackageRecord, error) {
	title, price, caption, category, err := validateFields(d, in, true)
	if err != nil {
		return nil, err
	}

	if d.RequiresMedia && in.Image == nil {
		return nil, invalidf("image is required")
	}

	if d.CategoryExclusive && category != nil {
		var existing PackageRecord
		findErr := cs.DB.
			Where("kind = ? AND category = ?", d.Kind, *category).
			First(&existing).Error
		if findErr == nil {
			cs.deleteMedia(ctx, &existing)
			if err := cs.DB.Delete(&existing).Error; err != nil {
				return nil, err
			}
		} else if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return nil, findErr
		}
	}

	record := PackageRecord{
		Kind:     d.Kind,
		Title:    title,
		Price:    price,
		Caption:  caption,
		Category: category,
		IsActive: true,
	}

	if in.Image != nil {
		objectID := media.ObjectName(d.Kind, title, in.Image.Filename, in.Image.ContentType)
		url, err := cs.Media.Upload(ctx, in.Image.Data, imageContentType(in.Image), objectID)
		if err != nil {
			return nil, &UploadError{Err: err}
		}
		record.MediaURL = url
		record.MediaObjectID = objectID
	}

	if err := cs.DB.Create(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (cs *CatalogService) update(ctx context.Context, d Dashboard, in SaveInput) (*PackageRecord, error) {
	var record PackageRecord
	if err := cs.DB.Where("kind = ? AND id = ?", d.Kind, *in.ID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	_, price, caption, category, err := validateFields(d, in, false)
	if err != nil {
		return nil, err
	}

	// Category is fixed after creation on the dashboards that key records
	// by category.
	if category != nil {
		if record.Category == nil || *category != *record.Category {
			return nil, invalidf("category cannot be changed")
		}
	}

	updates := map[string]interface{}{}

	title := record.Title
	if in.Title != nil {
		title = strings.TrimSpace(*in.Title)
		updates["title"] = title
	}
	if price != nil {
		updates["price"] = *price
	}
	if caption != nil {
		updates["caption"] = *caption
	}

	if in.Image != nil {
		if record.MediaObjectID != "" {
			cs.deleteMedia(ctx, &record)
		}
		objectID := media.ObjectName(d.Kind, title, in.Image.Filename, in.Image.ContentType)
		url, err := cs.Media.Upload(ctx, in.Image.Data, imageContentType(in.Image), objectID)
		if err != nil {
			return nil, &UploadError{Err: err}
		}
		updates["media_url"] = url
		updates["media_object_id"] = objectID
	} else if d.RequiresMedia && record.MediaURL == "" {
		return nil, invalidf("record has no image attached; an image file is required")
	}

	if len(updates) > 0 {
		if err := cs.DB.Model(&record).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	var saved PackageRecord
	if err := cs.DB.Where("kind = ? AND id = ?", d.Kind, *in.ID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (cs *CatalogService) ToggleActive(d Dashboard, id int, isActive bool) (*PackageRecord, error) {
	var record PackageRecord
	if err := cs.DB.Where("kind = ? AND id = ?", d.Kind, id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := cs.DB.Model(&record).Update("is_active", isActive).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (cs *CatalogService) Delete(ctx context.Context, d Dashboard, id int) error {
	var record PackageRecord
	if err := cs.DB.Where("kind = ? AND id = ?", d.Kind, id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	cs.deleteMedia(ctx, &record)

	return cs.DB.Delete(&record).Error
}

// deleteMedia is best effort: a failed delete leaves a stray object in the
// bucket (visible in the media audit) but never aborts the caller.
func (cs *CatalogService) deleteMedia(ctx context.Context, record *PackageRecord) {
	if record.MediaObjectID == "" {
		return
	}
	if err := cs.Media.Delete(ctx, record.MediaObjectID); err != nil {
		log.Printf("failed to delete media object %s for %s record %d: %v",
			record.MediaObjectID, record.Kind, record.ID, err)
	}
}

// validateFields checks the dashboard's required fields. On create every
// required field must be supplied; on update only supplied fields are
// checked. Returned pointers are nil for fields that were not supplied.
func validateFields(d Dashboard, in SaveInput, create bool) (string, *float64, *string, *string, error) {
	title := ""
	if in.Title != nil {
		title = strings.TrimSpace(*in.Title)
	}
	if create && title == "" {
		return "", nil, nil, nil, invalidf("title is required")
	}
	if !create && in.Title != nil && title == "" {
		return "", nil, nil, nil, invalidf("title cannot be empty")
	}

	var price *float64
	if d.Priced {
		if in.Price == nil {
			if create {
				return "", nil, nil, nil, invalidf("price is required")
			}
		} else {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(*in.Price), 64)
			if err != nil || parsed <= 0 {
				return "", nil, nil, nil, invalidf("price must be greater than 0")
			}
			price = &parsed
		}
	}

	var caption *string
	if d.Captioned {
		if in.Caption == nil {
			if create {
				return "", nil, nil, nil, invalidf("caption is required")
			}
		} else {
			trimmed := strings.TrimSpace(*in.Caption)
			if trimmed == "" {
				return "", nil, nil, nil, invalidf("caption cannot be empty")
			}
			caption = &trimmed
		}
	}

	var category *string
	if len(d.Categories) > 0 {
		if in.Category == nil {
			if create {
				return "", nil, nil, nil, invalidf("category is required")
			}
		} else {
			normalized := NormalizeCategory(*in.Category)
			if !d.ValidCategory(normalized) {
				return "", nil, nil, nil, invalidf("category must be one of: %s", strings.Join(d.Categories, ", "))
			}
			category = &normalized
		}
	}

	return title, price, caption, category, nil
}

func imageContentType(img *ImageBlob) string {
	if img.ContentType != "" {
		return img.ContentType
	}
	return "image/jpeg"
}
