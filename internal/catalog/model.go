package catalog

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// PackageRecord is one catalog entry on any of the admin dashboards.
// MediaURL and MediaObjectID always describe the same stored object, or are
// both empty; no record keeps a handle to a deleted object.
type PackageRecord struct {
	ID            int            `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind          string         `gorm:"size:40;not null;index" json:"kind"`
	Title         string         `gorm:"size:255;not null" json:"title"`
	Price         *float64       `json:"price,omitempty"`
	Caption       *string        `gorm:"type:text" json:"caption,omitempty"`
	Category      *string        `gorm:"size:40;index" json:"category,omitempty"`
	MediaURL      string         `gorm:"type:text;not null;default:''" json:"media_url"`
	MediaObjectID string         `gorm:"type:text;not null;default:''" json:"media_object_id"`
	IsActive      bool           `gorm:"not null;default:true" json:"is_active"`
	Details       datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PackageRecord) TableName() string {
	return "package_records"
}

// Dashboard describes one of the four admin dashboards. All of them share
// the same record lifecycle; the flags select which fields are required and
// whether a category may hold at most one record.
type Dashboard struct {
	Kind              string
	RouteBase         string
	Priced            bool
	Captioned         bool
	Categories        []string // nil means the dashboard has no category field
	CategoryExclusive bool
	RequiresMedia     bool
}

var packageCategories = []string{"Economic", "Standard", "Premium"}

var (
	HajjPackages = Dashboard{
		Kind:              "hajj",
		RouteBase:         "/api/hajj-packages",
		Priced:            true,
		Categories:        packageCategories,
		CategoryExclusive: true,
		RequiresMedia:     true,
	}

	DomesticPackages = Dashboard{
		Kind:              "domestic",
		RouteBase:         "/api/domestic-packages",
		Priced:            true,
		Categories:        packageCategories,
		CategoryExclusive: true,
		RequiresMedia:     true,
	}

	Pilgrimages = Dashboard{
		Kind:          "pilgrimage",
		RouteBase:     "/api/pilgrimages",
		Priced:        true,
		RequiresMedia: true,
	}

	WhyChooseUs = Dashboard{
		Kind:          "why-choose-us",
		RouteBase:     "/api/why-choose-us",
		Captioned:     true,
		RequiresMedia: true,
	}
)

var Dashboards = []Dashboard{HajjPackages, DomesticPackages, Pilgrimages, WhyChooseUs}

// NormalizeCategory maps user input like "economic" or "ECONOMIC" onto the
// canonical form: first letter upper, remainder lower.
func NormalizeCategory(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	return strings.ToUpper(raw[:1]) + strings.ToLower(raw[1:])
}

func (d Dashboard) ValidCategory(category string) bool {
	for _, c := range d.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ImageBlob is an uploaded image read out of the multipart request.
type ImageBlob struct {
	Data        []byte
	Filename    string
	ContentType string
}

// SaveInput carries a create-or-update request. Pointer fields distinguish
// "not supplied" from "supplied empty"; only supplied fields are written on
// update.
type SaveInput struct {
	ID       *int
	Title    *string
	Price    *string
	Caption  *string
	Category *string
	Image    *ImageBlob
}
