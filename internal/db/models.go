package db

import (
	"time"

	"github.com/shopspring/decimal"
)

type SourceSite string

const (
	SourceSiteA  SourceSite = "site-a"
	SourceSiteB  SourceSite = "site-b"
	SourceManual SourceSite = "manual"
)

type CrawlStatus string

const (
	CrawlRunning CrawlStatus = "running"
	CrawlSuccess CrawlStatus = "success"
	CrawlFailed  CrawlStatus = "failed"
	CrawlPartial CrawlStatus = "partial"
)

// Product represents a travel product, either crawled or entered manually.
// ProductCode is the natural key: re-crawling the same code updates the
// existing row instead of creating a duplicate.
type Product struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	ProductName  string          `gorm:"not null;size:500" json:"product_name"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	ProductLink  string          `gorm:"type:text" json:"product_link"`
	MainImageURL string          `gorm:"type:text" json:"main_image_url"`
	ProductCode  string          `gorm:"uniqueIndex;not null;size:100" json:"product_code"`
	Category     string          `gorm:"index;size:100" json:"category"`
	Description  string          `gorm:"type:text" json:"description"`
	SourceSite   SourceSite      `gorm:"index;size:20;default:'manual'" json:"source_site"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CrawlingSetting is a newline-delimited keyword list driving the crawl.
// At most one row is active; saving a new setting deactivates the rest.
type CrawlingSetting struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SettingName string    `gorm:"not null;size:100" json:"setting_name"`
	SettingText string    `gorm:"type:text;not null" json:"setting_text"`
	IsActive    bool      `gorm:"index;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExcludeSetting holds comma-delimited keyword and product-code lists used
// to hide products. Same single-active lifecycle as CrawlingSetting.
type ExcludeSetting struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	ExcludeKeywords     string    `gorm:"type:text" json:"exclude_keywords"`
	ExcludeProductCodes string    `gorm:"type:text" json:"exclude_product_codes"`
	IsActive            bool      `gorm:"index;default:true" json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CrawlLog records the outcome of one crawl run. Rows are append-only.
type CrawlLog struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	SourceSite    string      `gorm:"not null;size:50" json:"source_site"`
	CrawlDate     time.Time   `gorm:"index;type:date" json:"crawl_date"`
	TotalProducts int         `gorm:"default:0" json:"total_products"`
	SuccessCount  int         `gorm:"default:0" json:"success_count"`
	ErrorCount    int         `gorm:"default:0" json:"error_count"`
	Status        CrawlStatus `gorm:"index;size:20;default:'running'" json:"status"`
	ErrorMessage  string      `gorm:"type:text" json:"error_message"`
	KeywordsUsed  string      `gorm:"type:text" json:"keywords_used"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
