package api

import (
	"gorm.io/gorm"

	"github.com/modutour/backend/internal/crawler"
)

// Deps carries the handler dependencies plus explicit capability flags.
// When the store or crawler is unavailable the handlers fall back to
// canned payloads instead of failing, so the API stays introspectable
// without live backing services.
type Deps struct {
	DB                *gorm.DB
	Crawler           *crawler.Service
	DatabaseAvailable bool
	CrawlerAvailable  bool
}
