package store

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/modutour/backend/internal/db"
)

// AppendCrawlLog inserts a crawl log row. CrawlDate defaults to today.
// Logs are immutable history; there is no update or delete.
func AppendCrawlLog(dbConn *gorm.DB, entry db.CrawlLog) (uint, error) {
	if entry.CrawlDate.IsZero() {
		entry.CrawlDate = truncateToDate(time.Now())
	}
	if err := dbConn.Create(&entry).Error; err != nil {
		return 0, err
	}

	log.Printf("Saved crawl log (ID: %d, source: %s, status: %s)", entry.ID, entry.SourceSite, entry.Status)
	return entry.ID, nil
}

// LastCrawlDate returns the most recent crawl date logged for a source
// label, or the zero time when that source has never run. The scheduler
// uses this to avoid re-running the daily crawl after a restart.
func LastCrawlDate(dbConn *gorm.DB, sourceSite string) (time.Time, error) {
	var entry db.CrawlLog
	err := dbConn.Where("source_site = ?", sourceSite).
		Order("crawl_date DESC").
		First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return entry.CrawlDate, nil
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
