package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modutour/backend/internal/db"
)

func TestAppendCrawlLogDefaultsDate(t *testing.T) {
	dbConn := openTestDB(t)

	id, err := AppendCrawlLog(dbConn, db.CrawlLog{
		SourceSite:    "mixed",
		TotalProducts: 40,
		SuccessCount:  40,
		Status:        db.CrawlSuccess,
		KeywordsUsed:  "keywordA, keywordB",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	var entry db.CrawlLog
	require.NoError(t, dbConn.First(&entry, id).Error)

	now := time.Now()
	assert.Equal(t, now.Year(), entry.CrawlDate.Year())
	assert.Equal(t, now.YearDay(), entry.CrawlDate.YearDay())
	assert.Equal(t, db.CrawlSuccess, entry.Status)
}

func TestLastCrawlDate(t *testing.T) {
	dbConn := openTestDB(t)

	last, err := LastCrawlDate(dbConn, "daily")
	require.NoError(t, err)
	assert.True(t, last.IsZero())

	yesterday := time.Now().AddDate(0, 0, -1)
	_, err = AppendCrawlLog(dbConn, db.CrawlLog{
		SourceSite: "daily",
		Status:     db.CrawlSuccess,
		CrawlDate:  yesterday,
	})
	require.NoError(t, err)

	_, err = AppendCrawlLog(dbConn, db.CrawlLog{
		SourceSite: "daily",
		Status:     db.CrawlSuccess,
	})
	require.NoError(t, err)

	// Logs for other sources do not count.
	_, err = AppendCrawlLog(dbConn, db.CrawlLog{
		SourceSite: "mixed",
		Status:     db.CrawlSuccess,
		CrawlDate:  time.Now().AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	last, err = LastCrawlDate(dbConn, "daily")
	require.NoError(t, err)
	assert.Equal(t, time.Now().YearDay(), last.YearDay())
}
