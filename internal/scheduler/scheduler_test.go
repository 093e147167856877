package scheduler

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/modutour/backend/internal/crawler"
	"github.com/modutour/backend/internal/db"
	"github.com/modutour/backend/internal/store"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	dbConn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(dbConn))

	return dbConn
}

func newTestScheduler(t *testing.T) (*Scheduler, *gorm.DB) {
	t.Helper()
	dbConn := openTestDB(t)
	service := crawler.NewService(dbConn, &crawler.Config{
		ItemsPerSourceDaily:    5,
		ItemsPerSourceSettings: 10,
		KeywordPause:           0,
	})
	return New(dbConn, service), dbConn
}

func TestRunDailySkipsWhenAlreadyRanToday(t *testing.T) {
	s, dbConn := newTestScheduler(t)

	assert.False(t, s.ranToday())

	s.runDaily()
	assert.True(t, s.ranToday())

	var logs int64
	require.NoError(t, dbConn.Model(&db.CrawlLog{}).Where("source_site = ?", "daily").Count(&logs).Error)
	assert.Equal(t, int64(1), logs)

	// A second fire on the same day is a no-op.
	s.runDaily()
	require.NoError(t, dbConn.Model(&db.CrawlLog{}).Where("source_site = ?", "daily").Count(&logs).Error)
	assert.Equal(t, int64(1), logs)
}

func TestRanTodayIgnoresOlderRuns(t *testing.T) {
	s, dbConn := newTestScheduler(t)

	_, err := store.AppendCrawlLog(dbConn, db.CrawlLog{
		SourceSite: "daily",
		Status:     db.CrawlSuccess,
		CrawlDate:  time.Now().AddDate(0, 0, -1),
	})
	require.NoError(t, err)

	assert.False(t, s.ranToday())
}

func TestRanTodayWithoutDatabase(t *testing.T) {
	s := New(nil, crawler.NewService(nil, nil))
	assert.False(t, s.ranToday())
}

func TestStartStop(t *testing.T) {
	s, _ := newTestScheduler(t)

	require.NoError(t, s.Start())
	s.Stop()
}
