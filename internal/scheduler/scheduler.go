package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/modutour/backend/internal/crawler"
	"github.com/modutour/backend/internal/store"
)

// dailySpec fires the crawl at 02:00 local time.
const dailySpec = "0 2 * * *"

// dailySource is the crawl-log source label the daily job runs under.
const dailySource = "daily"

// Scheduler triggers the daily crawl. De-duplication is persisted: the
// job is skipped when a "daily" crawl log already exists for today, so a
// process restart cannot cause a second same-day run.
type Scheduler struct {
	cron    *cron.Cron
	db      *gorm.DB
	crawler *crawler.Service
}

// New creates a scheduler driving the given crawler service.
func New(dbConn *gorm.DB, crawlerService *crawler.Service) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		db:      dbConn,
		crawler: crawlerService,
	}
}

// Start registers the daily entry and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(dailySpec, s.runDaily); err != nil {
		return fmt.Errorf("failed to schedule daily crawl: %w", err)
	}
	s.cron.Start()
	log.Println("Crawl scheduler started")
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Crawl scheduler stopped")
}

func (s *Scheduler) runDaily() {
	if s.ranToday() {
		log.Println("Daily crawl already ran today, skipping")
		return
	}

	result := s.crawler.RunDaily()
	log.Printf("Scheduled daily crawl finished: %+v", result)
}

// ranToday consults the crawl log rather than in-memory cron state.
func (s *Scheduler) ranToday() bool {
	if s.db == nil {
		return false
	}

	last, err := store.LastCrawlDate(s.db, dailySource)
	if err != nil {
		log.Printf("Failed to check last daily crawl date: %v", err)
		return false
	}
	if last.IsZero() {
		return false
	}

	now := time.Now()
	return last.Year() == now.Year() && last.YearDay() == now.YearDay()
}
