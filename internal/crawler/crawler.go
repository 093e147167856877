package crawler

import (
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/modutour/backend/internal/db"
	"github.com/modutour/backend/internal/store"
)

// DefaultKeywords are crawled when no setting provides any.
var DefaultKeywords = []string{"travel package", "overseas travel", "domestic travel"}

// crawledSites are the source sites each keyword is crawled on.
var crawledSites = []db.SourceSite{db.SourceSiteA, db.SourceSiteB}

// Config holds crawler configuration
type Config struct {
	ItemsPerSourceDaily    int
	ItemsPerSourceSettings int
	KeywordPause           time.Duration
}

// DefaultConfig returns default crawler configuration
func DefaultConfig() *Config {
	return &Config{
		ItemsPerSourceDaily:    5,
		ItemsPerSourceSettings: 10,
		KeywordPause:           time.Second,
	}
}

// Result aggregates one crawl run.
type Result struct {
	TotalProducts int      `json:"total_products"`
	SuccessCount  int      `json:"success_count"`
	ErrorCount    int      `json:"error_count"`
	KeywordsUsed  []string `json:"keywords_used"`
}

// Service drives the stub generator across keyword lists and persists the
// outcome. A nil database handle puts the service in simulation mode:
// products are generated and counted but nothing is stored.
type Service struct {
	db        *gorm.DB
	generator *Generator
	config    *Config
}

// NewService creates a new crawler service
func NewService(dbConn *gorm.DB, config *Config) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	return &Service{
		db:        dbConn,
		generator: NewGenerator(),
		config:    config,
	}
}

// ParseSettingText extracts crawl keywords from a setting body: one
// keyword per line, blank lines dropped, defaults when nothing remains.
func ParseSettingText(text string) []string {
	lines := strings.Split(text, "\n")
	keywords := make([]string, 0, len(lines))
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			keywords = append(keywords, t)
		}
	}
	if len(keywords) == 0 {
		return DefaultKeywords
	}
	return keywords
}

// RunDaily crawls the fixed default keyword list and logs the run under
// the "daily" source so the scheduler can tell whether today already ran.
func (s *Service) RunDaily() Result {
	log.Println("Starting daily crawl")

	result := s.run(DefaultKeywords, s.config.ItemsPerSourceDaily)

	s.appendLog("daily", result)
	log.Printf("Daily crawl finished: %+v", result)
	return result
}

// RunWithSettings crawls the keywords parsed from a stored setting body.
// The caller logs the run; this mirrors the execute endpoint owning the
// "mixed" log entry.
func (s *Service) RunWithSettings(settingText string) Result {
	log.Printf("Starting crawl from settings (%d bytes)", len(settingText))

	result := s.run(ParseSettingText(settingText), s.config.ItemsPerSourceSettings)

	log.Printf("Settings crawl finished: %+v", result)
	return result
}

// run crawls every keyword on every source site, pausing between keywords
// as a stand-in for rate limiting. A per-source failure is counted and
// the run continues.
func (s *Service) run(keywords []string, itemsPerSource int) Result {
	result := Result{KeywordsUsed: keywords}
	var collected []db.Product

	for i, keyword := range keywords {
		log.Printf("Crawling keyword %q", keyword)

		for _, site := range crawledSites {
			products, err := s.generator.Generate(keyword, site, itemsPerSource)
			if err != nil {
				log.Printf("Crawl of %s for %q failed: %v", site, keyword, err)
				result.ErrorCount++
				continue
			}
			result.TotalProducts += len(products)
			result.SuccessCount += len(products)
			collected = append(collected, products...)
		}

		if i < len(keywords)-1 {
			time.Sleep(s.config.KeywordPause)
		}
	}

	if s.db == nil {
		log.Printf("No database available, skipping persistence of %d products", len(collected))
		return result
	}

	if len(collected) > 0 {
		filtered := store.FilterExcludedProducts(s.db, collected)
		saved := store.UpsertProducts(s.db, filtered)
		log.Printf("Persisted %d of %d crawled products", saved, len(collected))
	}

	return result
}

func (s *Service) appendLog(sourceSite string, result Result) {
	if s.db == nil {
		return
	}

	status := db.CrawlSuccess
	if result.ErrorCount > 0 {
		status = db.CrawlPartial
	}

	_, err := store.AppendCrawlLog(s.db, db.CrawlLog{
		SourceSite:    sourceSite,
		TotalProducts: result.TotalProducts,
		SuccessCount:  result.SuccessCount,
		ErrorCount:    result.ErrorCount,
		Status:        status,
		KeywordsUsed:  strings.Join(result.KeywordsUsed, ", "),
	})
	if err != nil {
		log.Printf("Failed to save crawl log: %v", err)
	}
}
