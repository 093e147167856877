package main

import (
	"flag"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/modutour/backend/internal/crawler"
	"github.com/modutour/backend/internal/db"
	"github.com/modutour/backend/internal/store"
)

// SeedConfig holds seed configuration
type SeedConfig struct {
	Keywords string
	Products int
}

// NewSeedConfig creates a new seed configuration
func NewSeedConfig() *SeedConfig {
	keywords := flag.String("keywords", strings.Join(crawler.DefaultKeywords, "\n"), "Newline-separated crawl keywords")
	products := flag.Int("products", 5, "Sample products to generate per keyword and source")

	flag.Parse()

	return &SeedConfig{
		Keywords: *keywords,
		Products: *products,
	}
}

func main() {
	config := NewSeedConfig()

	if config.Products < 0 {
		log.Fatal("Product count cannot be negative")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using process environment")
	}

	log.Println("Starting database seeding...")

	dbConn, err := db.InitDB(db.NewConfig())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Default crawling setting
	settingID, err := store.SaveCrawlingSetting(dbConn, "default", config.Keywords)
	if err != nil {
		log.Fatalf("Failed to seed crawling setting: %v", err)
	}
	log.Printf("Seeded crawling setting (ID: %d)", settingID)

	// Empty exclusion rule set so the listing filters have an active row
	excludeID, err := store.SaveExcludeSetting(dbConn, "", "")
	if err != nil {
		log.Fatalf("Failed to seed exclude setting: %v", err)
	}
	log.Printf("Seeded exclude setting (ID: %d)", excludeID)

	if config.Products == 0 {
		log.Println("Seeding complete")
		return
	}

	// Sample products via the stub generator
	generator := crawler.NewGenerator()
	total := 0
	for _, keyword := range crawler.ParseSettingText(config.Keywords) {
		for _, source := range []db.SourceSite{db.SourceSiteA, db.SourceSiteB} {
			products, err := generator.Generate(keyword, source, config.Products)
			if err != nil {
				log.Printf("Failed to generate products for %q on %s: %v", keyword, source, err)
				continue
			}
			total += store.UpsertProducts(dbConn, products)
		}
	}

	log.Printf("Seeding complete: %d products written", total)
}
