package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/modutour/backend/internal/db"
	"github.com/modutour/backend/internal/store"
)

// ExecuteCrawlingHandler runs a crawl from the stored active setting and
// appends a "mixed" crawl log with the aggregate outcome.
func ExecuteCrawlingHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !deps.DatabaseAvailable {
			c.JSON(http.StatusOK, gin.H{
				"message": "Crawl finished (simulation)",
				"result": gin.H{
					"total_products": 10,
					"success_count":  10,
					"error_count":    0,
					"keywords_used":  []string{"travel package", "overseas travel"},
				},
				"success": true,
			})
			return
		}

		setting, err := store.GetActiveCrawlingSetting(deps.DB)
		if err != nil {
			log.Printf("Failed to fetch crawling setting: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		if setting == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No active crawling setting"})
			return
		}

		if !deps.CrawlerAvailable {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Crawler is not available"})
			return
		}

		result := deps.Crawler.RunWithSettings(setting.SettingText)

		status := db.CrawlSuccess
		if result.ErrorCount > 0 {
			status = db.CrawlPartial
		}
		if _, err := store.AppendCrawlLog(deps.DB, db.CrawlLog{
			SourceSite:    "mixed",
			TotalProducts: result.TotalProducts,
			SuccessCount:  result.SuccessCount,
			ErrorCount:    result.ErrorCount,
			Status:        status,
			KeywordsUsed:  strings.Join(result.KeywordsUsed, ", "),
		}); err != nil {
			log.Printf("Failed to save crawl log: %v", err)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Crawl from settings finished",
			"result":  result,
			"success": true,
		})
	}
}

// TriggerCrawlingHandler runs the fixed daily crawl immediately.
func TriggerCrawlingHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !deps.CrawlerAvailable {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Crawler is not available"})
			return
		}

		result := deps.Crawler.RunDaily()

		c.JSON(http.StatusOK, gin.H{
			"message": "Daily crawl finished",
			"result":  result,
			"success": true,
		})
	}
}
