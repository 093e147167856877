package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/modutour/backend/internal/store"
)

// SaveExcludeSettingsRequest replaces the active exclusion rule set.
type SaveExcludeSettingsRequest struct {
	ExcludeKeywords     string `json:"exclude_keywords"`
	ExcludeProductCodes string `json:"exclude_product_codes"`
}

// SaveCrawlingSettingsRequest replaces the active crawling setting.
type SaveCrawlingSettingsRequest struct {
	SettingName string `json:"setting_name"`
	SettingText string `json:"setting_text"`
}

// GetExcludeSettingsHandler returns the active exclusion rules.
func GetExcludeSettingsHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !deps.DatabaseAvailable {
			c.JSON(http.StatusOK, gin.H{
				"settings": gin.H{
					"exclude_keywords":      "",
					"exclude_product_codes": "",
				},
				"success": true,
			})
			return
		}

		setting, err := store.GetActiveExcludeSetting(deps.DB)
		if err != nil {
			log.Printf("Failed to fetch exclude settings: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"settings": setting,
			"success":  true,
		})
	}
}

// SaveExcludeSettingsHandler replaces the active exclusion rules.
func SaveExcludeSettingsHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SaveExcludeSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if !deps.DatabaseAvailable {
			c.JSON(http.StatusCreated, gin.H{
				"message":    "Exclude settings saved (local mode)",
				"setting_id": 12345,
				"success":    true,
			})
			return
		}

		settingID, err := store.SaveExcludeSetting(deps.DB, req.ExcludeKeywords, req.ExcludeProductCodes)
		if err != nil {
			log.Printf("Failed to save exclude settings: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":    "Exclude settings saved",
			"setting_id": settingID,
			"success":    true,
		})
	}
}

// GetCrawlingSettingsHandler returns the active crawling setting, or null
// when none exists.
func GetCrawlingSettingsHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !deps.DatabaseAvailable {
			c.JSON(http.StatusOK, gin.H{
				"setting": nil,
				"success": true,
				"message": "Database is not available",
			})
			return
		}

		setting, err := store.GetActiveCrawlingSetting(deps.DB)
		if err != nil {
			log.Printf("Failed to fetch crawling settings: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"setting": setting,
			"success": true,
		})
	}
}

// SaveCrawlingSettingsHandler replaces the active crawling setting.
func SaveCrawlingSettingsHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SaveCrawlingSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if strings.TrimSpace(req.SettingText) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "setting_text is required"})
			return
		}
		if req.SettingName == "" {
			req.SettingName = "default"
		}

		if !deps.DatabaseAvailable {
			c.JSON(http.StatusCreated, gin.H{
				"message":    "Crawling settings saved (local mode)",
				"setting_id": 12345,
				"success":    true,
			})
			return
		}

		settingID, err := store.SaveCrawlingSetting(deps.DB, req.SettingName, req.SettingText)
		if err != nil {
			log.Printf("Failed to save crawling settings: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":    "Crawling settings saved",
			"setting_id": settingID,
			"success":    true,
		})
	}
}
