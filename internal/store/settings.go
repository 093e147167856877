package store

import (
	"log"

	"gorm.io/gorm"

	"github.com/modutour/backend/internal/db"
)

// SaveExcludeSetting replaces the active exclusion rule set. Deactivating
// the previous rows and inserting the new one happen in a single
// transaction so concurrent saves cannot leave two active rows.
func SaveExcludeSetting(dbConn *gorm.DB, keywords, productCodes string) (uint, error) {
	var setting db.ExcludeSetting

	err := dbConn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db.ExcludeSetting{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		setting = db.ExcludeSetting{
			ExcludeKeywords:     keywords,
			ExcludeProductCodes: productCodes,
			IsActive:            true,
		}
		return tx.Create(&setting).Error
	})
	if err != nil {
		return 0, err
	}

	log.Printf("Saved exclude setting (ID: %d)", setting.ID)
	return setting.ID, nil
}

// GetActiveExcludeSetting returns the most recently updated active
// exclusion setting, or nil when none exists.
func GetActiveExcludeSetting(dbConn *gorm.DB) (*db.ExcludeSetting, error) {
	var setting db.ExcludeSetting
	err := dbConn.Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// SaveCrawlingSetting replaces the active crawling setting with the same
// activate-replace lifecycle as SaveExcludeSetting.
func SaveCrawlingSetting(dbConn *gorm.DB, name, text string) (uint, error) {
	var setting db.CrawlingSetting

	err := dbConn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db.CrawlingSetting{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		setting = db.CrawlingSetting{
			SettingName: name,
			SettingText: text,
			IsActive:    true,
		}
		return tx.Create(&setting).Error
	})
	if err != nil {
		return 0, err
	}

	log.Printf("Saved crawling setting %q (ID: %d)", name, setting.ID)
	return setting.ID, nil
}

// GetActiveCrawlingSetting returns the active crawling setting, or nil
// when none exists.
func GetActiveCrawlingSetting(dbConn *gorm.DB) (*db.CrawlingSetting, error) {
	var setting db.CrawlingSetting
	err := dbConn.Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
