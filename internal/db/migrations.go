package db

import "gorm.io/gorm"

// RunMigrations creates or updates the four domain tables. Exported so the
// test helpers can migrate an in-memory database the same way.
func RunMigrations(dbConn *gorm.DB) error {
	return dbConn.AutoMigrate(
		&Product{},
		&CrawlingSetting{},
		&ExcludeSetting{},
		&CrawlLog{},
	)
}
