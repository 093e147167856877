package store

import (
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/modutour/backend/internal/db"
)

// ListParams describes a product listing request.
type ListParams struct {
	Page            int
	PerPage         int
	Category        string
	SourceSite      string
	ExcludeKeywords []string
	ExcludeCodes    []string
}

// UpsertProducts inserts the given products, updating the mutable fields
// of any row whose product_code already exists. Price and category are
// deliberately overwritten on re-crawl, manual edits included. Per-row
// failures are logged and skipped; the count of rows actually written is
// returned.
func UpsertProducts(dbConn *gorm.DB, products []db.Product) int {
	saved := 0
	for i := range products {
		err := dbConn.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"product_name", "price", "product_link", "main_image_url",
				"category", "description", "updated_at",
			}),
		}).Create(&products[i]).Error
		if err != nil {
			log.Printf("Failed to save product %s: %v", products[i].ProductCode, err)
			continue
		}
		saved++
	}

	if saved > 0 {
		log.Printf("Saved %d products", saved)
	}
	return saved
}

// ListProducts returns one page of products plus the total count of rows
// matching the filters. Exclusion rules are pushed into the WHERE clause
// (name against keywords, code against codes) so pagination counts stay
// consistent with what the client sees.
func ListProducts(dbConn *gorm.DB, params ListParams) ([]db.Product, int64, error) {
	query := dbConn.Model(&db.Product{})

	if params.Category != "" {
		query = query.Where("category LIKE ?", "%"+params.Category+"%")
	}
	if params.SourceSite != "" {
		query = query.Where("source_site = ?", params.SourceSite)
	}
	for _, keyword := range params.ExcludeKeywords {
		query = query.Where("product_name NOT LIKE ?", "%"+keyword+"%")
	}
	for _, code := range params.ExcludeCodes {
		query = query.Where("product_code NOT LIKE ?", "%"+code+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	offset := (params.Page - 1) * params.PerPage

	var products []db.Product
	err := query.Order("updated_at DESC").
		Limit(params.PerPage).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// CreateProduct inserts a manually entered product. Field validation is
// the caller's job; this only touches the store.
func CreateProduct(dbConn *gorm.DB, product *db.Product) (uint, error) {
	if product.SourceSite == "" {
		product.SourceSite = db.SourceManual
	}
	if err := dbConn.Create(product).Error; err != nil {
		return 0, err
	}
	return product.ID, nil
}
