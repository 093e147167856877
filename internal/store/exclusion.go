package store

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/modutour/backend/internal/db"
)

// splitList splits a delimited field, trims each token and drops empties.
func splitList(raw, sep string) []string {
	parts := strings.Split(raw, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ExcludeKeywords returns the active setting's exclude keywords. An empty
// slice is returned when no setting is active or the store is unreachable.
func ExcludeKeywords(dbConn *gorm.DB) []string {
	setting, err := GetActiveExcludeSetting(dbConn)
	if err != nil {
		log.Printf("Failed to load exclude keywords: %v", err)
		return nil
	}
	if setting == nil {
		return nil
	}
	return splitList(setting.ExcludeKeywords, ",")
}

// ExcludeProductCodes returns the active setting's exclude product codes.
func ExcludeProductCodes(dbConn *gorm.DB) []string {
	setting, err := GetActiveExcludeSetting(dbConn)
	if err != nil {
		log.Printf("Failed to load exclude product codes: %v", err)
		return nil
	}
	if setting == nil {
		return nil
	}
	return splitList(setting.ExcludeProductCodes, ",")
}

// IsProductExcluded reports whether a product should be hidden: any
// exclude keyword matching the name, or any exclude code matching the
// code, both as case-insensitive substrings.
func IsProductExcluded(keywords, codes []string, productName, productCode string) bool {
	name := strings.ToLower(productName)
	for _, keyword := range keywords {
		if strings.Contains(name, strings.ToLower(keyword)) {
			return true
		}
	}

	code := strings.ToUpper(productCode)
	for _, excluded := range codes {
		if strings.Contains(code, strings.ToUpper(excluded)) {
			return true
		}
	}

	return false
}

// FilterExcludedProducts drops products matching the active exclusion
// setting, preserving the order of the remainder.
func FilterExcludedProducts(dbConn *gorm.DB, products []db.Product) []db.Product {
	if len(products) == 0 {
		return products
	}

	keywords := ExcludeKeywords(dbConn)
	codes := ExcludeProductCodes(dbConn)
	if len(keywords) == 0 && len(codes) == 0 {
		return products
	}

	filtered := make([]db.Product, 0, len(products))
	for _, product := range products {
		if IsProductExcluded(keywords, codes, product.ProductName, product.ProductCode) {
			continue
		}
		filtered = append(filtered, product)
	}

	if excluded := len(products) - len(filtered); excluded > 0 {
		log.Printf("Excluded %d products by active exclude setting", excluded)
	}

	return filtered
}
