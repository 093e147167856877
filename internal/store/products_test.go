package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modutour/backend/internal/db"
)

func sampleProduct(code, name string, price int64) db.Product {
	return db.Product{
		ProductName: name,
		Price:       decimal.NewFromInt(price),
		ProductCode: code,
		Category:    "domestic travel",
		SourceSite:  db.SourceSiteA,
	}
}

func TestUpsertProductsUpdatesOnDuplicateCode(t *testing.T) {
	dbConn := openTestDB(t)

	saved := UpsertProducts(dbConn, []db.Product{sampleProduct("T1", "first name", 1000)})
	assert.Equal(t, 1, saved)

	saved = UpsertProducts(dbConn, []db.Product{sampleProduct("T1", "second name", 2500)})
	assert.Equal(t, 1, saved)

	var count int64
	require.NoError(t, dbConn.Model(&db.Product{}).Where("product_code = ?", "T1").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var product db.Product
	require.NoError(t, dbConn.Where("product_code = ?", "T1").First(&product).Error)
	assert.Equal(t, "second name", product.ProductName)
	assert.True(t, product.Price.Equal(decimal.NewFromInt(2500)),
		"price should reflect the second call, got %s", product.Price)
}

func TestUpsertProductsRepeatedCodeInOneBatch(t *testing.T) {
	dbConn := openTestDB(t)

	products := []db.Product{
		sampleProduct("T1", "first", 1000),
		sampleProduct("T1", "second", 2000),
	}

	saved := UpsertProducts(dbConn, products)
	assert.Equal(t, 2, saved)

	var count int64
	require.NoError(t, dbConn.Model(&db.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var product db.Product
	require.NoError(t, dbConn.Where("product_code = ?", "T1").First(&product).Error)
	assert.Equal(t, "second", product.ProductName)
}

func TestListProductsEmptyStore(t *testing.T) {
	dbConn := openTestDB(t)

	products, total, err := ListProducts(dbConn, ListParams{Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, products)
}

func TestListProductsFiltersAndPagination(t *testing.T) {
	dbConn := openTestDB(t)

	UpsertProducts(dbConn, []db.Product{
		sampleProduct("A1", "beach resort", 1000),
		sampleProduct("A2", "beach camping", 2000),
		sampleProduct("A3", "ski resort", 3000),
	})
	manual := sampleProduct("M1", "manual entry", 500)
	manual.SourceSite = db.SourceManual
	UpsertProducts(dbConn, []db.Product{manual})

	// Source filter is exact.
	products, total, err := ListProducts(dbConn, ListParams{Page: 1, PerPage: 20, SourceSite: "manual"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "M1", products[0].ProductCode)

	// Exclude keywords and codes are pushed into the WHERE clause, so
	// the total matches the visible rows.
	products, total, err = ListProducts(dbConn, ListParams{
		Page:            1,
		PerPage:         20,
		ExcludeKeywords: []string{"beach"},
		ExcludeCodes:    []string{"M1"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "A3", products[0].ProductCode)

	// Offset pagination.
	products, total, err = ListProducts(dbConn, ListParams{Page: 2, PerPage: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, products, 1)
}

func TestListProductsOrdersByMostRecentlyUpdated(t *testing.T) {
	dbConn := openTestDB(t)

	old := sampleProduct("OLD", "old product", 1000)
	UpsertProducts(dbConn, []db.Product{old})
	require.NoError(t, dbConn.Model(&db.Product{}).
		Where("product_code = ?", "OLD").
		Update("updated_at", time.Now().Add(-time.Hour)).Error)

	UpsertProducts(dbConn, []db.Product{sampleProduct("NEW", "new product", 2000)})

	products, _, err := ListProducts(dbConn, ListParams{Page: 1, PerPage: 20})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "NEW", products[0].ProductCode)
	assert.Equal(t, "OLD", products[1].ProductCode)
}

func TestCreateProductDefaultsSource(t *testing.T) {
	dbConn := openTestDB(t)

	product := db.Product{
		ProductName: "Test",
		Price:       decimal.NewFromInt(1000),
		ProductCode: "T1",
	}

	id, err := CreateProduct(dbConn, &product)
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Equal(t, db.SourceManual, product.SourceSite)
}
