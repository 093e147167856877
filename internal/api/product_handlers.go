package api

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/modutour/backend/internal/db"
	"github.com/modutour/backend/internal/store"
)

// ProductResponse is one product row as the listing endpoint returns it.
type ProductResponse struct {
	ID           uint    `json:"id"`
	ProductName  string  `json:"product_name"`
	Price        float64 `json:"price"`
	ProductCode  string  `json:"product_code"`
	Category     string  `json:"category"`
	MainImageURL string  `json:"main_image_url"`
	SourceSite   string  `json:"source_site"`
	ProductLink  string  `json:"product_link"`
	Description  string  `json:"description"`
	UpdatedAt    string  `json:"updated_at"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
}

// CreateProductRequest is the manual product creation payload.
type CreateProductRequest struct {
	ProductName  string  `json:"product_name"`
	Price        float64 `json:"price"`
	ProductCode  string  `json:"product_code"`
	ProductLink  string  `json:"product_link"`
	MainImageURL string  `json:"main_image_url"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	SourceSite   string  `json:"source_site"`
}

// ListProductsHandler handles paginated product listing with category and
// source filters. Active exclusion rules are applied to the query.
func ListProductsHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "20"))
		if err != nil || perPage < 1 || perPage > 100 {
			perPage = 20
		}
		category := strings.TrimSpace(c.Query("category"))
		sourceSite := strings.TrimSpace(c.Query("source_site"))

		if !deps.DatabaseAvailable {
			c.JSON(http.StatusOK, gin.H{
				"products": []gin.H{
					{
						"id":           1,
						"product_name": "[sample] Jeju Island travel package",
						"price":        299000,
						"product_code": "TEST001",
						"category":     "domestic travel",
					},
				},
				"pagination": gin.H{"current_page": 1, "total_pages": 1},
				"success":    true,
			})
			return
		}

		params := store.ListParams{
			Page:            page,
			PerPage:         perPage,
			Category:        category,
			SourceSite:      sourceSite,
			ExcludeKeywords: store.ExcludeKeywords(deps.DB),
			ExcludeCodes:    store.ExcludeProductCodes(deps.DB),
		}

		products, total, err := store.ListProducts(deps.DB, params)
		if err != nil {
			log.Printf("Failed to list products: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		rows := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			rows = append(rows, ProductResponse{
				ID:           p.ID,
				ProductName:  p.ProductName,
				Price:        p.Price.InexactFloat64(),
				ProductCode:  p.ProductCode,
				Category:     p.Category,
				MainImageURL: p.MainImageURL,
				SourceSite:   string(p.SourceSite),
				ProductLink:  p.ProductLink,
				Description:  p.Description,
				UpdatedAt:    p.UpdatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		totalPages := int((total + int64(perPage) - 1) / int64(perPage))

		c.JSON(http.StatusOK, gin.H{
			"products": rows,
			"pagination": Pagination{
				CurrentPage: page,
				PerPage:     perPage,
				TotalCount:  total,
				TotalPages:  totalPages,
			},
			"success": true,
		})
	}
}

// CreateProductHandler handles manual product creation. Required fields
// are validated before the store is touched.
func CreateProductHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("Product creation validation error: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if missing := firstMissingField(&req); missing != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": missing + " is required"})
			return
		}

		if !deps.DatabaseAvailable {
			c.JSON(http.StatusCreated, gin.H{
				"message":    "Product created (local mode)",
				"product_id": 12345,
				"success":    true,
			})
			return
		}

		source := db.SourceSite(req.SourceSite)
		if source == "" {
			source = db.SourceManual
		}

		product := db.Product{
			ProductName:  req.ProductName,
			Price:        decimal.NewFromFloat(req.Price),
			ProductLink:  req.ProductLink,
			MainImageURL: req.MainImageURL,
			ProductCode:  req.ProductCode,
			Category:     req.Category,
			Description:  req.Description,
			SourceSite:   source,
		}

		productID, err := store.CreateProduct(deps.DB, &product)
		if err != nil {
			log.Printf("Failed to create product: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product"})
			return
		}

		log.Printf("Created product %s (ID: %d)", product.ProductCode, productID)
		c.JSON(http.StatusCreated, gin.H{
			"message":    "Product created",
			"product_id": productID,
			"success":    true,
		})
	}
}

func firstMissingField(req *CreateProductRequest) string {
	switch {
	case strings.TrimSpace(req.ProductName) == "":
		return "product_name"
	case req.Price <= 0:
		return "price"
	case strings.TrimSpace(req.ProductCode) == "":
		return "product_code"
	}
	return ""
}
