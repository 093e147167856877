package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router. Shared between
// main and the handler tests.
func RegisterRoutes(r *gin.Engine, deps *Deps) {
	r.GET("/api/health", HealthHandler(deps))

	r.GET("/api/products", ListProductsHandler(deps))
	r.POST("/api/products", CreateProductHandler(deps))

	r.GET("/api/exclude-settings", GetExcludeSettingsHandler(deps))
	r.POST("/api/exclude-settings", SaveExcludeSettingsHandler(deps))

	r.GET("/api/crawling/settings", GetCrawlingSettingsHandler(deps))
	r.POST("/api/crawling/settings", SaveCrawlingSettingsHandler(deps))
	r.POST("/api/crawling/execute", ExecuteCrawlingHandler(deps))
	r.POST("/api/crawling/trigger", TriggerCrawlingHandler(deps))

	r.GET("/routes", RoutesHandler(r))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": "The requested URL was not found on the server",
			"status":  http.StatusNotFound,
		})
	})
}

// HealthHandler reports liveness plus the capability flags.
func HealthHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":             "healthy",
			"message":            "ModuTour Backend API is running",
			"timestamp":          time.Now().Format(time.RFC3339),
			"database_available": deps.DatabaseAvailable,
			"crawler_available":  deps.CrawlerAvailable,
		})
	}
}

// RoutesHandler lists every registered route, one "METHOD path" per entry.
func RoutesHandler(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		out := make([]string, 0, len(routes))
		for _, route := range routes {
			out = append(out, fmt.Sprintf("%s %s", route.Method, route.Path))
		}
		c.JSON(http.StatusOK, out)
	}
}
