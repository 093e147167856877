package crawler

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/modutour/backend/internal/db"
)

const (
	minPrice = 100_000
	maxPrice = 2_000_000
)

// Generator fabricates product records locally. It stands in for the real
// site crawlers and performs no network I/O.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate synthesizes count products for a keyword and source site.
// Product codes carry a random token so that repeated runs within the
// same second cannot collide. A panic is recovered and reported as an
// error alongside whatever was generated before it.
func (g *Generator) Generate(keyword string, source db.SourceSite, count int) (products []db.Product, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Product generation for %q on %s panicked: %v", keyword, source, r)
			err = fmt.Errorf("product generation failed: %v", r)
		}
	}()

	products = make([]db.Product, 0, count)
	for i := 1; i <= count; i++ {
		products = append(products, db.Product{
			ProductName:  fmt.Sprintf("[%s] %s product %d", source, keyword, i),
			Price:        decimal.NewFromInt(int64(minPrice + rand.Intn(maxPrice-minPrice+1))),
			ProductLink:  fmt.Sprintf("https://%s.example.com/products/%d", source, i),
			MainImageURL: fmt.Sprintf("https://cdn.example.com/%s/%d.jpg", source, i),
			ProductCode:  newProductCode(keyword, source, i),
			Category:     keyword,
			Description:  fmt.Sprintf("%s product collected from %s", keyword, source),
			SourceSite:   source,
		})
	}

	log.Printf("Generated %d %s products for keyword %q", len(products), source, keyword)
	return products, nil
}

func newProductCode(keyword string, source db.SourceSite, index int) string {
	token := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s_%s_%d_%s", strings.ToUpper(string(source)), keyword, index, token)
}
