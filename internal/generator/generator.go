// Package generator synthesizes fake product records from a Catalog.
package generator

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"productgen/internal/domain"
)

// ProgressEvery is how often Dataset reports progress.
const ProgressEvery = 1000

// Generator is not safe for concurrent use; build one per run.
type Generator struct {
	src     *rand.ChaCha8
	rng     *rand.Rand
	catalog domain.Catalog
	now     func() time.Time
}

type Option func(*Generator)

func WithCatalog(c domain.Catalog) Option {
	return func(g *Generator) { g.catalog = c }
}

// WithClock fixes the reference time used for created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func New(src *rand.ChaCha8, opts ...Option) *Generator {
	g := &Generator{
		src:     src,
		rng:     rand.New(src),
		catalog: domain.DefaultCatalog(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// NewSeeded builds a reproducible generator. Seed 0 seeds from the clock.
func NewSeeded(seed uint64, opts ...Option) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return New(rand.NewChaCha8(key), opts...)
}

// Generate returns one record for id. It never fails.
func (g *Generator) Generate(id int) domain.Product {
	cat := g.catalog.Categories[g.rng.IntN(len(g.catalog.Categories))]
	item := pick(g.rng, cat.Items)
	brand := pick(g.rng, g.catalog.Brands)
	adjective := pick(g.rng, g.catalog.Adjectives)
	lowerItem := strings.ToLower(item)

	price := Round(g.uniform(cat.Prices.Min, cat.Prices.Max), 2)
	discount := 0
	if g.rng.Float64() < 0.3 {
		discount = pick(g.rng, g.catalog.Discounts)
	}
	stock := g.rng.IntN(501)

	created := g.now().UTC().AddDate(0, 0, -(1 + g.rng.IntN(365)))
	updated := created.AddDate(0, 0, g.rng.IntN(31))

	ship := domain.Shipping{
		FreeShipping:  g.rng.Float64() < 0.4,
		EstimatedDays: 1 + g.rng.IntN(14),
	}
	if !ship.FreeShipping {
		ship.ShippingCost = Round(g.uniform(5, 25), 2)
	}

	return domain.Product{
		ID:              id,
		UUID:            g.uuid(),
		Name:            fmt.Sprintf("%s %s %s", brand, adjective, item),
		Brand:           brand,
		Category:        cat.Name,
		Subcategory:     fmt.Sprintf("%s > %s", cat.Name, item),
		Description:     fmt.Sprintf(pick(g.rng, g.catalog.Descriptions), lowerItem),
		Price:           price,
		Currency:        "USD",
		DiscountPercent: discount,
		FinalPrice:      FinalPrice(price, discount),
		Rating:          Round(g.uniform(1.0, 5.0), 1),
		ReviewCount:     g.rng.IntN(1001),
		StockQuantity:   stock,
		InStock:         stock > 0,
		SKU:             fmt.Sprintf("%s-%d", skuPrefix(brand), 100000+g.rng.IntN(900000)),
		Barcode:         fmt.Sprintf("%d", 1000000000000+g.rng.Int64N(9000000000000)),
		WeightKg:        Round(g.uniform(0.1, 50.0), 2),
		Dimensions: domain.Dimensions{
			LengthCm: Round(g.uniform(5, 100), 1),
			WidthCm:  Round(g.uniform(5, 100), 1),
			HeightCm: Round(g.uniform(2, 50), 1),
		},
		Tags:         []string{strings.ToLower(cat.Name), lowerItem, strings.ToLower(brand)},
		ImageURL:     fmt.Sprintf("https://picsum.photos/400/400?random=%d", id),
		ThumbnailURL: fmt.Sprintf("https://picsum.photos/200/200?random=%d", id),
		CreatedAt:    created,
		UpdatedAt:    updated,
		Status:       pick(g.rng, g.catalog.StatusSlots),
		Featured:     g.rng.Float64() < 0.1,
		Shipping:     ship,
	}
}

// Dataset generates ids 1..count in order. progress, if set, is called
// with the number of records done every ProgressEvery records.
func (g *Generator) Dataset(count int, progress func(done int)) []domain.Product {
	if count <= 0 {
		return []domain.Product{}
	}
	out := make([]domain.Product, 0, count)
	for id := 1; id <= count; id++ {
		out = append(out, g.Generate(id))
		if progress != nil && id%ProgressEvery == 0 {
			progress(id)
		}
	}
	return out
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// uuid draws the v4 identifier from the generator's own stream so seeded
// runs stay reproducible.
func (g *Generator) uuid() string {
	id, err := uuid.NewRandomFromReader(g.src)
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}

func pick[T any](r *rand.Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

func skuPrefix(brand string) string {
	if len(brand) > 3 {
		brand = brand[:3]
	}
	return strings.ToUpper(brand)
}
