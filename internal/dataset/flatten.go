// Package dataset serializes generated products to JSON and CSV artifacts
// and reads them back.
package dataset

import (
	"strings"

	"productgen/internal/domain"
)

// TagSeparator joins tags into the single tabular cell.
const TagSeparator = ","

func Flatten(p domain.Product) domain.FlatProduct {
	return domain.FlatProduct{
		ID:              p.ID,
		UUID:            p.UUID,
		Name:            p.Name,
		Brand:           p.Brand,
		Category:        p.Category,
		Subcategory:     p.Subcategory,
		Description:     p.Description,
		Price:           p.Price,
		Currency:        p.Currency,
		DiscountPercent: p.DiscountPercent,
		FinalPrice:      p.FinalPrice,
		Rating:          p.Rating,
		ReviewCount:     p.ReviewCount,
		StockQuantity:   p.StockQuantity,
		InStock:         p.InStock,
		SKU:             p.SKU,
		Barcode:         p.Barcode,
		WeightKg:        p.WeightKg,
		Tags:            strings.Join(p.Tags, TagSeparator),
		ImageURL:        p.ImageURL,
		ThumbnailURL:    p.ThumbnailURL,
		CreatedAt:       p.CreatedAt.Format(domain.TimeLayout),
		UpdatedAt:       p.UpdatedAt.Format(domain.TimeLayout),
		Status:          p.Status,
		Featured:        p.Featured,
		LengthCm:        p.Dimensions.LengthCm,
		WidthCm:         p.Dimensions.WidthCm,
		HeightCm:        p.Dimensions.HeightCm,
		FreeShipping:    p.Shipping.FreeShipping,
		ShippingCost:    p.Shipping.ShippingCost,
		EstimatedDays:   p.Shipping.EstimatedDays,
	}
}

func FlattenAll(ps []domain.Product) []domain.FlatProduct {
	out := make([]domain.FlatProduct, len(ps))
	for i, p := range ps {
		out[i] = Flatten(p)
	}
	return out
}
