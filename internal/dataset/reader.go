package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"productgen/internal/domain"
)

func ReadJSON(r io.Reader) ([]domain.Product, error) {
	var ps []domain.Product
	if err := json.NewDecoder(r).Decode(&ps); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return ps, nil
}

// columnSetter parses one cell into its field.
type columnSetter func(f *domain.FlatProduct, cell string) error

func intCol(dst func(*domain.FlatProduct) *int) columnSetter {
	return func(f *domain.FlatProduct, cell string) error {
		v, err := strconv.Atoi(strings.TrimSpace(cell))
		if err != nil {
			return err
		}
		*dst(f) = v
		return nil
	}
}

func floatCol(dst func(*domain.FlatProduct) *float64) columnSetter {
	return func(f *domain.FlatProduct, cell string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return err
		}
		*dst(f) = v
		return nil
	}
}

// boolCol also accepts the capitalized True/False that other writers emit.
func boolCol(dst func(*domain.FlatProduct) *bool) columnSetter {
	return func(f *domain.FlatProduct, cell string) error {
		v, err := strconv.ParseBool(strings.TrimSpace(cell))
		if err != nil {
			return err
		}
		*dst(f) = v
		return nil
	}
}

func stringCol(dst func(*domain.FlatProduct) *string) columnSetter {
	return func(f *domain.FlatProduct, cell string) error {
		*dst(f) = cell
		return nil
	}
}

var setters = map[string]columnSetter{
	"id":               intCol(func(f *domain.FlatProduct) *int { return &f.ID }),
	"uuid":             stringCol(func(f *domain.FlatProduct) *string { return &f.UUID }),
	"name":             stringCol(func(f *domain.FlatProduct) *string { return &f.Name }),
	"brand":            stringCol(func(f *domain.FlatProduct) *string { return &f.Brand }),
	"category":         stringCol(func(f *domain.FlatProduct) *string { return &f.Category }),
	"subcategory":      stringCol(func(f *domain.FlatProduct) *string { return &f.Subcategory }),
	"description":      stringCol(func(f *domain.FlatProduct) *string { return &f.Description }),
	"price":            floatCol(func(f *domain.FlatProduct) *float64 { return &f.Price }),
	"currency":         stringCol(func(f *domain.FlatProduct) *string { return &f.Currency }),
	"discount_percent": intCol(func(f *domain.FlatProduct) *int { return &f.DiscountPercent }),
	"final_price":      floatCol(func(f *domain.FlatProduct) *float64 { return &f.FinalPrice }),
	"rating":           floatCol(func(f *domain.FlatProduct) *float64 { return &f.Rating }),
	"review_count":     intCol(func(f *domain.FlatProduct) *int { return &f.ReviewCount }),
	"stock_quantity":   intCol(func(f *domain.FlatProduct) *int { return &f.StockQuantity }),
	"in_stock":         boolCol(func(f *domain.FlatProduct) *bool { return &f.InStock }),
	"sku":              stringCol(func(f *domain.FlatProduct) *string { return &f.SKU }),
	"barcode":          stringCol(func(f *domain.FlatProduct) *string { return &f.Barcode }),
	"weight_kg":        floatCol(func(f *domain.FlatProduct) *float64 { return &f.WeightKg }),
	"tags":             stringCol(func(f *domain.FlatProduct) *string { return &f.Tags }),
	"image_url":        stringCol(func(f *domain.FlatProduct) *string { return &f.ImageURL }),
	"thumbnail_url":    stringCol(func(f *domain.FlatProduct) *string { return &f.ThumbnailURL }),
	"created_at":       stringCol(func(f *domain.FlatProduct) *string { return &f.CreatedAt }),
	"updated_at":       stringCol(func(f *domain.FlatProduct) *string { return &f.UpdatedAt }),
	"status":           stringCol(func(f *domain.FlatProduct) *string { return &f.Status }),
	"featured":         boolCol(func(f *domain.FlatProduct) *bool { return &f.Featured }),
	"length_cm":        floatCol(func(f *domain.FlatProduct) *float64 { return &f.LengthCm }),
	"width_cm":         floatCol(func(f *domain.FlatProduct) *float64 { return &f.WidthCm }),
	"height_cm":        floatCol(func(f *domain.FlatProduct) *float64 { return &f.HeightCm }),
	"free_shipping":    boolCol(func(f *domain.FlatProduct) *bool { return &f.FreeShipping }),
	"shipping_cost":    floatCol(func(f *domain.FlatProduct) *float64 { return &f.ShippingCost }),
	"estimated_days":   intCol(func(f *domain.FlatProduct) *int { return &f.EstimatedDays }),
}

// ReadCSV parses a tabular artifact. Columns are matched by header name, so
// their order in the file does not matter, but every column in
// domain.Columns must be present. Empty input yields no records.
func ReadCSV(r io.Reader) ([]domain.FlatProduct, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csv read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}
	for _, col := range domain.Columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("csv missing column %q", col)
		}
	}

	var out []domain.FlatProduct
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv read line %d: %w", line, err)
		}
		var f domain.FlatProduct
		for _, col := range domain.Columns {
			cell := row[index[col]]
			if err := setters[col](&f, cell); err != nil {
				return nil, fmt.Errorf("csv line %d column %q value %q: %w", line, col, cell, err)
			}
		}
		out = append(out, f)
	}
	return out, nil
}
