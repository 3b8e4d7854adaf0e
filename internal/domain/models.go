package domain

import "time"

type Dimensions struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

type Shipping struct {
	FreeShipping  bool    `json:"free_shipping"`
	ShippingCost  float64 `json:"shipping_cost"`
	EstimatedDays int     `json:"estimated_days"`
}

// Product is one synthetic catalog entry. Field order is the JSON field order.
type Product struct {
	ID              int        `json:"id"`
	UUID            string     `json:"uuid"`
	Name            string     `json:"name"`
	Brand           string     `json:"brand"`
	Category        string     `json:"category"`
	Subcategory     string     `json:"subcategory"`
	Description     string     `json:"description"`
	Price           float64    `json:"price"`
	Currency        string     `json:"currency"`
	DiscountPercent int        `json:"discount_percent"`
	FinalPrice      float64    `json:"final_price"`
	Rating          float64    `json:"rating"`
	ReviewCount     int        `json:"review_count"`
	StockQuantity   int        `json:"stock_quantity"`
	InStock         bool       `json:"in_stock"`
	SKU             string     `json:"sku"`
	Barcode         string     `json:"barcode"`
	WeightKg        float64    `json:"weight_kg"`
	Dimensions      Dimensions `json:"dimensions"`
	Tags            []string   `json:"tags"`
	ImageURL        string     `json:"image_url"`
	ThumbnailURL    string     `json:"thumbnail_url"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	Status          string     `json:"status"` // active | inactive | draft
	Featured        bool       `json:"featured"`
	Shipping        Shipping   `json:"shipping"`
}

// CategoryCount is one row of the per-category summary.
type CategoryCount struct {
	Category string `db:"category" json:"category"`
	Count    int    `db:"n" json:"count"`
}
