package domain

import "strconv"

// TimeLayout is used for timestamps wherever they are rendered as text.
const TimeLayout = "2006-01-02T15:04:05.999999999Z07:00"

// Columns is the tabular header. FlatProduct.Row emits values in this order.
var Columns = []string{
	"id", "uuid", "name", "brand", "category", "subcategory", "description",
	"price", "currency", "discount_percent", "final_price", "rating", "review_count",
	"stock_quantity", "in_stock", "sku", "barcode", "weight_kg", "tags", "image_url",
	"thumbnail_url", "created_at", "updated_at", "status", "featured", "length_cm",
	"width_cm", "height_cm", "free_shipping", "shipping_cost", "estimated_days",
}

// FlatProduct is a Product with the nested groups lifted to the top level
// and tags joined into one string.
type FlatProduct struct {
	ID              int     `db:"id" json:"id"`
	UUID            string  `db:"uuid" json:"uuid"`
	Name            string  `db:"name" json:"name"`
	Brand           string  `db:"brand" json:"brand"`
	Category        string  `db:"category" json:"category"`
	Subcategory     string  `db:"subcategory" json:"subcategory"`
	Description     string  `db:"description" json:"description"`
	Price           float64 `db:"price" json:"price"`
	Currency        string  `db:"currency" json:"currency"`
	DiscountPercent int     `db:"discount_percent" json:"discount_percent"`
	FinalPrice      float64 `db:"final_price" json:"final_price"`
	Rating          float64 `db:"rating" json:"rating"`
	ReviewCount     int     `db:"review_count" json:"review_count"`
	StockQuantity   int     `db:"stock_quantity" json:"stock_quantity"`
	InStock         bool    `db:"in_stock" json:"in_stock"`
	SKU             string  `db:"sku" json:"sku"`
	Barcode         string  `db:"barcode" json:"barcode"`
	WeightKg        float64 `db:"weight_kg" json:"weight_kg"`
	Tags            string  `db:"tags" json:"tags"`
	ImageURL        string  `db:"image_url" json:"image_url"`
	ThumbnailURL    string  `db:"thumbnail_url" json:"thumbnail_url"`
	CreatedAt       string  `db:"created_at" json:"created_at"`
	UpdatedAt       string  `db:"updated_at" json:"updated_at"`
	Status          string  `db:"status" json:"status"`
	Featured        bool    `db:"featured" json:"featured"`
	LengthCm        float64 `db:"length_cm" json:"length_cm"`
	WidthCm         float64 `db:"width_cm" json:"width_cm"`
	HeightCm        float64 `db:"height_cm" json:"height_cm"`
	FreeShipping    bool    `db:"free_shipping" json:"free_shipping"`
	ShippingCost    float64 `db:"shipping_cost" json:"shipping_cost"`
	EstimatedDays   int     `db:"estimated_days" json:"estimated_days"`

	// Set by the import job only; never part of the tabular artifact.
	CustomiseLink string `db:"customise_link" json:"customise_link,omitempty"`
}

// Row renders the record as text cells, one per entry in Columns.
func (f FlatProduct) Row() []string {
	return []string{
		strconv.Itoa(f.ID),
		f.UUID,
		f.Name,
		f.Brand,
		f.Category,
		f.Subcategory,
		f.Description,
		formatFloat(f.Price),
		f.Currency,
		strconv.Itoa(f.DiscountPercent),
		formatFloat(f.FinalPrice),
		formatFloat(f.Rating),
		strconv.Itoa(f.ReviewCount),
		strconv.Itoa(f.StockQuantity),
		strconv.FormatBool(f.InStock),
		f.SKU,
		f.Barcode,
		formatFloat(f.WeightKg),
		f.Tags,
		f.ImageURL,
		f.ThumbnailURL,
		f.CreatedAt,
		f.UpdatedAt,
		f.Status,
		strconv.FormatBool(f.Featured),
		formatFloat(f.LengthCm),
		formatFloat(f.WidthCm),
		formatFloat(f.HeightCm),
		strconv.FormatBool(f.FreeShipping),
		formatFloat(f.ShippingCost),
		strconv.Itoa(f.EstimatedDays),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
