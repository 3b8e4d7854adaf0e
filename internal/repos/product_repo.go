package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"productgen/internal/domain"
)

var ErrNotFound = errors.New("not found")

const productCols = `
    uuid, id, name, brand, category, subcategory, description, price, currency,
    discount_percent, final_price, rating, review_count, stock_quantity, in_stock,
    sku, barcode, weight_kg, tags, image_url, thumbnail_url, created_at, updated_at,
    status, featured, length_cm, width_cm, height_cm, free_shipping, shipping_cost,
    estimated_days, customise_link`

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// InsertBatch writes one chunk in a single transaction. Rows whose uuid is
// already stored are replaced.
func (r *ProductRepo) InsertBatch(rows []domain.FlatProduct) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareNamed(`
		INSERT OR REPLACE INTO products(` + productCols + `)
		VALUES (
		  :uuid, :id, :name, :brand, :category, :subcategory, :description, :price, :currency,
		  :discount_percent, :final_price, :rating, :review_count, :stock_quantity, :in_stock,
		  :sku, :barcode, :weight_kg, :tags, :image_url, :thumbnail_url, :created_at, :updated_at,
		  :status, :featured, :length_cm, :width_cm, :height_cm, :free_shipping, :shipping_cost,
		  :estimated_days, :customise_link
		)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(row); err != nil {
			return fmt.Errorf("insert product %s: %w", row.UUID, err)
		}
	}
	return tx.Commit()
}

func (r *ProductRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products`)
	return n, err
}

func (r *ProductRepo) CountByCategory() ([]domain.CategoryCount, error) {
	var out []domain.CategoryCount
	err := r.db.Select(&out, `
  SELECT category, COUNT(*) AS n
  FROM products
  GROUP BY category
  ORDER BY category
`)
	return out, err
}

// ListByCategory pages through products ordered by generated id. An empty
// category lists everything.
func (r *ProductRepo) ListByCategory(category string, limit, offset int) ([]domain.FlatProduct, error) {
	where := `1 = 1`
	args := []any{}
	if category != "" {
		where = `category = ?`
		args = append(args, category)
	}
	args = append(args, limit, offset)

	out := []domain.FlatProduct{}
	err := r.db.Select(&out, `
  SELECT`+productCols+`
  FROM products
  WHERE `+where+`
  ORDER BY id, uuid
  LIMIT ? OFFSET ?
`, args...)
	return out, err
}

// Get looks a product up by uuid.
func (r *ProductRepo) Get(uuid string) (domain.FlatProduct, error) {
	var p domain.FlatProduct
	err := r.db.Get(&p, `SELECT`+productCols+` FROM products WHERE uuid = ?`, uuid)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	return p, err
}

func (r *ProductRepo) Truncate() error {
	_, err := r.db.Exec(`DELETE FROM products`)
	return err
}
