package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one connection: ":memory:" databases are per-connection, and sqlite
	// serializes writers anyway
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS products(
  uuid TEXT PRIMARY KEY,
  id INTEGER NOT NULL,
  name TEXT NOT NULL,
  brand TEXT NOT NULL,
  category TEXT NOT NULL,
  subcategory TEXT,
  description TEXT,
  price NUMERIC NOT NULL CHECK (price >= 0),
  currency TEXT NOT NULL DEFAULT 'USD',
  discount_percent INTEGER NOT NULL DEFAULT 0,
  final_price NUMERIC NOT NULL,
  rating NUMERIC,
  review_count INTEGER NOT NULL DEFAULT 0,
  stock_quantity INTEGER NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0),
  in_stock INTEGER NOT NULL,
  sku TEXT,
  barcode TEXT,
  weight_kg NUMERIC,
  tags TEXT,
  image_url TEXT,
  thumbnail_url TEXT,
  created_at TEXT,
  updated_at TEXT,
  status TEXT NOT NULL CHECK (status IN ('active','inactive','draft')),
  featured INTEGER NOT NULL DEFAULT 0,
  length_cm NUMERIC,
  width_cm NUMERIC,
  height_cm NUMERIC,
  free_shipping INTEGER NOT NULL DEFAULT 0,
  shipping_cost NUMERIC NOT NULL DEFAULT 0,
  estimated_days INTEGER,
  customise_link TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_id         ON products(id);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}
