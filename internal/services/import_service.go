package services

import (
	"fmt"
	"io"
	"os"
	"strings"

	"productgen/internal/dataset"
	"productgen/internal/domain"
	applog "productgen/internal/log"
	"productgen/internal/repos"
)

type ImportResult struct {
	Read    int `json:"read"`
	Written int `json:"written"`
	Skipped int `json:"skipped"`
	Chunks  int `json:"chunks"`
	Stored  int `json:"stored"` // rows in the table afterwards
}

// ImportService loads a tabular artifact into the products table in
// chunks of ChunkSize rows, one transaction per chunk.
type ImportService struct {
	Products   *repos.ProductRepo
	ChunkSize  int
	LinkSuffix string
}

func NewImportService(products *repos.ProductRepo, chunkSize int, linkSuffix string) *ImportService {
	if chunkSize <= 0 {
		chunkSize = 100
	}
	return &ImportService{Products: products, ChunkSize: chunkSize, LinkSuffix: linkSuffix}
}

func (s *ImportService) ImportFile(path string, categories []string) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()
	return s.Import(f, categories)
}

// Import keeps only rows whose category is listed (all rows when
// categories is empty). Chunks committed before a failure stay committed.
func (s *ImportService) Import(r io.Reader, categories []string) (ImportResult, error) {
	rows, err := dataset.ReadCSV(r)
	if err != nil {
		return ImportResult{}, err
	}
	keep := categoryFilter(categories)

	res := ImportResult{Read: len(rows)}
	chunk := make([]domain.FlatProduct, 0, s.ChunkSize)
	flush := func() error {
		if len(chunk) == 0 {
			return nil
		}
		if err := s.Products.InsertBatch(chunk); err != nil {
			return err
		}
		res.Written += len(chunk)
		res.Chunks++
		chunk = chunk[:0]
		return nil
	}

	for _, row := range rows {
		if !keep(row.Category) {
			res.Skipped++
			continue
		}
		if row.ImageURL != "" {
			row.CustomiseLink = row.ImageURL + s.LinkSuffix
		}
		chunk = append(chunk, row)
		if len(chunk) == s.ChunkSize {
			if err := flush(); err != nil {
				return res, fmt.Errorf("import chunk %d: %w", res.Chunks+1, err)
			}
		}
	}
	if err := flush(); err != nil {
		return res, fmt.Errorf("import chunk %d: %w", res.Chunks+1, err)
	}

	stored, err := s.Products.Count()
	if err != nil {
		return res, fmt.Errorf("count products: %w", err)
	}
	res.Stored = stored

	applog.Info(nil, "import.done", map[string]any{
		"read": res.Read, "written": res.Written, "skipped": res.Skipped, "stored": res.Stored, "categories": categories,
	})
	return res, nil
}

// Reset empties the products table before a fresh import.
func (s *ImportService) Reset() error {
	if err := s.Products.Truncate(); err != nil {
		return fmt.Errorf("truncate products: %w", err)
	}
	applog.Info(nil, "import.reset", nil)
	return nil
}

func categoryFilter(categories []string) func(string) bool {
	set := map[string]bool{}
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" {
			set[c] = true
		}
	}
	if len(set) == 0 {
		return func(string) bool { return true }
	}
	return func(c string) bool { return set[c] }
}
