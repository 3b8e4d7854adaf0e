package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"productgen/internal/dataset"
	"productgen/internal/domain"
	"productgen/internal/generator"
	applog "productgen/internal/log"
)

var (
	ErrInvalidCount  = errors.New("count must be a positive integer")
	ErrInvalidOutput = errors.New("output prefix must be a plain file name")
)

type DatasetRequest struct {
	Count  int    `json:"count"`
	Format string `json:"format"`
	Output string `json:"output"`
	Seed   uint64 `json:"seed,omitempty"`
}

type DatasetResult struct {
	Count   int             `json:"count"`
	Files   []string        `json:"files"`
	Sample  *domain.Product `json:"sample,omitempty"`
	Elapsed string          `json:"elapsed"`
}

// DatasetService runs generate-then-write. Dir is prepended to relative
// output prefixes.
type DatasetService struct {
	Dir     string
	Catalog domain.Catalog
	Now     func() time.Time
}

func NewDatasetService(dir string) *DatasetService {
	return &DatasetService{Dir: dir, Catalog: domain.DefaultCatalog(), Now: time.Now}
}

// Validate normalizes the request and reports the first problem.
func (s *DatasetService) Validate(req DatasetRequest) (DatasetRequest, domain.Format, error) {
	if req.Count <= 0 {
		return req, "", ErrInvalidCount
	}
	format, err := domain.ParseFormat(req.Format)
	if err != nil {
		return req, "", err
	}
	if req.Output == "" {
		req.Output = "products"
	}
	return req, format, nil
}

func (s *DatasetService) Generator(seed uint64) *generator.Generator {
	opts := []generator.Option{generator.WithCatalog(s.Catalog)}
	if s.Now != nil {
		opts = append(opts, generator.WithClock(s.Now))
	}
	return generator.NewSeeded(seed, opts...)
}

func (s *DatasetService) Generate(req DatasetRequest) (DatasetResult, error) {
	req, format, err := s.Validate(req)
	if err != nil {
		return DatasetResult{}, err
	}
	prefix := req.Output
	if !filepath.IsAbs(prefix) {
		prefix = filepath.Join(s.Dir, prefix)
	}

	start := time.Now()
	applog.Info(nil, "generate.start", map[string]any{"count": req.Count, "format": string(format)})
	products := s.Generator(req.Seed).Dataset(req.Count, func(done int) {
		applog.Info(nil, "generate.progress", map[string]any{"done": done, "total": req.Count})
	})

	files, err := dataset.Save(prefix, format, products)
	if err != nil {
		applog.Error(nil, "generate.save", err, map[string]any{"prefix": prefix})
		return DatasetResult{}, fmt.Errorf("save dataset: %w", err)
	}

	res := DatasetResult{Count: len(products), Files: files, Elapsed: time.Since(start).String()}
	if len(products) > 0 {
		res.Sample = &products[0]
	}
	applog.Info(nil, "generate.done", map[string]any{"count": res.Count, "files": files})
	return res, nil
}
