package services

import (
	"productgen/internal/domain"
	"productgen/internal/repos"
)

// CatalogService reads imported products back out of storage.
type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

type Summary struct {
	Total      int                    `json:"total"`
	Categories []domain.CategoryCount `json:"categories"`
}

func (s *CatalogService) Summary() (Summary, error) {
	counts, err := s.Prods.CountByCategory()
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{Categories: counts}
	for _, c := range counts {
		sum.Total += c.Count
	}
	return sum, nil
}

func (s *CatalogService) ListProducts(category string, page, pageSize int) ([]domain.FlatProduct, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.Prods.ListByCategory(category, pageSize, offset)
}

func (s *CatalogService) GetProduct(uuid string) (domain.FlatProduct, error) {
	return s.Prods.Get(uuid)
}
