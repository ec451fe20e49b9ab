package catalog

import (
	"context"
	"net/http"
	"strings"

	"storefront-api/internal/common"
)

const cacheKeyAll = "catalog:products:all"

// Service answers catalogue queries. Searching and slug lookup always run
// against the freshly loaded list; only the unfiltered list itself is
// cached.
type Service struct {
	Loader Loader
	Cache  *Cache
}

// List returns all products, optionally filtered by a case-insensitive
// substring match on the product name.
func (s *Service) List(ctx context.Context, search string) ([]Product, error) {
	products, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return products, nil
	}
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetBySlug returns the product with the given slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Product{}, &common.AppError{Code: common.CodeBadRequest, Message: "slug is required", HTTPStatus: http.StatusBadRequest}
	}
	products, err := s.all(ctx)
	if err != nil {
		return Product{}, err
	}
	for _, p := range products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Product{}, &common.AppError{Code: common.CodeNotFound, Message: "product not found", HTTPStatus: http.StatusNotFound}
}

func (s *Service) all(ctx context.Context) ([]Product, error) {
	var cached []Product
	if hit, err := s.Cache.GetJSON(ctx, cacheKeyAll, &cached); err == nil && hit {
		return cached, nil
	}
	products, err := s.Loader.Load(ctx)
	if err != nil {
		return nil, &common.AppError{Code: common.CodeInternal, Message: "failed to load catalogue", HTTPStatus: http.StatusInternalServerError, Err: err}
	}
	_ = s.Cache.SetJSON(ctx, cacheKeyAll, products)
	return products, nil
}
