package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/quickserve/internal/client/client"
	"github.com/dmitrijs2005/quickserve/internal/client/models"
)

const (
	defaultSearchSize  = 10
	defaultReviewsSize = 10
	defaultSortBy      = "rating"
)

// PublicAPI needs no authentication; the adapter still sends a token if one
// is stored.
type PublicAPI struct {
	c client.Doer
}

func NewPublicAPI(c client.Doer) *PublicAPI {
	return &PublicAPI{c: c}
}

func (a *PublicAPI) GetCategories(ctx context.Context) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/public/categories"})
}

func (a *PublicAPI) SearchProviders(ctx context.Context, s models.ProviderSearch) (*client.Response, error) {
	sortBy := s.SortBy
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	q := query{}.
		str("category", s.Category).
		str("city", s.City).
		str("search", s.Search).
		float("minPrice", s.MinPrice).
		float("maxPrice", s.MaxPrice).
		float("minRating", s.MinRating).
		str("sortBy", sortBy).
		page(s.Page, s.Size, defaultSearchSize)

	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: "/public/providers", Query: q.values()})
}

func (a *PublicAPI) GetProviderDetails(ctx context.Context, id int64) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{Method: http.MethodGet, Path: idPath("/public/providers/%d", id)})
}

func (a *PublicAPI) GetProviderReviews(ctx context.Context, id int64, page, size int) (*client.Response, error) {
	return a.c.Do(ctx, &client.Request{
		Method: http.MethodGet,
		Path:   idPath("/public/providers/%d/reviews", id),
		Query:  query{}.page(page, size, defaultReviewsSize).values(),
	})
}
