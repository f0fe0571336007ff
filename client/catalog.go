package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/filtering"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/mockdata"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/google/uuid"
)

// Products fetches one page of the listing narrowed by state.
func (c *Client) Products(ctx context.Context, state filtering.State, q filtering.Query, page, limit int) (Result[[]models.StorefrontProductResponse], error) {
	const path = "/store/products"
	res, err := do[[]models.StorefrontProductResponse](ctx, c, http.MethodGet, path,
		pageQuery(filtering.Values(state, q), page, limit), nil)
	if err == nil || !c.shouldFallback(ctx, err) {
		return res, err
	}

	c.logFallback(path, err)
	products, mockErr := mockdata.Products()
	if mockErr != nil {
		return res, fmt.Errorf("%w (demo data: %v)", err, mockErr)
	}
	filtered := filtering.Apply(filtering.ScopeToCategory(products, q.FixedCategory), state, q)
	page, limit = normalizePage(page, limit)
	return Result[[]models.StorefrontProductResponse]{
		Data:     pageOf(filtered, page, limit),
		Meta:     models.NewPagination(page, limit, len(filtered)),
		Fallback: true,
	}, nil
}

// Facets fetches the filter sidebar for category ("" for all products).
func (c *Client) Facets(ctx context.Context, category string) (Result[filtering.Summary], error) {
	const path = "/store/products/facets"
	query := url.Values{}
	if category != "" {
		query.Set(filtering.ParamCategory, category)
	}
	res, err := do[filtering.Summary](ctx, c, http.MethodGet, path, query, nil)
	if err == nil || !c.shouldFallback(ctx, err) {
		return res, err
	}

	c.logFallback(path, err)
	products, mockErr := mockdata.Products()
	if mockErr != nil {
		return res, fmt.Errorf("%w (demo data: %v)", err, mockErr)
	}
	return Result[filtering.Summary]{
		Data:     filtering.Summarize(filtering.ScopeToCategory(products, category)),
		Fallback: true,
	}, nil
}

func (c *Client) Product(ctx context.Context, id uuid.UUID) (Result[models.Product], error) {
	path := "/store/products/" + id.String()
	res, err := do[models.Product](ctx, c, http.MethodGet, path, nil, nil)
	if err == nil || !c.shouldFallback(ctx, err) {
		return res, err
	}

	c.logFallback(path, err)
	products, mockErr := mockdata.Products()
	if mockErr != nil {
		return res, fmt.Errorf("%w (demo data: %v)", err, mockErr)
	}
	for _, p := range products {
		if p.ID == id {
			return Result[models.Product]{Data: p, Fallback: true}, nil
		}
	}
	return res, err
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}
	return page, limit
}

func pageOf(products []models.Product, page, limit int) []models.StorefrontProductResponse {
	out := make([]models.StorefrontProductResponse, 0, limit)
	if page > (len(products)+limit-1)/limit {
		return out
	}
	start := (page - 1) * limit
	for _, p := range products[start:min(start+limit, len(products))] {
		out = append(out, models.NewStorefrontProductResponse(p))
	}
	return out
}
