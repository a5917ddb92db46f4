package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/storefront/core/cart"
)

// Product is one catalog entry as reported by the backend.
type Product struct {
	ID          int64           `json:"id"`
	Code        string          `json:"codigo"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Category    string          `json:"categoria"`
	Price       decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"imagen_url"`
	Active      bool            `json:"activo"`
}

// CatalogItem converts the product to the cart's minimal shape. The cart
// captures name and price at add time from this snapshot.
func (p Product) CatalogItem() cart.CatalogItem {
	return cart.CatalogItem{ProductID: p.ID, Name: p.Name, UnitPrice: p.Price}
}

// ProductInput is the write shape for product create/update (admin only).
type ProductInput struct {
	Code        string          `json:"codigo"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Category    string          `json:"categoria"`
	Price       decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"imagen_url,omitempty"`
	Active      bool            `json:"activo"`
}

// ProductPage is one page of a paginated product listing.
type ProductPage struct {
	Count    int       `json:"count"`
	Next     string    `json:"next"`
	Previous string    `json:"previous"`
	Results  []Product `json:"results"`
}

// ListProducts returns the full catalog without pagination.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/api/productos/", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListProductsPage returns one page of the catalog.
func (c *Client) ListProductsPage(ctx context.Context, page, pageSize int) (ProductPage, error) {
	var result ProductPage
	path := fmt.Sprintf("/api/productos/?page=%d&page_size=%d", page, pageSize)
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return ProductPage{}, err
	}
	return result, nil
}

// GetProduct returns one product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/productos/%d/", id), nil, &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

// CreateProduct creates a catalog entry. Requires admin permissions.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPost, "/api/productos/", input, &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

// UpdateProduct replaces a catalog entry. Requires admin permissions.
func (c *Client) UpdateProduct(ctx context.Context, id int64, input ProductInput) (Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/productos/%d/", id), input, &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

// DeleteProduct removes a catalog entry. Requires admin permissions.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/productos/%d/", id), nil, nil)
}
