package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/storefront/core/checkout"
)

// Sale is one submitted sale as reported by the backend.
type Sale struct {
	ID            int64           `json:"id"`
	ClientName    string          `json:"cliente_nombre"`
	Status        string          `json:"estado"`
	Total         decimal.Decimal `json:"total"`
	TotalQuantity int             `json:"cantidad_total"`
	SoldAt        time.Time       `json:"fecha_venta"`
	Notes         string          `json:"observaciones"`
	Details       []SaleLine      `json:"detalles"`
}

// SaleLine is one position within a sale.
type SaleLine struct {
	ProductName        string          `json:"producto_nombre"`
	ProductDescription string          `json:"producto_descripcion"`
	Quantity           int             `json:"cantidad"`
	UnitPrice          decimal.Decimal `json:"precio_unitario"`
	Subtotal           decimal.Decimal `json:"subtotal"`
}

type saleDetailRequest struct {
	Product  int64 `json:"producto"`
	Quantity int   `json:"cantidad"`
}

type saleRequest struct {
	Details []saleDetailRequest `json:"detalles"`
	Notes   string              `json:"observaciones"`
}

type saleResponse struct {
	ID     int64           `json:"id"`
	Total  decimal.Decimal `json:"total"`
	SoldAt time.Time       `json:"fecha_venta"`
}

// SubmitSale submits a sale with the given line items and notes.
// Implements checkout.SalesAPI. Prices are never transmitted; the backend
// computes the authoritative total.
func (c *Client) SubmitSale(ctx context.Context, items []checkout.LineItem, notes string) (checkout.Confirmation, error) {
	details := make([]saleDetailRequest, 0, len(items))
	for _, item := range items {
		details = append(details, saleDetailRequest{Product: item.ProductID, Quantity: item.Quantity})
	}

	var resp saleResponse
	if err := c.do(ctx, http.MethodPost, "/api/ventas/", saleRequest{Details: details, Notes: notes}, &resp); err != nil {
		return checkout.Confirmation{}, err
	}

	return checkout.Confirmation{ID: resp.ID, Total: resp.Total, CreatedAt: resp.SoldAt}, nil
}

// MyPurchases returns the authenticated client's purchase history.
func (c *Client) MyPurchases(ctx context.Context) ([]Sale, error) {
	var sales []Sale
	if err := c.do(ctx, http.MethodGet, "/api/ventas/cliente/mis_compras/", nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// SalePage is one page of a paginated sales listing.
type SalePage struct {
	Count    int    `json:"count"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
	Results  []Sale `json:"results"`
}

// SalesSummary aggregates sales figures for the management dashboard.
type SalesSummary struct {
	TotalSales  int             `json:"total_ventas"`
	TotalAmount decimal.Decimal `json:"monto_total"`
	AverageSale decimal.Decimal `json:"promedio_venta"`
	LastSaleAt  *time.Time      `json:"ultima_venta"`
	Notes       string          `json:"observaciones"`
}

// ListSalesPage returns one page of all clients' sales. Requires admin
// permissions.
func (c *Client) ListSalesPage(ctx context.Context, page, pageSize int) (SalePage, error) {
	var result SalePage
	path := fmt.Sprintf("/api/ventas/admin/?page=%d&page_size=%d", page, pageSize)
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return SalePage{}, err
	}
	return result, nil
}

// GetSalesSummary returns aggregate sales figures. LastSaleAt is nil when no
// sale has been recorded yet.
func (c *Client) GetSalesSummary(ctx context.Context) (SalesSummary, error) {
	var summary SalesSummary
	if err := c.do(ctx, http.MethodGet, "/api/ventas/cliente/resumen/", nil, &summary); err != nil {
		return SalesSummary{}, err
	}
	return summary, nil
}

// GetSale returns one sale by id.
func (c *Client) GetSale(ctx context.Context, id int64) (Sale, error) {
	var sale Sale
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/ventas/%d/", id), nil, &sale); err != nil {
		return Sale{}, err
	}
	return sale, nil
}

// CancelSale cancels a sale by id.
func (c *Client) CancelSale(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/ventas/%d/", id), nil, nil)
}
