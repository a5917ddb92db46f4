package api

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// ClientRecord is one registered client as reported by the backend, including
// the purchase counter the management views show. Named ClientRecord rather
// than Client to keep the API client type's name free.
type ClientRecord struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Phone          string    `json:"telefono"`
	Address        string    `json:"direccion"`
	Document       string    `json:"documento"`
	RegisteredAt   time.Time `json:"created_at"`
	TotalPurchases int       `json:"total_compras"`
}

// ClientPage is one page of a paginated client listing.
type ClientPage struct {
	Count    int            `json:"count"`
	Next     string         `json:"next"`
	Previous string         `json:"previous"`
	Results  []ClientRecord `json:"results"`
}

// ListClientsPage returns one page of registered clients. Requires admin
// permissions.
func (c *Client) ListClientsPage(ctx context.Context, page, pageSize int) (ClientPage, error) {
	var result ClientPage
	path := fmt.Sprintf("/api/clientes/?page=%d&page_size=%d", page, pageSize)
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return ClientPage{}, err
	}
	return result, nil
}
