package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/checkout"
	"github.com/dmitrymomot/storefront/integration/api"
)

func TestClient_SubmitSale(t *testing.T) {
	t.Parallel()

	t.Run("sends only product ids and quantities", func(t *testing.T) {
		t.Parallel()

		var gotBody map[string]any
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/ventas/", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Write([]byte(`{"id":42,"total":"21.00","fecha_venta":"2026-08-29T10:00:00Z"}`))
		}))

		items := []checkout.LineItem{
			{ProductID: 1, Quantity: 1},
			{ProductID: 2, Quantity: 2},
		}
		confirmation, err := client.SubmitSale(context.Background(), items, "leave at the door")
		require.NoError(t, err)

		assert.Equal(t, int64(42), confirmation.ID)
		assert.True(t, confirmation.Total.Equal(decimal.RequireFromString("21.00")))

		assert.Equal(t, "leave at the door", gotBody["observaciones"])
		details, ok := gotBody["detalles"].([]any)
		require.True(t, ok)
		require.Len(t, details, 2)

		first, ok := details[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(1), first["producto"])
		assert.Equal(t, float64(1), first["cantidad"])
		assert.NotContains(t, first, "precio", "prices must never be transmitted")
	})

	t.Run("submission failure surfaces the backend detail", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":"Stock insuficiente"}`))
		}))

		_, err := client.SubmitSale(context.Background(), []checkout.LineItem{{ProductID: 1, Quantity: 1}}, "")

		var apiErr *api.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Stock insuficiente", apiErr.Detail)
	})
}

func TestClient_MyPurchases(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/ventas/cliente/mis_compras/", r.URL.Path)
		w.Write([]byte(`[
			{
				"id": 7,
				"estado": "completada",
				"total": "15.50",
				"cantidad_total": 2,
				"fecha_venta": "2026-08-28T18:30:00Z",
				"detalles": [
					{"producto_nombre": "Coffee", "cantidad": 2, "precio_unitario": "7.75", "subtotal": "15.50"}
				]
			}
		]`))
	}))

	sales, err := client.MyPurchases(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 1)

	assert.Equal(t, int64(7), sales[0].ID)
	assert.Equal(t, "completada", sales[0].Status)
	assert.True(t, sales[0].Total.Equal(decimal.RequireFromString("15.50")))
	require.Len(t, sales[0].Details, 1)
	assert.Equal(t, "Coffee", sales[0].Details[0].ProductName)
	assert.Equal(t, 2, sales[0].Details[0].Quantity)
}

func TestClient_ListSalesPage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/ventas/admin/", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("page_size"))
		w.Write([]byte(`{
			"count": 2,
			"next": null,
			"previous": null,
			"results": [
				{"id": 1, "cliente_nombre": "Ana García", "estado": "COMPLETADA", "total": "21.00", "cantidad_total": 3, "fecha_venta": "2026-08-29T10:00:00Z"},
				{"id": 2, "cliente_nombre": "Bob Pérez", "estado": "PENDIENTE", "total": "5.50", "cantidad_total": 1, "fecha_venta": "2026-08-29T11:00:00Z"}
			]
		}`))
	}))

	page, err := client.ListSalesPage(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Count)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "Ana García", page.Results[0].ClientName)
	assert.Equal(t, "PENDIENTE", page.Results[1].Status)
	assert.True(t, page.Results[0].Total.Equal(decimal.RequireFromString("21.00")))
}

func TestClient_GetSalesSummary(t *testing.T) {
	t.Parallel()

	t.Run("decodes the aggregate figures", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/ventas/cliente/resumen/", r.URL.Path)
			w.Write([]byte(`{
				"total_ventas": 4,
				"monto_total": "62.00",
				"promedio_venta": "15.50",
				"ultima_venta": "2026-08-29T10:00:00Z",
				"observaciones": "sin incidencias"
			}`))
		}))

		summary, err := client.GetSalesSummary(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 4, summary.TotalSales)
		assert.True(t, summary.TotalAmount.Equal(decimal.RequireFromString("62.00")))
		assert.True(t, summary.AverageSale.Equal(decimal.RequireFromString("15.50")))
		require.NotNil(t, summary.LastSaleAt)
		assert.Equal(t, "sin incidencias", summary.Notes)
	})

	t.Run("no recorded sales leaves the last sale unset", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"total_ventas": 0, "ultima_venta": null}`))
		}))

		summary, err := client.GetSalesSummary(context.Background())
		require.NoError(t, err)

		assert.Zero(t, summary.TotalSales)
		assert.Nil(t, summary.LastSaleAt)
	})
}

func TestClient_CancelSale(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.CancelSale(context.Background(), 7))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/ventas/7/", gotPath)
}
