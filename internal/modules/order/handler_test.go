package order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, f *fixture) *httptest.Server {
	t.Helper()
	router := chi.NewRouter()
	NewHandler(f.svc).RegisterRoutes(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postOrder(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/v1/orders", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCreateOrderEndpoint_Created(t *testing.T) {
	f := newFixture()
	cust := f.seedCustomer(t)
	prod := f.seedProduct(t, "Product A", 5.00, 10)
	srv := newTestServer(t, f)

	body := fmt.Sprintf(`{"customer_id":%q,"products":[{"id":%q,"quantity":3}]}`,
		cust.ID, prod.ID)
	resp := postOrder(t, srv, body)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var o Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&o))
	require.Len(t, o.Items, 1)
	assert.Equal(t, 3, o.Items[0].Quantity)
	assert.Equal(t, 5.00, o.Items[0].Price)
}

func TestCreateOrderEndpoint_StatusMapping(t *testing.T) {
	f := newFixture()
	cust := f.seedCustomer(t)
	prod := f.seedProduct(t, "Product A", 5.00, 2)
	srv := newTestServer(t, f)

	tests := []struct {
		name string
		body string
		want int
	}{
		{
			name: "unknown customer",
			body: fmt.Sprintf(`{"customer_id":%q,"products":[{"id":%q,"quantity":1}]}`,
				uuid.NewString(), prod.ID),
			want: http.StatusNotFound,
		},
		{
			name: "unknown product",
			body: fmt.Sprintf(`{"customer_id":%q,"products":[{"id":%q,"quantity":1},{"id":%q,"quantity":1}]}`,
				cust.ID, prod.ID, uuid.NewString()),
			want: http.StatusNotFound,
		},
		{
			name: "insufficient stock",
			body: fmt.Sprintf(`{"customer_id":%q,"products":[{"id":%q,"quantity":5}]}`,
				cust.ID, prod.ID),
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "non-positive quantity",
			body: fmt.Sprintf(`{"customer_id":%q,"products":[{"id":%q,"quantity":0}]}`,
				cust.ID, prod.ID),
			want: http.StatusBadRequest,
		},
		{
			name: "malformed payload",
			body: `{"customer_id":`,
			want: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := postOrder(t, srv, tc.body)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}

	// None of the failures above may have touched stock.
	assert.Equal(t, 2, f.stock(t, prod.ID))
}

func TestGetOrderEndpoint(t *testing.T) {
	f := newFixture()
	cust := f.seedCustomer(t)
	prod := f.seedProduct(t, "Product A", 5.00, 10)
	srv := newTestServer(t, f)

	o, err := f.svc.CreateOrder(context.Background(), CreateOrderRequest{
		CustomerID: cust.ID.String(),
		Products:   []ProductRequest{{ID: prod.ID.String(), Quantity: 1}},
	})
	require.NoError(t, err)

	resp, err := http.Get(srv.URL + "/api/v1/orders/" + o.ID.String())
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/v1/orders/" + uuid.NewString())
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
