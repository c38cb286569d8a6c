package handler

import (
	"errors"
	"net/http"
	"testing"

	"myapp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestGetSubjects(t *testing.T) {
	env := newTestEnv(t)
	env.subjects.subjects = []models.CombinedSubject{
		{ID: 1, Label: "math", Value: "Matematyka", SourceDB: "mysql"},
		{ID: 999, Label: "hr", Value: "Dział HR", IsFromLoggedUser: boolPtr(true), SourceDB: "mongodb"},
	}

	rec := env.doRequest(t, http.MethodGet, "/subjects", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var subjects []models.CombinedSubject
	decodeBody(t, rec, &subjects)
	require.Len(t, subjects, 2)
	assert.Equal(t, "mysql", subjects[0].SourceDB)
	assert.Equal(t, "mongodb", subjects[1].SourceDB)
}

func TestGetSubjectsError(t *testing.T) {
	env := newTestEnv(t)
	env.subjects.err = errors.New("mongo down")

	rec := env.doRequest(t, http.MethodGet, "/subjects", nil, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetOrders(t *testing.T) {
	env := newTestEnv(t)
	env.orders.orders = []models.Order{
		{ID: 1, Customer: "Jan Kowalski", Total: 150.50, Date: "2024-01-15 10:30:00"},
	}

	rec := env.doRequest(t, http.MethodGet, "/orders", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	decodeBody(t, rec, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, "Jan Kowalski", orders[0].Customer)
}

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doRequest(t, http.MethodPost, "/orders", map[string]interface{}{
		"customer": "Jan Kowalski",
		"total":    150.50,
		"date":     "2024-01-15T10:30:00Z",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	decodeBody(t, rec, &order)
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, 150.50, order.Total)
}

func TestCreateOrderMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doRequest(t, http.MethodPost, "/orders", map[string]interface{}{
		"customer": "Jan Kowalski",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "customer and total are required", resp["error"])
}

func TestGetProducts(t *testing.T) {
	env := newTestEnv(t)
	env.products.products = []models.Product{
		{ID: 1, Name: "Laptop", Price: 3999.99},
	}

	rec := env.doRequest(t, http.MethodGet, "/products", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	decodeBody(t, rec, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "Laptop", products[0].Name)
}

func TestGetProductByID(t *testing.T) {
	env := newTestEnv(t)
	env.products.products = []models.Product{{ID: 2, Name: "Mysz", Price: 89.00}}

	rec := env.doRequest(t, http.MethodGet, "/products/2", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var product models.Product
	decodeBody(t, rec, &product)
	assert.Equal(t, "Mysz", product.Name)
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doRequest(t, http.MethodGet, "/products/5", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Product not found", resp["error"])
}

func TestGetProductBadID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doRequest(t, http.MethodGet, "/products/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Invalid product ID format", resp["error"])
}

func TestHome(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doRequest(t, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Backend is running!", rec.Body.String())
}
