// internal/controller/product_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pressquest/pressquest-backend/internal/service"
)

type ProductController struct {
	ProductService *service.ProductService
}

func (c *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	questID := chi.URLParam(r, "id")

	var body service.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	product, err := c.ProductService.CreateProduct(questID, body)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	questID := chi.URLParam(r, "id")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data": c.ProductService.ListProducts(questID),
	})
}

// ApplyEdit runs one edit instruction against a product and persists the
// result.
func (c *ProductController) ApplyEdit(w http.ResponseWriter, r *http.Request) {
	questID := chi.URLParam(r, "id")
	productID := chi.URLParam(r, "productID")

	var body struct {
		Instruction string `json:"instruction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	product, err := c.ProductService.GetProduct(questID, productID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	updated, summary, err := c.ProductService.ApplyEditInstruction(product, body.Instruction)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := c.ProductService.SaveProduct(questID, updated); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"product": updated,
		"summary": summary,
	})
}

func (c *ProductController) SetStatus(w http.ResponseWriter, r *http.Request) {
	questID := chi.URLParam(r, "id")
	productID := chi.URLParam(r, "productID")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	product, err := c.ProductService.SetStatus(questID, productID, body.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if product == nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}
