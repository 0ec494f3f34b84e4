// internal/repository/product_repository.go
package repository

import (
	"github.com/pressquest/pressquest-backend/internal/model"
	"github.com/pressquest/pressquest-backend/internal/store"
)

func productsKey(questID string) string {
	return "quest_products_" + questID
}

type ProductRepositoryInterface interface {
	List(questID string) []model.ProductOutput
	Get(questID, productID string) (*model.ProductOutput, error)
	Save(questID string, p *model.ProductOutput) error
}

// ProductRepository stores each quest's products as an ordered list.
type ProductRepository struct {
	Store store.Store
}

func (r *ProductRepository) List(questID string) []model.ProductOutput {
	products := []model.ProductOutput{}
	store.GetJSON(r.Store, productsKey(questID), &products)
	return products
}

// Get returns nil, nil when the product does not exist.
func (r *ProductRepository) Get(questID, productID string) (*model.ProductOutput, error) {
	for _, p := range r.List(questID) {
		if p.ID == productID {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

// Save upserts by product id: replace in place when the id exists, append
// otherwise.
func (r *ProductRepository) Save(questID string, p *model.ProductOutput) error {
	products := r.List(questID)
	replaced := false
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = *p
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, *p)
	}
	return store.SetJSON(r.Store, productsKey(questID), products)
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)
