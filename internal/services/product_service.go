// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/product-api/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

const (
	listProductsSQL  = "SELECT " + models.ProductColumns + " FROM products"
	getProductSQL    = "SELECT " + models.ProductColumns + " FROM products WHERE id = ?"
	insertProductSQL = "INSERT INTO products (name, description, price, category) VALUES (?, ?, ?, ?)"
	updateProductSQL = "UPDATE products SET name = ?, description = ?, price = ?, category = ? WHERE id = ?"
	deleteProductSQL = "DELETE FROM products WHERE id = ?"
)

// ProductService is the data-access gateway for the products table. Every
// method runs exactly one parameterized statement on a pooled connection.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{
		db: db,
	}
}

// ListProducts returns every row in store order. An empty table yields an
// empty, non-nil slice.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.WithContext(ctx).Raw(listProductsSQL).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		product, err := models.ScanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, nil
}

// GetProduct returns ErrProductNotFound when no row has the given id.
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	rows, err := s.db.WithContext(ctx).Raw(getProductSQL, id).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to fetch product: %w", err)
		}
		return nil, ErrProductNotFound
	}

	product, err := models.ScanProduct(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	return &product, nil
}

// CreateProduct inserts every field except the id and returns the number of
// rows affected. The store-assigned id is not read back.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) (int64, error) {
	result := s.db.WithContext(ctx).Exec(insertProductSQL,
		product.Name, product.Description, product.Price, product.Category)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to create product: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// UpdateProduct overwrites the full row keyed by product.ID. A missing id
// affects zero rows and is not an error.
func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product) (int64, error) {
	result := s.db.WithContext(ctx).Exec(updateProductSQL,
		product.Name, product.Description, product.Price, product.Category, product.ID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update product: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteProduct removes the row keyed by id. A missing id affects zero rows
// and is not an error.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	result := s.db.WithContext(ctx).Exec(deleteProductSQL, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete product: %w", result.Error)
	}
	return result.RowsAffected, nil
}
