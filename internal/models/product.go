// internal/models/product.go
package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

func init() {
	// Process-wide: every decimal.Decimal marshalled by any package that
	// imports models is written as a bare JSON number.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product mirrors one row of the products table:
//
//	CREATE TABLE products (
//	    id          BIGSERIAL PRIMARY KEY,
//	    name        TEXT,
//	    description TEXT,
//	    price       DECIMAL(18,2),
//	    category    TEXT
//	);
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"` // JSON number via init above
	Category    string          `json:"category"`
}

// ProductColumns is the column order ScanProduct expects.
const ProductColumns = "id, name, description, price, category"

// RowScanner is satisfied by *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanProduct maps one row selected with ProductColumns onto a Product.
// NULL text columns read as empty strings.
func ScanProduct(row RowScanner) (Product, error) {
	var (
		p           Product
		name        sql.NullString
		description sql.NullString
		category    sql.NullString
		price       decimal.NullDecimal
	)

	if err := row.Scan(&p.ID, &name, &description, &price, &category); err != nil {
		return Product{}, err
	}

	p.Name = name.String
	p.Description = description.String
	p.Category = category.String
	if price.Valid {
		p.Price = price.Decimal
	}

	return p, nil
}
