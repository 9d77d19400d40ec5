package sqldb

import (
	"context"
	"database/sql"

	domproduct "example.com/sector17-directory/internal/domain/product"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns every product with the name of the shop that stocks it.
// A product whose shop row is missing is kept with an empty shop name.
func (r *ProductRepository) List(ctx context.Context) ([]domproduct.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT p.id, p.name, COALESCE(p.description, ''), p.price, p.category,
               COALESCE(p.image_url, ''), p.shop_id, COALESCE(s.name, '')
        FROM products p
        LEFT JOIN shops s ON s.id = p.shop_id
        ORDER BY p.id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domproduct.Product{}
	for rows.Next() {
		var p domproduct.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURL, &p.ShopID, &p.ShopName); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
