package sqldb

import (
	"context"
	"database/sql"

	domshop "example.com/sector17-directory/internal/domain/shop"
)

type ShopRepository struct {
	db *sql.DB
}

func NewShopRepository(db *sql.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

func (r *ShopRepository) List(ctx context.Context) ([]domshop.Shop, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, category, COALESCE(description, ''), COALESCE(address, ''),
               COALESCE(contact, ''), COALESCE(image_url, '')
        FROM shops ORDER BY id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shops := []domshop.Shop{}
	for rows.Next() {
		var s domshop.Shop
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.Address, &s.Contact, &s.ImageURL); err != nil {
			return nil, err
		}
		shops = append(shops, s)
	}
	return shops, rows.Err()
}
