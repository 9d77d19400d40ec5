package shop

import "context"

type Repository interface {
	List(ctx context.Context) ([]Shop, error)
}
