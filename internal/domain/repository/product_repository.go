package repository

import (
	"context"

	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
// List y GetByID incluyen el nombre del fabricante vía LEFT JOIN (nil si no tiene).
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
}
