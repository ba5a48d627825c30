package repository

import (
	"context"

	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	List(ctx context.Context) ([]*entity.Supplier, error)
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id int64) error
}
