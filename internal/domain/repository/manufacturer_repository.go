package repository

import (
	"context"

	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
)

// ManufacturerRepository define el puerto de persistencia para Manufacturer.
// ListOptions alimenta el select de fabricante en los formularios de producto.
type ManufacturerRepository interface {
	List(ctx context.Context) ([]*entity.Manufacturer, error)
	GetByID(ctx context.Context, id int64) (*entity.Manufacturer, error)
	Create(ctx context.Context, manufacturer *entity.Manufacturer) error
	Update(ctx context.Context, manufacturer *entity.Manufacturer) error
	Delete(ctx context.Context, id int64) error
	ListOptions(ctx context.Context) ([]entity.ManufacturerOption, error)
}
