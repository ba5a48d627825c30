package repository

import (
	"context"

	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
)

// VehicleRepository define el puerto de persistencia para Vehicle.
type VehicleRepository interface {
	List(ctx context.Context) ([]*entity.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*entity.Vehicle, error)
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id int64) error
}
