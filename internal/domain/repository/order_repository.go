package repository

import (
	"context"

	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
)

// OrderRepository vista de solo lectura sobre pedidos.
// GetDetail compone cabecera, líneas y despachos en una misma conexión;
// devuelve (nil, nil) si el pedido no existe.
type OrderRepository interface {
	List(ctx context.Context) ([]*entity.OrderSummary, error)
	GetDetail(ctx context.Context, orderID int64) (*entity.OrderView, error)
}
