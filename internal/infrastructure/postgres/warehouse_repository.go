package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación de WarehouseRepository sobre una sesión por operación.
type WarehouseRepo struct {
	db *Provider
}

// NewWarehouseRepository construye el adaptador.
func NewWarehouseRepository(db *Provider) *WarehouseRepo {
	return &WarehouseRepo{db: db}
}

// List devuelve todas las bodegas ordenadas por nombre.
func (r *WarehouseRepo) List(ctx context.Context) ([]*entity.Warehouse, error) {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	rows, err := sess.Conn().Query(ctx, `
		SELECT id, name, location, capacity FROM warehouses ORDER BY name`)
	if err != nil {
		return nil, classifyQueryError("list warehouses", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Location, &w.Capacity); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// GetByID obtiene una bodega por ID. Devuelve (nil, nil) si no existe.
func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	var w entity.Warehouse
	err = sess.Conn().QueryRow(ctx, `
		SELECT id, name, location, capacity FROM warehouses WHERE id = $1`, id).
		Scan(&w.ID, &w.Name, &w.Location, &w.Capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `
		INSERT INTO warehouses (id, name, location, capacity) VALUES ($1, $2, $3, $4)`,
		warehouse.ID, warehouse.Name, warehouse.Location, warehouse.Capacity)
	if err != nil {
		return classifyQueryError("insert warehouse", err)
	}
	return nil
}

// Update actualiza una bodega.
func (r *WarehouseRepo) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `
		UPDATE warehouses SET name = $2, location = $3, capacity = $4 WHERE id = $1`,
		warehouse.ID, warehouse.Name, warehouse.Location, warehouse.Capacity)
	if err != nil {
		return classifyQueryError("update warehouse", err)
	}
	return nil
}

// Delete elimina una bodega por ID. Con inventario registrado devuelve domain.ErrConstraint.
func (r *WarehouseRepo) Delete(ctx context.Context, id int64) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return classifyQueryError("delete warehouse", err)
	}
	return nil
}
