package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación de VehicleRepository sobre una sesión por operación.
type VehicleRepo struct {
	db *Provider
}

// NewVehicleRepository construye el adaptador.
func NewVehicleRepository(db *Provider) *VehicleRepo {
	return &VehicleRepo{db: db}
}

// List devuelve todos los vehículos ordenados por tipo y luego placa.
func (r *VehicleRepo) List(ctx context.Context) ([]*entity.Vehicle, error) {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	rows, err := sess.Conn().Query(ctx, `
		SELECT id, type, license_plate, capacity, status
		FROM vehicles ORDER BY type, license_plate`)
	if err != nil {
		return nil, classifyQueryError("list vehicles", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		if err := rows.Scan(&v.ID, &v.Type, &v.LicensePlate, &v.Capacity, &v.Status); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// GetByID obtiene un vehículo por ID. Devuelve (nil, nil) si no existe.
func (r *VehicleRepo) GetByID(ctx context.Context, id int64) (*entity.Vehicle, error) {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	var v entity.Vehicle
	err = sess.Conn().QueryRow(ctx, `
		SELECT id, type, license_plate, capacity, status FROM vehicles WHERE id = $1`, id).
		Scan(&v.ID, &v.Type, &v.LicensePlate, &v.Capacity, &v.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return &v, nil
}

// Create persiste un nuevo vehículo.
func (r *VehicleRepo) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `
		INSERT INTO vehicles (id, type, license_plate, capacity, status)
		VALUES ($1, $2, $3, $4, $5)`,
		vehicle.ID, vehicle.Type, vehicle.LicensePlate, vehicle.Capacity, vehicle.Status)
	if err != nil {
		return classifyQueryError("insert vehicle", err)
	}
	return nil
}

// Update actualiza un vehículo.
func (r *VehicleRepo) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `
		UPDATE vehicles SET type = $2, license_plate = $3, capacity = $4, status = $5
		WHERE id = $1`,
		vehicle.ID, vehicle.Type, vehicle.LicensePlate, vehicle.Capacity, vehicle.Status)
	if err != nil {
		return classifyQueryError("update vehicle", err)
	}
	return nil
}

// Delete elimina un vehículo por ID. Con despachos asociados devuelve domain.ErrConstraint.
func (r *VehicleRepo) Delete(ctx context.Context, id int64) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return classifyQueryError("delete vehicle", err)
	}
	return nil
}
