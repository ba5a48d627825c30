package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

var _ repository.ManufacturerRepository = (*ManufacturerRepo)(nil)

// ManufacturerRepo implementación de ManufacturerRepository sobre una sesión por operación.
type ManufacturerRepo struct {
	db *Provider
}

// NewManufacturerRepository construye el adaptador.
func NewManufacturerRepository(db *Provider) *ManufacturerRepo {
	return &ManufacturerRepo{db: db}
}

// List devuelve todos los fabricantes ordenados por nombre.
func (r *ManufacturerRepo) List(ctx context.Context) ([]*entity.Manufacturer, error) {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	rows, err := sess.Conn().Query(ctx, `
		SELECT id, name, contact, address FROM manufacturers ORDER BY name`)
	if err != nil {
		return nil, classifyQueryError("list manufacturers", err)
	}
	defer rows.Close()
	var list []*entity.Manufacturer
	for rows.Next() {
		var m entity.Manufacturer
		if err := rows.Scan(&m.ID, &m.Name, &m.Contact, &m.Address); err != nil {
			return nil, fmt.Errorf("scan manufacturer: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// GetByID obtiene un fabricante por ID. Devuelve (nil, nil) si no existe.
func (r *ManufacturerRepo) GetByID(ctx context.Context, id int64) (*entity.Manufacturer, error) {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	var m entity.Manufacturer
	err = sess.Conn().QueryRow(ctx, `
		SELECT id, name, contact, address FROM manufacturers WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.Contact, &m.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manufacturer: %w", err)
	}
	return &m, nil
}

// Create persiste un nuevo fabricante.
func (r *ManufacturerRepo) Create(ctx context.Context, manufacturer *entity.Manufacturer) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `
		INSERT INTO manufacturers (id, name, contact, address) VALUES ($1, $2, $3, $4)`,
		manufacturer.ID, manufacturer.Name, manufacturer.Contact, manufacturer.Address)
	if err != nil {
		return classifyQueryError("insert manufacturer", err)
	}
	return nil
}

// Update actualiza un fabricante.
func (r *ManufacturerRepo) Update(ctx context.Context, manufacturer *entity.Manufacturer) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `
		UPDATE manufacturers SET name = $2, contact = $3, address = $4 WHERE id = $1`,
		manufacturer.ID, manufacturer.Name, manufacturer.Contact, manufacturer.Address)
	if err != nil {
		return classifyQueryError("update manufacturer", err)
	}
	return nil
}

// Delete elimina un fabricante por ID. Con productos o proveedores asociados
// devuelve domain.ErrConstraint.
func (r *ManufacturerRepo) Delete(ctx context.Context, id int64) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `DELETE FROM manufacturers WHERE id = $1`, id)
	if err != nil {
		return classifyQueryError("delete manufacturer", err)
	}
	return nil
}

// ListOptions devuelve pares ID/nombre para el select de los formularios de producto.
func (r *ManufacturerRepo) ListOptions(ctx context.Context) ([]entity.ManufacturerOption, error) {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	rows, err := sess.Conn().Query(ctx, `SELECT id, name FROM manufacturers ORDER BY name`)
	if err != nil {
		return nil, classifyQueryError("list manufacturer options", err)
	}
	defer rows.Close()
	var opts []entity.ManufacturerOption
	for rows.Next() {
		var o entity.ManufacturerOption
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, fmt.Errorf("scan manufacturer option: %w", err)
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}
