package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre una sesión por operación.
type CustomerRepo struct {
	db *Provider
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(db *Provider) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// List devuelve todos los clientes ordenados por nombre. Cero filas es un resultado válido.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	rows, err := sess.Conn().Query(ctx, `
		SELECT id, name, address, contact FROM customers ORDER BY name`)
	if err != nil {
		return nil, classifyQueryError("list customers", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Contact); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.db.Release(sess)

	var c entity.Customer
	err = sess.Conn().QueryRow(ctx, `
		SELECT id, name, address, contact FROM customers WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Address, &c.Contact)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Create persiste un nuevo cliente con el ID elegido por el operador.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `
		INSERT INTO customers (id, name, address, contact) VALUES ($1, $2, $3, $4)`,
		customer.ID, customer.Name, customer.Address, customer.Contact)
	if err != nil {
		return classifyQueryError("insert customer", err)
	}
	return nil
}

// Update actualiza un cliente. Cero filas afectadas no se trata como error.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `
		UPDATE customers SET name = $2, address = $3, contact = $4 WHERE id = $1`,
		customer.ID, customer.Name, customer.Address, customer.Contact)
	if err != nil {
		return classifyQueryError("update customer", err)
	}
	return nil
}

// Delete elimina un cliente por ID. Con pedidos que lo referencian devuelve
// domain.ErrConstraint.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	sess, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer r.db.Release(sess)

	_, err = sess.Conn().Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return classifyQueryError("delete customer", err)
	}
	return nil
}
