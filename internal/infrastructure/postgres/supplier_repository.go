package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
// Incluye la tabla de asociación product_suppliers.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, company_id, name, contact_name, contact_email, contact_phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		supplier.ID, supplier.CompanyID, supplier.Name,
		supplier.ContactName, supplier.ContactEmail, supplier.ContactPhone,
		supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `
		SELECT id, company_id, name, contact_name, contact_email, contact_phone, created_at, updated_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.ContactName, &s.ContactEmail, &s.ContactPhone,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// ListByCompany lista proveedores por empresa con paginación.
func (r *SupplierRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, company_id, name, contact_name, contact_email, contact_phone, created_at, updated_at
		FROM suppliers WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	return scanSuppliers(rows)
}

// Delete elimina un proveedor por ID. Las asociaciones caen por ON DELETE CASCADE.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

// LinkProduct asocia un proveedor a un producto. ON CONFLICT DO NOTHING hace
// la operación idempotente.
func (r *SupplierRepo) LinkProduct(productID, supplierID string) error {
	query := `
		INSERT INTO product_suppliers (product_id, supplier_id, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (product_id, supplier_id) DO NOTHING`
	_, err := r.pool.Exec(context.Background(), query, productID, supplierID)
	if err != nil {
		return fmt.Errorf("link supplier: %w", err)
	}
	return nil
}

// UnlinkProduct elimina la asociación producto-proveedor.
func (r *SupplierRepo) UnlinkProduct(productID, supplierID string) error {
	query := `DELETE FROM product_suppliers WHERE product_id = $1 AND supplier_id = $2`
	_, err := r.pool.Exec(context.Background(), query, productID, supplierID)
	if err != nil {
		return fmt.Errorf("unlink supplier: %w", err)
	}
	return nil
}

// ListByProduct lista los proveedores de un producto en orden de asociación.
func (r *SupplierRepo) ListByProduct(productID string) ([]*entity.Supplier, error) {
	query := `
		SELECT s.id, s.company_id, s.name, s.contact_name, s.contact_email, s.contact_phone, s.created_at, s.updated_at
		FROM suppliers s
		JOIN product_suppliers ps ON ps.supplier_id = s.id
		WHERE ps.product_id = $1
		ORDER BY ps.created_at, s.id`
	rows, err := r.pool.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product suppliers: %w", err)
	}
	defer rows.Close()
	return scanSuppliers(rows)
}

func scanSuppliers(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.ContactName, &s.ContactEmail, &s.ContactPhone, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
