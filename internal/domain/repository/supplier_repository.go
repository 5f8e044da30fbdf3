package repository

import "github.com/tu-usuario/stock-alerts-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier y la
// asociación product_suppliers (N:M de clave compuesta).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error

	// LinkProduct asocia un proveedor a un producto. Idempotente: asociar dos
	// veces el mismo par no es error.
	LinkProduct(productID, supplierID string) error
	UnlinkProduct(productID, supplierID string) error
	ListByProduct(productID string) ([]*entity.Supplier, error)
}
