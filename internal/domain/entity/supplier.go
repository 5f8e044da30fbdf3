package entity

import "time"

// Supplier representa un proveedor de productos. Se gestiona de forma
// independiente y los productos lo referencian vía product_suppliers (N:M).
type Supplier struct {
	ID           string
	CompanyID    string
	Name         string
	ContactName  string
	ContactEmail string
	ContactPhone string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductSupplier asocia un producto con un proveedor (clave compuesta, sin
// identidad propia). CreatedAt define el orden: el primer proveedor asociado
// es el contacto que aparece en las alertas.
type ProductSupplier struct {
	ProductID  string
	SupplierID string
	CreatedAt  time.Time
}
