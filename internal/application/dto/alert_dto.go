package dto

import "github.com/shopspring/decimal"

// SupplierContactDTO contacto del primer proveedor asociado al producto.
type SupplierContactDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

// LowStockAlertDTO una alerta de stock bajo para un par (producto, bodega).
type LowStockAlertDTO struct {
	ProductID       string              `json:"product_id"`
	ProductName     string              `json:"product_name"`
	SKU             string              `json:"sku"`
	WarehouseID     string              `json:"warehouse_id"`
	WarehouseName   string              `json:"warehouse_name"`
	CurrentQuantity int64               `json:"current_quantity"`
	Threshold       int                 `json:"threshold"`
	Supplier        *SupplierContactDTO `json:"supplier,omitempty"`
	// DaysUntilStockout se omite cuando no hay ventas en la ventana (tasa cero).
	DaysUntilStockout *decimal.Decimal `json:"days_until_stockout,omitempty"`
}

// LowStockListData payload de GET /api/companies/{id}/alerts/low-stock.
type LowStockListData struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
