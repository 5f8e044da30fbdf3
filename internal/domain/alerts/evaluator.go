package alerts

import "github.com/shopspring/decimal"

// Servicios de dominio puros para la evaluación de stock bajo.

// ApplicableThreshold devuelve el umbral del producto si está configurado,
// o el umbral global por defecto en caso contrario.
func ApplicableThreshold(override *int, defaultThreshold int) int {
	if override != nil {
		return *override
	}
	return defaultThreshold
}

// IsLowStock informa si una cantidad dispara alerta. El límite es inclusivo:
// cantidad igual al umbral también alerta.
func IsLowStock(quantity int64, threshold int) bool {
	return quantity <= int64(threshold)
}

// DaysUntilStockout estima los días hasta quiebre de stock:
// tasa diaria = unidades vendidas en la ventana / días de la ventana;
// días = cantidad actual / tasa diaria.
// Devuelve nil si la tasa es cero (sin ventas en la ventana): el estimado
// queda indefinido y se omite de la alerta.
func DaysUntilStockout(quantity, soldInWindow int64, windowDays int) *decimal.Decimal {
	if soldInWindow <= 0 || windowDays <= 0 {
		return nil
	}
	days := decimal.NewFromInt(quantity).
		Mul(decimal.NewFromInt(int64(windowDays))).
		Div(decimal.NewFromInt(soldInWindow)).
		Round(1)
	return &days
}
