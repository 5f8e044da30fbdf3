package alerts_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-alerts-api/internal/domain/alerts"
)

func TestApplicableThreshold_UsaOverrideDelProducto(t *testing.T) {
	override := 25
	assert.Equal(t, 25, alerts.ApplicableThreshold(&override, 10))
}

func TestApplicableThreshold_SinOverrideUsaDefault(t *testing.T) {
	assert.Equal(t, 10, alerts.ApplicableThreshold(nil, 10))
}

func TestIsLowStock_LimiteInclusivo(t *testing.T) {
	// cantidad == umbral también dispara alerta
	assert.True(t, alerts.IsLowStock(10, 10))
	assert.True(t, alerts.IsLowStock(5, 10))
	assert.False(t, alerts.IsLowStock(11, 10))
	assert.False(t, alerts.IsLowStock(15, 10))
}

func TestDaysUntilStockout_ConVentas(t *testing.T) {
	// 60 unidades vendidas en 30 días → 2/día; 10 en stock → 5 días
	days := alerts.DaysUntilStockout(10, 60, 30)
	require.NotNil(t, days)
	assert.True(t, days.Equal(decimal.NewFromInt(5)), "esperaba 5 días, obtuve %s", days)
}

func TestDaysUntilStockout_RedondeaAUnDecimal(t *testing.T) {
	// 7 unidades vendidas en 30 días; 5 en stock → 5*30/7 = 21.428... → 21.4
	days := alerts.DaysUntilStockout(5, 7, 30)
	require.NotNil(t, days)
	assert.Equal(t, "21.4", days.String())
}

func TestDaysUntilStockout_SinVentasEsNil(t *testing.T) {
	assert.Nil(t, alerts.DaysUntilStockout(10, 0, 30))
	assert.Nil(t, alerts.DaysUntilStockout(10, -3, 30))
}
