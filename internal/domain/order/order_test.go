package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal(t *testing.T) {
	lines := []Line{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("15.50")},
		{Quantity: 1, UnitPrice: decimal.RequireFromString("8.00")},
	}

	assert.True(t, decimal.RequireFromString("39.00").Equal(ComputeTotal(lines)))
}

func TestComputeTotal_NoLines(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(ComputeTotal(nil)))
	assert.True(t, decimal.Zero.Equal(ComputeTotal([]Line{})))
}

func TestComputeTotal_Idempotent(t *testing.T) {
	lines := []Line{
		{Quantity: 3, UnitPrice: decimal.RequireFromString("0.10")},
		{Quantity: 7, UnitPrice: decimal.RequireFromString("1.99")},
	}

	first := ComputeTotal(lines)
	second := ComputeTotal(lines)
	assert.True(t, first.Equal(second))
	assert.True(t, decimal.RequireFromString("14.23").Equal(first))
}

func TestComputeTotal_NoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 style inputs must sum exactly in decimal space.
	lines := make([]Line, 10)
	for i := range lines {
		lines[i] = Line{Quantity: 1, UnitPrice: decimal.RequireFromString("0.10")}
	}

	assert.Equal(t, "1.00", ComputeTotal(lines).StringFixed(2))
}

func TestLineSubtotal(t *testing.T) {
	l := Line{Quantity: 3, UnitPrice: decimal.RequireFromString("9.90")}
	assert.True(t, decimal.RequireFromString("29.70").Equal(l.Subtotal()))
}

func TestStatusLabels(t *testing.T) {
	cases := map[Status]string{
		StatusReceived:      "Recebido",
		StatusInPreparation: "Em preparação",
		StatusReady:         "Pronto",
		StatusFinalized:     "Finalizado",
	}
	for status, label := range cases {
		assert.Equal(t, label, status.Label())

		parsed, err := ParseStatusLabel(label)
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}
}

func TestParseStatusLabel_Invalid(t *testing.T) {
	// Matching is exact: case- and accent-sensitive.
	for _, label := range []string{"", "recebido", "Em preparacao", "EM PREPARAÇÃO", "Cancelado"} {
		_, err := ParseStatusLabel(label)
		require.Error(t, err, "label %q", label)
		assert.True(t, IsValidation(err))
	}
}

func TestQueueStatuses_ExcludeFinalized(t *testing.T) {
	assert.NotContains(t, QueueStatuses, StatusFinalized)
	assert.ElementsMatch(t,
		[]Status{StatusReceived, StatusInPreparation, StatusReady},
		QueueStatuses,
	)
}
