package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/scorte-pro/internal/domain/report"
)

func TestEvaluate_FormulaCanonica(t *testing.T) {
	cases := []struct {
		name        string
		quantity    int
		minQuantity int
		totalUsed   int
		wantReorder bool
		wantOrder   int
	}{
		{"stock sobre el umbral", 10, 3, 5, false, 0},
		{"stock justo sobre el umbral", 4, 3, 2, false, 0},
		{"stock igual al umbral", 3, 3, 7, true, 0},
		{"stock bajo el umbral", 2, 3, 3, true, 1},
		{"stock agotado", 0, 5, 12, true, 5},
		{"umbral cero y stock cero", 0, 0, 1, true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := report.Evaluate(tc.quantity, tc.minQuantity, tc.totalUsed, report.Options{})
			assert.Equal(t, tc.wantReorder, d.NeedsReorder)
			assert.Equal(t, tc.wantOrder, d.QuantityToOrder)
		})
	}
}

func TestEvaluate_VarianteConConsumo(t *testing.T) {
	opts := report.Options{IncludeUsageInShortfall: true}

	cases := []struct {
		name        string
		quantity    int
		minQuantity int
		totalUsed   int
		wantReorder bool
		wantOrder   int
	}{
		{"sobre el umbral: el consumo no importa", 10, 3, 99, false, 0},
		{"bajo el umbral suma el consumo", 2, 3, 3, true, 4},
		{"igual al umbral suma solo el consumo", 3, 3, 7, true, 7},
		{"agotado con consumo histórico", 0, 5, 12, true, 17},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := report.Evaluate(tc.quantity, tc.minQuantity, tc.totalUsed, opts)
			assert.Equal(t, tc.wantReorder, d.NeedsReorder)
			assert.Equal(t, tc.wantOrder, d.QuantityToOrder)
		})
	}
}
