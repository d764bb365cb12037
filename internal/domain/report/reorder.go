package report

// Options controla la variante de la fórmula de reposición (servicio de dominio).
type Options struct {
	// IncludeUsageInShortfall suma el consumo del período al déficit sugerido:
	// quantityToOrder = max(0, minQuantity - quantity + totalUsed).
	// La fórmula canónica (false) es max(0, minQuantity - quantity).
	IncludeUsageInShortfall bool
}

// Decision resultado de evaluar un producto contra su umbral.
type Decision struct {
	NeedsReorder    bool
	QuantityToOrder int
}

// Evaluate aplica la regla de reposición:
// needsReorder = quantity <= minQuantity; si no hay que reordenar, la cantidad
// sugerida es siempre 0.
func Evaluate(quantity, minQuantity, totalUsed int, opts Options) Decision {
	if quantity > minQuantity {
		return Decision{}
	}
	shortfall := minQuantity - quantity
	if opts.IncludeUsageInShortfall {
		shortfall += totalUsed
	}
	if shortfall < 0 {
		shortfall = 0
	}
	return Decision{NeedsReorder: true, QuantityToOrder: shortfall}
}
