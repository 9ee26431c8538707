package order

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// Total calcula Σ(price × quantity) sobre las líneas del pedido (servicio de dominio).
// price se interpreta como decimal y quantity como entero (los decimales se truncan).
// Una clave ausente cuenta como 0; una línea con valores no convertibles aporta 0 y su
// índice se devuelve en invalid.
func Total(items []entity.OrderItem) (total decimal.Decimal, invalid []int) {
	total = decimal.Zero
	for i, item := range items {
		price, err := Price(item["price"])
		if err != nil {
			invalid = append(invalid, i)
			continue
		}
		qty, err := Quantity(item["quantity"])
		if err != nil {
			invalid = append(invalid, i)
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(qty)))
	}
	return total, invalid
}

// Price convierte un precio recibido como número o texto.
func Price(v interface{}) (decimal.Decimal, error) {
	switch p := v.(type) {
	case nil:
		return decimal.Zero, nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(p))
	default:
		f, err := cast.ToFloat64E(p)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromFloat(f), nil
	}
}

// Quantity convierte una cantidad recibida como número o texto. El texto se lee siempre en
// base 10: "010" es 10 y "0x10" no es válido.
func Quantity(v interface{}) (int64, error) {
	switch q := v.(type) {
	case nil:
		return 0, nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(q), 10, 64)
	default:
		return cast.ToInt64E(q)
	}
}
