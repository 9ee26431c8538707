package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/tienda-admin/internal/domain"
)

// parseDecimalField lee un número decimal de un campo de formulario: admite espacios
// alrededor, ".5", "5." y notación exponencial. Rechaza hexadecimal, NaN e infinito.
func parseDecimalField(field, value string) (float64, error) {
	s := strings.TrimSpace(value)
	if strings.ContainsAny(s, "xX") {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, field)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, field)
	}
	return f, nil
}

// parseIntField lee un entero en base 10 de un campo de formulario.
func parseIntField(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, field)
	}
	return n, nil
}
