package jsonstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// number acepta un valor JSON numérico o texto numérico y siempre se escribe como número.
// Un valor no convertible invalida el documento completo.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if s, ok := raw.(string); ok {
		s = strings.TrimSpace(s)
		if strings.ContainsAny(s, "xX") {
			return fmt.Errorf("número no decimal: %q", s)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = number(f)
		return nil
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil {
		return err
	}
	*n = number(f)
	return nil
}

// integer como number pero entero: 2.0 y "2" se leen como 2; los decimales se truncan.
// El texto se interpreta en base 10.
type integer int

func (n *integer) UnmarshalJSON(b []byte) error {
	var f number
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	*n = integer(cast.ToInt64(float64(f)))
	return nil
}
