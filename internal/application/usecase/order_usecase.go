package usecase

import (
	"encoding/json"
	"strings"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/domain/order"
	"github.com/jhoicas/tienda-admin/pkg/logger"
)

// emptyItems lista vacía en JSON.
var emptyItems = json.RawMessage("[]")

// OrderUseCase resumen del carrito y normalización de las líneas guardadas en sesión.
type OrderUseCase struct {
	log *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(log *logger.Logger) *OrderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &OrderUseCase{log: log}
}

// Summarize decodifica order_data (lista JSON de líneas) y calcula el total.
// Un JSON inválido se trata como carrito vacío.
func (uc *OrderUseCase) Summarize(orderData string) dto.OrderSummaryResponse {
	out := dto.OrderSummaryResponse{Items: []entity.OrderItem{}}
	if strings.TrimSpace(orderData) == "" {
		return out
	}
	var items []entity.OrderItem
	if err := json.Unmarshal([]byte(orderData), &items); err != nil {
		uc.log.Warn().Err(err).Msg("order_data no es JSON válido, se usa carrito vacío")
		return out
	}
	if items == nil {
		return out
	}
	total, invalid := order.Total(items)
	if len(invalid) > 0 {
		uc.log.Warn().Ints("lines", invalid).Msg("líneas con precio o cantidad no numéricos cuentan como 0")
	}
	out.Items = items
	out.TotalPrice = total.InexactFloat64()
	return out
}

// DecodeSaveRequest decodifica el cuerpo de /save_order_changes. Un cuerpo ausente o que no
// es un objeto JSON equivale a {} y se registra en debug.
func (uc *OrderUseCase) DecodeSaveRequest(body []byte) dto.SaveOrderRequest {
	var in dto.SaveOrderRequest
	if err := json.Unmarshal(body, &in); err != nil {
		uc.log.Debug().Err(err).Int("bytes", len(body)).Msg("cuerpo de save_order_changes inválido, se usa lista vacía")
		return dto.SaveOrderRequest{}
	}
	return in
}

// PendingItems devuelve la lista a guardar en sesión tal como llegó; ausente equivale a [].
func (uc *OrderUseCase) PendingItems(in dto.SaveOrderRequest) json.RawMessage {
	raw := strings.TrimSpace(string(in.Items))
	if raw == "" || raw == "null" {
		return emptyItems
	}
	return in.Items
}
