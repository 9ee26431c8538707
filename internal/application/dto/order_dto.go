package dto

import (
	"encoding/json"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// OrderSummaryResponse resultado de resumir un pedido.
type OrderSummaryResponse struct {
	Items      []entity.OrderItem `json:"items"`
	TotalPrice float64            `json:"total_price"`
}

// SaveOrderRequest cuerpo JSON de /save_order_changes. Items se guarda tal cual.
type SaveOrderRequest struct {
	Items json.RawMessage `json:"items"`
}
