package entity

// OrderItem línea de pedido tal como la envía el navegador.
// Solo "price" y "quantity" tienen significado; el resto de claves se conserva para mostrarlas.
type OrderItem map[string]interface{}
