package dto

import "github.com/shopspring/decimal"

// CreateBoletaRequest body para POST /boletas.
// El precio unitario viene del cliente y es el que se usa para el subtotal
// (snapshot del precio al momento del pedido, no se rederiva del catálogo).
type CreateBoletaRequest struct {
	UsuarioID int64               `json:"usuario_id"`
	Items     []BoletaItemRequest `json:"items"`
}

// BoletaItemRequest línea del pedido (producto, precio unitario, cantidad).
type BoletaItemRequest struct {
	ProductoID int64           `json:"producto_id"`
	Precio     decimal.Decimal `json:"precio"`
	Cantidad   int64           `json:"cantidad"`
}

// CreateBoletaResponse respuesta de POST /boletas.
type CreateBoletaResponse struct {
	Mensaje  string          `json:"mensaje"`
	BoletaID int64           `json:"boleta_id"`
	Total    decimal.Decimal `json:"total"`
}
