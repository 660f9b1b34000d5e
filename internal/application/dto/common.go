package dto

// ErrorResponse cuerpo de error HTTP. El campo mensaje mantiene el contrato
// original del frontend; code permite distinguir casos programáticamente.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Mensaje string `json:"mensaje"`
}
