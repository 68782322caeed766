package dto

// CampoError detalle de validación de un campo concreto.
type CampoError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Campos  []CampoError `json:"campos,omitempty"`
}
