package dto

// Envelope es el sobre común de toda respuesta HTTP: {status, message, data}.
type Envelope struct {
	Status  string `json:"status"` // "success" | "error"
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK construye un sobre de éxito.
func OK(message string, data any) Envelope {
	return Envelope{Status: "success", Message: message, Data: data}
}

// Fail construye un sobre de error sin datos.
func Fail(message string) Envelope {
	return Envelope{Status: "error", Message: message}
}

// FailFields construye un sobre de error de validación con los campos violados.
func FailFields(message string, fields []string) Envelope {
	return Envelope{Status: "error", Message: message, Data: map[string]any{"fields": fields}}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}
