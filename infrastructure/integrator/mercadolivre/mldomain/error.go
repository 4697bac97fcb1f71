package mldomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Mercado Livre
type ErrorResponse struct {
	Message string `json:"message"`
	Err     string `json:"error"`
	Status  int    `json:"status"`
}

func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("mercadolivre: %s (%s, status %d)", e.Message, e.Err, e.Status)
}

// IsUnauthorized indica token ausente ou expirado
func (e *ErrorResponse) IsUnauthorized() bool {
	return e.Status == 401 || e.Status == 403
}
