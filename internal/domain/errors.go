package domain

import (
	"errors"
	"fmt"
)

// Erros específicos para a avaliação de anúncios
var (
	// Erros de validação
	ErrListingIDRequired     = errors.New("listing ID is required")
	ErrInvalidPeriod         = errors.New("invalid period")
	ErrInvalidHackID         = errors.New("invalid hack id")
	ErrInvalidFeedbackStatus = errors.New("invalid feedback status")

	ErrListingNotFound = errors.New("listing not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	// Erros de serviços externos
	ErrMarketplaceIntegration = errors.New("error fetching data from marketplace")
)

// ListingError é um erro com contexto adicional para anúncios
type ListingError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	ListingID string
	Details   string
}

func (e *ListingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ListingError) Unwrap() error {
	return e.Err
}

func NewListingError(err error, code string, listingID string, details string) *ListingError {
	return &ListingError{
		Err:       err,
		Code:      code,
		ListingID: listingID,
		Details:   details,
	}
}

func (e *ListingError) APICode() string {
	return e.Code
}

// APIMessage devolve apenas os detalhes, sem o erro interno
func (e *ListingError) APIMessage() string {
	if e.Details != "" {
		return e.Details
	}
	return e.Err.Error()
}
