// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"time"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// rowScanner é satisfeito por *sql.Row e *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullFloatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

// nullTriState: NULL vira desconhecido, nunca false
func nullTriState(v sql.NullBool) domain.TriState {
	if !v.Valid {
		return domain.TriStateUnknown
	}
	if v.Bool {
		return domain.TriStateTrue
	}
	return domain.TriStateFalse
}

func nullTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time.UTC()
	return &t
}
