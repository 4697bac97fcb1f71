package domain

import (
	"bytes"
	"fmt"
)

// TriState representa um valor com três estados distinguíveis: confirmado presente,
// confirmado ausente ou desconhecido. Nunca deve ser convertido para bool.
type TriState int

const (
	TriStateUnknown TriState = iota
	TriStateTrue
	TriStateFalse
)

// TriStateFromPtr converte um *bool vindo de APIs/banco, onde nil significa desconhecido
func TriStateFromPtr(v *bool) TriState {
	if v == nil {
		return TriStateUnknown
	}
	if *v {
		return TriStateTrue
	}
	return TriStateFalse
}

func (t TriState) IsTrue() bool {
	return t == TriStateTrue
}

func (t TriState) IsFalse() bool {
	return t == TriStateFalse
}

func (t TriState) IsUnknown() bool {
	return t != TriStateTrue && t != TriStateFalse
}

// Ptr devolve a representação anulável usada em persistência
func (t TriState) Ptr() *bool {
	switch t {
	case TriStateTrue:
		v := true
		return &v
	case TriStateFalse:
		v := false
		return &v
	default:
		return nil
	}
}

func (t TriState) String() string {
	switch t {
	case TriStateTrue:
		return "true"
	case TriStateFalse:
		return "false"
	default:
		return "null"
	}
}

func (t TriState) MarshalJSON() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TriState) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true":
		*t = TriStateTrue
	case "false":
		*t = TriStateFalse
	case "null", `""`:
		*t = TriStateUnknown
	default:
		return fmt.Errorf("valor tri-state inválido: %s", data)
	}
	return nil
}
