package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriState_JSON(t *testing.T) {
	tests := []struct {
		name  string
		value TriState
		raw   string
	}{
		{name: "Desconhecido vira null", value: TriStateUnknown, raw: "null"},
		{name: "Verdadeiro", value: TriStateTrue, raw: "true"},
		{name: "Falso", value: TriStateFalse, raw: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(struct {
				HasClips TriState `json:"has_clips"`
			}{tt.value})
			require.NoError(t, err)
			assert.JSONEq(t, `{"has_clips":`+tt.raw+`}`, string(out))

			var decoded struct {
				HasClips TriState `json:"has_clips"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"has_clips":`+tt.raw+`}`), &decoded))
			assert.Equal(t, tt.value, decoded.HasClips)
		})
	}
}

func TestTriState_CampoAusenteEDesconhecido(t *testing.T) {
	var decoded struct {
		HasClips TriState `json:"has_clips"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &decoded))
	assert.True(t, decoded.HasClips.IsUnknown())

	assert.Error(t, json.Unmarshal([]byte(`{"has_clips":"talvez"}`), &decoded))
}

func TestTriStateFromPtr(t *testing.T) {
	yes, no := true, false

	assert.Equal(t, TriStateUnknown, TriStateFromPtr(nil))
	assert.Equal(t, TriStateTrue, TriStateFromPtr(&yes))
	assert.Equal(t, TriStateFalse, TriStateFromPtr(&no))
	assert.Nil(t, TriStateUnknown.Ptr())
}
