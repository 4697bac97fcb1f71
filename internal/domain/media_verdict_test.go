package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestNewMediaVerdict(t *testing.T) {
	tests := []struct {
		name     string
		hasClip  TriState
		pictures *int
		validate func(t *testing.T, v MediaVerdict)
	}{
		{
			name:     "Clip presente - nunca sugere clip",
			hasClip:  TriStateTrue,
			pictures: intPtr(3),
			validate: func(t *testing.T, v MediaVerdict) {
				assert.Equal(t, TriStateTrue, v.HasClipDetected)
				assert.False(t, v.CanSuggestClip)
				assert.Equal(t, "Clip detectado no anúncio.", v.Message)
				assert.Equal(t, "Clip presente", v.ShortMessage)
			},
		},
		{
			name:     "Clip ausente com poucas imagens - sugere clip e imagens",
			hasClip:  TriStateFalse,
			pictures: intPtr(4),
			validate: func(t *testing.T, v MediaVerdict) {
				assert.True(t, v.CanSuggestClip)
				assert.Equal(t, "Adicione um clip ao anúncio para aumentar o engajamento e a conversão. Considere adicionar mais imagens e um clip (atualmente 4 imagens).", v.Message)
				assert.Equal(t, "Sem clip", v.ShortMessage)
			},
		},
		{
			name:     "Clip ausente com 6 imagens - dica intermediária",
			hasClip:  TriStateFalse,
			pictures: intPtr(6),
			validate: func(t *testing.T, v MediaVerdict) {
				assert.Contains(t, v.Message, "Considere também adicionar mais imagens (atualmente 6).")
			},
		},
		{
			name:     "Clip desconhecido - nunca afirma ausência",
			hasClip:  TriStateUnknown,
			pictures: intPtr(8),
			validate: func(t *testing.T, v MediaVerdict) {
				assert.Equal(t, TriStateUnknown, v.HasClipDetected)
				assert.False(t, v.CanSuggestClip)
				assert.NotContains(t, v.Message, "Adicione um clip")
				assert.Contains(t, v.Message, "As imagens estão em quantidade suficiente (8).")
				assert.Equal(t, "Clip não confirmado", v.ShortMessage)
			},
		},
		{
			name:     "Contagem de imagens desconhecida - sem dica",
			hasClip:  TriStateUnknown,
			pictures: nil,
			validate: func(t *testing.T, v MediaVerdict) {
				assert.Equal(t, "Não foi possível confirmar a presença de clip via API; verifique no painel do Mercado Livre.", v.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, NewMediaVerdict(tt.hasClip, tt.pictures))
		})
	}
}

func TestMediaInfo_NilEquivaleADesconhecido(t *testing.T) {
	var info *MediaInfo

	assert.Equal(t, NewMediaVerdict(TriStateUnknown, nil), info.Verdict())
	assert.Equal(t, 0, info.Pictures())
}
