package domain

import "fmt"

const (
	clipPresentMessage      = "Clip detectado no anúncio."
	clipPresentShortMessage = "Clip presente"
	clipAbsentMessage       = "Adicione um clip ao anúncio para aumentar o engajamento e a conversão."
	clipAbsentShortMessage  = "Sem clip"
	clipUnknownMessage      = "Não foi possível confirmar a presença de clip via API; verifique no painel do Mercado Livre."
	clipUnknownShortMessage = "Clip não confirmado"

	picturesSufficient = 8
	picturesAcceptable = 6
)

// MediaVerdict é a única autoridade sobre presença de clip/vídeo no anúncio.
// CanSuggestClip só é verdadeiro quando HasClipDetected é TriStateFalse.
type MediaVerdict struct {
	HasClipDetected TriState `json:"has_clip_detected"`
	CanSuggestClip  bool     `json:"can_suggest_clip"`
	Message         string   `json:"message"`
	ShortMessage    string   `json:"short_message"`
}

// NewMediaVerdict aplica as regras de verdade de mídia, em ordem
func NewMediaVerdict(hasClip TriState, picturesCount *int) MediaVerdict {
	switch hasClip {
	case TriStateTrue:
		return MediaVerdict{
			HasClipDetected: TriStateTrue,
			CanSuggestClip:  false,
			Message:         clipPresentMessage,
			ShortMessage:    clipPresentShortMessage,
		}
	case TriStateFalse:
		return MediaVerdict{
			HasClipDetected: TriStateFalse,
			CanSuggestClip:  true,
			Message:         appendPicturesHint(clipAbsentMessage, picturesCount, false),
			ShortMessage:    clipAbsentShortMessage,
		}
	default:
		return MediaVerdict{
			HasClipDetected: TriStateUnknown,
			CanSuggestClip:  false,
			Message:         appendPicturesHint(clipUnknownMessage, picturesCount, true),
			ShortMessage:    clipUnknownShortMessage,
		}
	}
}

func appendPicturesHint(message string, picturesCount *int, clipUnknown bool) string {
	if picturesCount == nil {
		return message
	}

	n := *picturesCount
	switch {
	case n >= picturesSufficient:
		return fmt.Sprintf("%s As imagens estão em quantidade suficiente (%d).", message, n)
	case n >= picturesAcceptable:
		return fmt.Sprintf("%s Considere também adicionar mais imagens (atualmente %d).", message, n)
	case clipUnknown:
		return fmt.Sprintf("%s Considere adicionar mais imagens e verificar o clip (atualmente %d imagens).", message, n)
	default:
		return fmt.Sprintf("%s Considere adicionar mais imagens e um clip (atualmente %d imagens).", message, n)
	}
}

// MediaInfo é o recorte de mídia consumido pelos motores de ação e explicação
type MediaInfo struct {
	PicturesCount *int     `json:"pictures_count"`
	HasClips      TriState `json:"has_clips"`
}

// Verdict deriva o veredito de mídia; MediaInfo nil equivale a clip desconhecido
func (m *MediaInfo) Verdict() MediaVerdict {
	if m == nil {
		return NewMediaVerdict(TriStateUnknown, nil)
	}
	return NewMediaVerdict(m.HasClips, m.PicturesCount)
}

func (m *MediaInfo) Pictures() int {
	if m == nil || m.PicturesCount == nil {
		return 0
	}
	return *m.PicturesCount
}
