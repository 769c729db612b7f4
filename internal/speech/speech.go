// Package speech holds text-to-speech backends. The server runs headless,
// so the default backend reports that no synthesis is available.
package speech

import (
	"context"
	"strings"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

// LangTaiwanMandarin is the BCP 47 tag used for spoken replies.
const LangTaiwanMandarin = "zh-TW"

// Unavailable is a synthesizer without any audio output.
type Unavailable struct{}

// Speak always fails with domain.ErrSpeechUnavailable.
func (Unavailable) Speak(context.Context, string, string) error {
	return domain.ErrSpeechUnavailable
}

// Available reports false.
func (Unavailable) Available() bool { return false }

// Speakable returns the part of a reply that should be read aloud: the text
// before the first opening parenthesis, which starts the Japanese gloss.
// Both ASCII and full-width parentheses count.
func Speakable(text string) string {
	if i := strings.IndexAny(text, "(（"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
