package completion

import (
	"strings"

	"github.com/Silverls96/transcript-summarizer/internal/config"
	"github.com/Silverls96/transcript-summarizer/internal/logger"
)

// geminiPrefix routes model names to the Gemini backend, mirroring the
// provider/model naming convention used by OpenRouter-style gateways.
const geminiPrefix = "gemini/"

// New creates a Completer for the configured model. Models named
// "gemini/<model>" use the Google GenAI API; everything else goes through
// the OpenAI-compatible chat completions API at the configured base URL.
func New(cfg config.LLMConfig, log logger.Logger) Completer {
	if strings.HasPrefix(cfg.Model, geminiPrefix) {
		return newGemini(cfg.APIKey, strings.TrimPrefix(cfg.Model, geminiPrefix), log)
	}
	return newOpenAI(cfg, log)
}
