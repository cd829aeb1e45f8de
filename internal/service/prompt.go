package service

import (
	"os"

	"go.uber.org/zap"
)

// Fallback when the prompt file is missing. Mirrors prompts/extraction.md.
const defaultExtractionPrompt = `You are an expert at extracting structured information from messages. ` +
	`Extract contact details (name, email, phone), channel, language, intent, ` +
	`priority (low/medium/high), entities (dates, amounts, locations), and generate ` +
	`a reply suggestion in the detected language (2-5 sentences). Return ONLY valid JSON.`

// LoadExtractionPrompt reads the extraction system prompt from disk,
// falling back to the embedded default when the file is unavailable.
func LoadExtractionPrompt(path string, logger *zap.Logger) string {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("extraction prompt file unavailable; using embedded default",
			zap.String("path", path), zap.Error(err))
		return defaultExtractionPrompt
	}
	return string(content)
}
