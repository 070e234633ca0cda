package transcript

import "unicode"

// DetectLanguage classifies text as "zh" or "en" by character ranges:
// more than 30% CJK ideographs among the letters means Chinese.
func DetectLanguage(text string) string {
	if text == "" {
		return "en"
	}

	var cjk, letters int
	for _, r := range text {
		if r >= 0x4E00 && r <= 0x9FFF {
			cjk++
		}
		if unicode.IsLetter(r) {
			letters++
		}
	}

	if letters == 0 {
		return "en"
	}
	if float64(cjk)/float64(letters) > 0.3 {
		return "zh"
	}
	return "en"
}

// SplitChunks splits text into pieces of at most maxChars characters so
// long transcripts can be refined one request at a time.
func SplitChunks(text string, maxChars int) []string {
	if maxChars <= 0 || len(text) <= maxChars {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	for start := 0; start < len(runes); start += maxChars {
		end := start + maxChars
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
