// Package voices maps short human-friendly voice aliases to fully-qualified
// Azure Speech voice identifiers and derives filename prefixes from them.
package voices

import "strings"

// DefaultVoice is the hardcoded fallback when neither the CLI nor the
// environment selects a voice.
const DefaultVoice = "en-US-AvaNeural"

// DefaultPrefix is the filename prefix used when no better one can be
// derived from the selected voice.
const DefaultPrefix = "tts"

// DocsURL points at the full Azure neural voice catalog.
const DocsURL = "https://learn.microsoft.com/en-us/azure/ai-services/speech-service/language-support"

// popular maps alias keys to full Azure voice identifiers.
// The table is closed and read-only; aliasOrder keeps listing stable.
var popular = map[string]string{
	"ava":         "en-US-AvaNeural",
	"andrew":      "en-US-AndrewMultilingualNeural",
	"emma":        "en-US-EmmaMultilingualNeural",
	"brian":       "en-US-BrianMultilingualNeural",
	"sarah":       "en-US-SaraNeural",
	"christopher": "en-US-ChristopherNeural",
}

var aliasOrder = []string{"ava", "andrew", "emma", "brian", "sarah", "christopher"}

// Resolve turns a requested voice into a full Azure voice identifier.
// Resolution order: alias match (case-insensitive) -> verbatim non-empty
// string -> environment default -> DefaultVoice.
func Resolve(requested, envDefault string) string {
	if requested != "" {
		if full, ok := popular[strings.ToLower(requested)]; ok {
			return full
		}
		return requested
	}
	if envDefault != "" {
		return envDefault
	}
	return DefaultVoice
}

// IsAlias reports whether name is a known alias key.
func IsAlias(name string) bool {
	_, ok := popular[strings.ToLower(name)]
	return ok
}

// FullID returns the full voice identifier for an alias key, if known.
func FullID(alias string) (string, bool) {
	full, ok := popular[strings.ToLower(alias)]
	return full, ok
}

// Names returns the alias keys in listing order.
func Names() []string {
	out := make([]string, len(aliasOrder))
	copy(out, aliasOrder)
	return out
}

// DerivePrefix picks a filename prefix for the requested voice.
// Alias keys become the prefix directly. Full en-US identifiers are
// stripped of the locale marker and the Neural/Multilingual suffix
// tokens. Anything else keeps DefaultPrefix.
func DerivePrefix(requested string) string {
	key := strings.ToLower(requested)
	if _, ok := popular[key]; ok {
		return key
	}
	if strings.Contains(requested, "en-US-") {
		part := strings.ReplaceAll(requested, "en-US-", "")
		part = strings.ReplaceAll(part, "Neural", "")
		part = strings.ReplaceAll(part, "Multilingual", "")
		return strings.ToLower(part)
	}
	return DefaultPrefix
}
