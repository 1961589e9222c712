package common

import (
	"strings"
	"unicode"
)

func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})

	var result strings.Builder
	for _, word := range words {
		if len(word) > 0 {
			result.WriteString(strings.ToUpper(string(word[0])))
			if len(word) > 1 {
				result.WriteString(strings.ToLower(word[1:]))
			}
		}
	}

	return result.String()
}

// SanitizeLeadingDigit prefixes names that start with a digit with "Num"
// to keep identifiers valid.
func SanitizeLeadingDigit(name string) string {
	if name == "" {
		return ""
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "Num" + name
	}
	return name
}

// goNames spells out SDL constants whose words are not separated by
// underscores. Keys added after SDL 2.0.5 live here so regenerating from a
// newer header yields readable names.
var goNames = map[string]string{
	"SDLK_AUDIOREWIND":      "AudioRewind",
	"SDLK_AUDIOFASTFORWARD": "AudioFastForward",
	"SDLK_SOFTLEFT":         "SoftLeft",
	"SDLK_SOFTRIGHT":        "SoftRight",
	"SDLK_CALL":             "Call",
	"SDLK_ENDCALL":          "EndCall",
	"SDLK_APP1":             "App1",
	"SDLK_APP2":             "App2",
}

// GoName derives an exported identifier from an SDL constant name.
// Examples: "SDLK_a" -> "A", "SDLK_0" -> "Num0", "SDLK_KP_00" -> "Kp00",
// "SDLK_AC_SEARCH" -> "AcSearch", "SDLK_SOFTLEFT" -> "SoftLeft".
// Names missing from goNames are split on underscores only, so a new
// run-together constant such as "SDLK_FOOBAR" becomes "Foobar".
func GoName(sdlName string) string {
	if n, ok := goNames[sdlName]; ok {
		return n
	}
	return SanitizeLeadingDigit(ToPascalCase(strings.TrimPrefix(sdlName, "SDLK_")))
}

func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		isUpper := r >= 'A' && r <= 'Z'

		if i > 0 && isUpper {
			// Check if previous char is lowercase (e.g., "someWord" -> "some_word")
			prevIsLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'

			// Check if next char is lowercase (e.g., "XMLParser" -> "xml_parser", not "x_m_l_parser")
			nextIsLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'

			if prevIsLower || nextIsLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
