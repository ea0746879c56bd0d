// Package langmeta maps the language codes used by the translation service
// to display names.
package langmeta

import (
	"sort"
	"strings"
)

// Auto is the pseudo-language asking the service to detect the source language.
const Auto = "auto"

// Unknown is shown for codes that are empty or not in the registry.
const Unknown = "Unknown"

// Registry lists the languages the service can extract and translate.
// "ch_sim" is the OCR engine's code for Simplified Chinese; the translation
// endpoint reports it back in place of "zh".
var Registry = map[string]string{
	"ar":     "Arabic",
	"az":     "Azerbaijani",
	"be":     "Belarusian",
	"bg":     "Bulgarian",
	"bn":     "Bengali",
	"ca":     "Catalan",
	"ceb":    "Cebuano",
	"ch_sim": "Chinese",
	"cs":     "Czech",
	"cy":     "Welsh",
	"da":     "Danish",
	"de":     "German",
	"el":     "Greek",
	"en":     "English",
	"es":     "Spanish",
	"et":     "Estonian",
	"fa":     "Farsi",
	"fi":     "Finnish",
	"fr":     "French",
	"ga":     "Irish",
	"gu":     "Gujarati",
	"he":     "Hebrew",
	"hi":     "Hindi",
	"hu":     "Hungarian",
	"id":     "Indonesian",
	"is":     "Icelandic",
	"it":     "Italian",
	"ja":     "Japanese",
	"jv":     "Javanese",
	"ka":     "Georgian",
	"kk":     "Kazakh",
	"km":     "Khmer",
	"kn":     "Kannada",
	"ko":     "Korean",
	"ku":     "Kurdish",
	"ky":     "Kyrgyz",
	"la":     "Latin",
	"lo":     "Lao",
	"lt":     "Lithuanian",
	"mi":     "Maori",
	"mk":     "Macedonian",
	"mn":     "Mongolian",
	"mr":     "Marathi",
	"ms":     "Malay",
	"my":     "Burmese",
	"ne":     "Nepali",
	"nl":     "Dutch",
	"no":     "Norwegian",
	"or":     "Oriya",
	"pa":     "Punjabi",
	"pl":     "Polish",
	"pt":     "Portuguese",
	"ro":     "Romanian",
	"ru":     "Russian",
	"sa":     "Sanskrit",
	"sk":     "Slovak",
	"sl":     "Slovenian",
	"sr":     "Serbian",
	"sv":     "Swedish",
	"sw":     "Swahili",
	"ta":     "Tamil",
	"te":     "Telugu",
	"tg":     "Tajik",
	"th":     "Thai",
	"tl":     "Tagalog",
	"tr":     "Turkish",
	"ug":     "Uyghur",
	"uk":     "Ukrainian",
	"ur":     "Urdu",
	"uz":     "Uzbek",
	"vi":     "Vietnamese",
	"yi":     "Yiddish",
}

// aliases maps alternative spellings to registry codes.
var aliases = map[string]string{
	"zh":    "ch_sim",
	"zh-CN": "ch_sim",
	"zh-cn": "ch_sim",
	"nb":    "no",
	"nn":    "no",
}

func canonicalize(code string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if normalized == "" {
		return ""
	}
	parts := strings.Split(normalized, "-")
	parts[0] = strings.ToLower(parts[0])
	if len(parts) >= 2 {
		parts[1] = strings.ToUpper(parts[1])
	}
	return strings.Join(parts, "-")
}

// Resolve returns the registry code for code, accepting variants such as
// pt_BR, PT-br and known aliases. The second result is false if no
// registry entry matches.
func Resolve(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if _, ok := Registry[code]; ok {
		return code, true
	}
	if alias, ok := aliases[code]; ok {
		return alias, true
	}

	normalized := canonicalize(code)
	if _, ok := Registry[normalized]; ok {
		return normalized, true
	}
	if alias, ok := aliases[normalized]; ok {
		return alias, true
	}

	if parts := strings.SplitN(normalized, "-", 2); len(parts) == 2 {
		if _, ok := Registry[parts[0]]; ok {
			return parts[0], true
		}
		if alias, ok := aliases[parts[0]]; ok {
			return alias, true
		}
	}
	return code, false
}

// Name returns the display name for code.
func Name(code string) string {
	if strings.EqualFold(strings.TrimSpace(code), Auto) {
		return "Auto Detect"
	}
	resolved, ok := Resolve(code)
	if !ok {
		return Unknown
	}
	return Registry[resolved]
}

// Supported reports whether code (or a variant of it) is in the registry.
func Supported(code string) bool {
	_, ok := Resolve(code)
	return ok
}

// Codes returns all registry codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(Registry))
	for code := range Registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
