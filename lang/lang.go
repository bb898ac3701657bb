// Package lang maps between host locale codes and the language codes used by
// the Tesseract recognition engine.
//
// Both directions of the catalog are plain process-wide tables, fully
// populated at package init. Lookups never mutate anything, so the tables
// are safe for concurrent use.
package lang

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Default is the engine language used when no mapping exists for a locale.
const Default = "eng"

// localesToTesseract maps host locale codes to engine language codes.
var localesToTesseract = map[string]string{
	"bg":    "bul",
	"ca":    "cat",
	"cs":    "ces",
	"zh_CN": "chi_tra",
	"da":    "dan",
	"de":    "deu",
	"el":    "ell",
	"en":    "eng",
	"fi":    "fin",
	"fr":    "fra",
	"hu":    "hun",
	"id":    "ind",
	"it":    "ita",
	"ja":    "jpn",
	"ko":    "kor",
	"lv":    "lav",
	"lt":    "lit",
	"nl":    "nld",
	"nb_NO": "nor",
	"pl":    "pol",
	"pt":    "por",
	"ro":    "ron",
	"ru":    "rus",
	"sk":    "slk",
	"sl":    "slv",
	"es":    "spa",
	"sr":    "srp",
	"sv":    "swe",
	"tg":    "tgl",
	"tr":    "tur",
	"uk":    "ukr",
	"vi":    "vie",
}

// tesseractToLocales is the inverse catalog, built once at startup.
var tesseractToLocales = make(map[string]string, len(localesToTesseract))

func init() {
	for locale, code := range localesToTesseract {
		tesseractToLocales[code] = locale
	}
}

// ToTesseract returns the engine language code for a host locale. Locales
// with a region qualifier fall back to their bare language code ("pt_BR"
// resolves via "pt"); anything unknown resolves to [Default].
func ToTesseract(locale string) string {
	if code, ok := localesToTesseract[locale]; ok {
		return code
	}
	if i := strings.IndexByte(locale, '_'); i > 0 {
		if code, ok := localesToTesseract[locale[:i]]; ok {
			return code
		}
	}
	return Default
}

// FromTesseract returns the host locale for an engine language code.
func FromTesseract(code string) (string, bool) {
	locale, ok := tesseractToLocales[code]
	return locale, ok
}

// Describe returns a human-readable name for an engine language code, in the
// language itself where one is known. Unknown codes are returned unchanged.
func Describe(code string) string {
	locale, ok := tesseractToLocales[code]
	if !ok {
		return code
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}

// Supported returns the engine language codes in the catalog, sorted.
func Supported() []string {
	codes := make([]string, 0, len(tesseractToLocales))
	for code := range tesseractToLocales {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
