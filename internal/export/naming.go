package export

import (
	"strings"
	"unicode/utf8"
)

const (
	// FallbackTitle replaces titles that are too long or empty
	FallbackTitle = "ChatTitle"

	// MaxTitleLength is the exclusive upper bound on a title used verbatim
	MaxTitleLength = 100
)

var fileNameReplacer = strings.NewReplacer("/", "_", "\\", "_", "\x00", "_")

// SafeTitle returns title when it is shorter than MaxTitleLength characters,
// otherwise FallbackTitle.
func SafeTitle(title string) string {
	if utf8.RuneCountInString(title) >= MaxTitleLength {
		return FallbackTitle
	}
	return cleanFileName(title)
}

// DerivedName strips the "# " marker from a rendered title, keeps the part
// before the first "||" and trims it.
func DerivedName(title string) string {
	name := strings.Replace(title, "# ", "", 1)
	name, _, _ = strings.Cut(name, "||")
	return cleanFileName(strings.TrimSpace(name))
}

// cleanFileName keeps a name inside its project directory
func cleanFileName(name string) string {
	name = fileNameReplacer.Replace(name)
	if name == "" || name == "." || name == ".." {
		return FallbackTitle
	}
	return name
}
