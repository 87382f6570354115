package country

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Names longer than this are replaced by the code.
const maxNameLength = 10

var regions = display.English.Regions()

// Name returns the English name of an ISO 3166 alpha-2 code, or the code
// itself when it is unknown or the name is too long.
func Name(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}

	region, err := language.ParseRegion(strings.ToUpper(code))
	if err != nil || !region.IsCountry() {
		return code
	}

	name := regions.Name(region)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return code
	}

	return name
}
