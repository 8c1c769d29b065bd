package league

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
)

// NormalizeName trims a league name and returns it together with its
// case-folded uniqueness key.
func NormalizeName(name string) (display, key string, err error) {
	display = strings.Join(strings.Fields(name), " ")
	n := utf8.RuneCountInString(display)
	if n < domain.LeagueNameMinLength || n > domain.LeagueNameMaxLength {
		return "", "", fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNameLength)
	}
	return display, NameKey(display), nil
}

// NameKey returns the lookup key for a league name
func NameKey(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}
