package store

import "strings"

// teamAliases maps every spelling a user might type (abbreviation,
// transliteration, colloquial nickname) to the canonical team name used in
// the reference tables.
var teamAliases = map[string]string{
	"LG":     "LG",
	"엘지":     "LG",
	"KT":     "KT",
	"케이티":    "KT",
	"SSG":    "SSG",
	"에스에스지":  "SSG",
	"쓱":      "SSG",
	"KIA":    "KIA",
	"기아":     "KIA",
	"NC":     "NC",
	"엔씨":     "NC",
	"롯데":     "롯데",
	"두산":     "두산",
	"삼성":     "삼성",
	"한화":     "한화",
	"키움":     "키움",
}

// aliasOrder fixes the scan order: longest aliases first so "에스에스지" wins
// over "쓱" and lookups stay deterministic across runs.
var aliasOrder = func() []string {
	order := make([]string, 0, len(teamAliases))
	for alias := range teamAliases {
		order = append(order, alias)
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0; j-- {
			a, b := order[j-1], order[j]
			if len(b) > len(a) || (len(b) == len(a) && b < a) {
				order[j-1], order[j] = b, a
			} else {
				break
			}
		}
	}
	return order
}()

// CanonicalTeam resolves a team token to its canonical name. Unknown tokens
// pass through unchanged, matching how the source data treats them.
func CanonicalTeam(token string) string {
	if std, ok := teamAliases[strings.ToUpper(strings.TrimSpace(token))]; ok {
		return std
	}
	if std, ok := teamAliases[strings.TrimSpace(token)]; ok {
		return std
	}
	return strings.TrimSpace(token)
}

// FindTeamIn scans free text for any team alias and returns the canonical
// team name of the first (longest) hit.
func FindTeamIn(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, alias := range aliasOrder {
		if strings.Contains(lower, strings.ToLower(alias)) {
			return teamAliases[alias], true
		}
	}
	return "", false
}
