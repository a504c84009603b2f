// Package store implements the read-only reference data store: player
// profiles, season statistics, and team social-media links, loaded once at
// process start from CSV tables.
package store

// Column names of the profile table that carry routing semantics. The
// remaining columns are opaque string attributes rendered as-is.
const (
	ColPlayerID = "playerId"
	ColName     = "name"
	ColTeam     = "team"
	ColNumber   = "등번호"
	ColPosition = "포지션"
)

// PlayerProfile is one row of the player profile table. ID is the only
// stable join key; Name is not unique (homonym players share a name but
// differ in team and number).
type PlayerProfile struct {
	ID       string
	Name     string
	Team     string
	Number   string
	Position string

	// Attrs holds every column of the source row, keyed by column name.
	// Column order lives on the Store so profile tables render in source
	// order.
	Attrs map[string]string
}

// Attr returns a profile attribute with sentinel tokens normalized away.
func (p PlayerProfile) Attr(column string) string {
	return Clean(p.Attrs[column])
}

// SeasonStat is one player's metric row for one tracked season. Exactly one
// of the two metric families (batting or pitching) is populated.
type SeasonStat struct {
	PlayerID string
	Season   string
	Metrics  map[string]string
}

// Role returns the player category inferred from which metric family is
// populated.
func (s SeasonStat) Role() Role {
	return DetectRole(func(key string) string { return s.Metrics[key] })
}
