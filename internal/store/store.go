package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"batterbox/internal/logging"
	"batterbox/internal/table"
)

// Default file names inside the data directory.
const (
	ProfilesFile = "player_profiles.csv"
	StatsFile    = "player_stats.csv"
	SocialFile   = "team_social.csv"
)

// Store holds the three reference tables. Read-only after Load; every lookup
// is a pure function over the loaded data.
type Store struct {
	profiles       []PlayerProfile
	profileColumns []string
	stats          []SeasonStat
	social         map[string]string
	socialTeams    []string // source order, for deterministic scans
	names          []string // unique display names, first-appearance order
}

// Load reads the three CSV tables from dir. Any missing or malformed file
// fails the whole load; there is no partial state.
func Load(dir string) (*Store, error) {
	s := &Store{social: make(map[string]string)}

	if err := s.loadProfiles(filepath.Join(dir, ProfilesFile)); err != nil {
		return nil, err
	}
	if err := s.loadStats(filepath.Join(dir, StatsFile)); err != nil {
		return nil, err
	}
	if err := s.loadSocial(filepath.Join(dir, SocialFile)); err != nil {
		return nil, err
	}

	logging.Boot("reference store loaded: %d profiles, %d stat rows, %d team links",
		len(s.profiles), len(s.stats), len(s.social))
	return s, nil
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) < 1 {
		return nil, nil, fmt.Errorf("parse %s: empty table", path)
	}
	header := records[0]
	return header, records[1:], nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

func (s *Store) loadProfiles(path string) error {
	header, rows, err := readCSV(path)
	if err != nil {
		return err
	}
	for _, col := range []string{ColPlayerID, ColName, ColTeam} {
		if columnIndex(header, col) < 0 {
			return fmt.Errorf("parse %s: missing column %q", path, col)
		}
	}

	s.profileColumns = make([]string, len(header))
	for i, h := range header {
		s.profileColumns[i] = strings.TrimSpace(h)
	}

	seen := make(map[string]struct{})
	for _, row := range rows {
		attrs := make(map[string]string, len(header))
		for i, col := range s.profileColumns {
			if i < len(row) {
				attrs[col] = strings.TrimSpace(row[i])
			}
		}
		p := PlayerProfile{
			ID:       attrs[ColPlayerID],
			Name:     attrs[ColName],
			Team:     attrs[ColTeam],
			Number:   attrs[ColNumber],
			Position: attrs[ColPosition],
			Attrs:    attrs,
		}
		s.profiles = append(s.profiles, p)
		if name := Clean(p.Name); name != "" {
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				s.names = append(s.names, name)
			}
		}
	}
	return nil
}

func (s *Store) loadStats(path string) error {
	header, rows, err := readCSV(path)
	if err != nil {
		return err
	}
	idIdx := columnIndex(header, ColPlayerID)
	if idIdx < 0 {
		return fmt.Errorf("parse %s: missing column %q", path, ColPlayerID)
	}
	seasonIdx := columnIndex(header, "season")

	for _, row := range rows {
		stat := SeasonStat{Metrics: make(map[string]string, len(header))}
		for i, h := range header {
			if i >= len(row) {
				continue
			}
			col := strings.TrimSpace(h)
			val := strings.TrimSpace(row[i])
			switch {
			case i == idIdx:
				stat.PlayerID = val
			case i == seasonIdx:
				stat.Season = val
			default:
				stat.Metrics[col] = val
			}
		}
		s.stats = append(s.stats, stat)
	}
	return nil
}

func (s *Store) loadSocial(path string) error {
	header, rows, err := readCSV(path)
	if err != nil {
		return err
	}
	teamIdx := columnIndex(header, "team")
	urlIdx := columnIndex(header, "instagram")
	if teamIdx < 0 || urlIdx < 0 {
		return fmt.Errorf("parse %s: missing team/instagram columns", path)
	}
	for _, row := range rows {
		if teamIdx >= len(row) || urlIdx >= len(row) {
			continue
		}
		team := Clean(row[teamIdx])
		if team == "" {
			continue
		}
		if _, dup := s.social[team]; !dup {
			s.socialTeams = append(s.socialTeams, team)
		}
		s.social[team] = strings.TrimSpace(row[urlIdx])
	}
	return nil
}

// Names returns all distinct display names in first-appearance order.
func (s *Store) Names() []string {
	return s.names
}

// KnownName reports whether a token is a stored display name.
func (s *Store) KnownName(token string) bool {
	for _, n := range s.names {
		if n == token {
			return true
		}
	}
	return false
}

// FindByExactName returns every profile whose display name matches exactly.
// More than one row means homonym players.
func (s *Store) FindByExactName(name string) []PlayerProfile {
	var out []PlayerProfile
	for _, p := range s.profiles {
		if Clean(p.Name) == name {
			out = append(out, p)
		}
	}
	return out
}

// FindByTeamAndNumber resolves a (team, jersey number) pair to a profile.
// The team matches by containment against the stored affiliation, the number
// after normalization on both sides.
func (s *Store) FindByTeamAndNumber(team, number string) (PlayerProfile, bool) {
	want := NormalizeNumber(number)
	for _, p := range s.profiles {
		if strings.Contains(p.Team, team) && NormalizeNumber(p.Number) == want {
			logging.StoreDebug("team+number hit: %s %s -> %s", team, want, p.Name)
			return p, true
		}
	}
	return PlayerProfile{}, false
}

// PlayersForTeam returns every profile whose affiliation contains the team.
func (s *Store) PlayersForTeam(team string) []PlayerProfile {
	var out []PlayerProfile
	for _, p := range s.profiles {
		if strings.Contains(p.Team, team) {
			out = append(out, p)
		}
	}
	return out
}

// StatsFor returns the season stat rows joined on player identifier.
func (s *Store) StatsFor(playerID string) []SeasonStat {
	var out []SeasonStat
	for _, st := range s.stats {
		if st.PlayerID == playerID {
			out = append(out, st)
		}
	}
	return out
}

// SocialLinkFor returns a team's social-media URL, if one is stored.
func (s *Store) SocialLinkFor(team string) (string, bool) {
	url, ok := s.social[team]
	return url, ok
}

// SocialTeams returns the teams with a stored social link, in source order.
func (s *Store) SocialTeams() []string {
	return s.socialTeams
}

// FindSocialTeamIn scans text for any team that has a stored social link.
func (s *Store) FindSocialTeamIn(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, team := range s.socialTeams {
		if strings.Contains(lower, strings.ToLower(team)) {
			return team, true
		}
	}
	return "", false
}

// ProfileTable renders one profile as a two-column 항목/내용 table in source
// column order, with sentinel values blanked.
func (s *Store) ProfileTable(p PlayerProfile) *table.Table {
	t := table.New("", []string{"항목", "내용"})
	for _, col := range s.profileColumns {
		t.AddRow(col, Clean(p.Attrs[col]))
	}
	return t
}
