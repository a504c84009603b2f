package store

// Role is the player category inferred from which metric family holds data.
type Role string

const (
	RoleBatter  Role = "타자"
	RolePitcher Role = "투수"
	RoleUnknown Role = "선수"
)

// Metric columns that identify each family. Korean header variants appear in
// the live career table, English ones in the static season table.
var (
	battingKeys  = []string{"AVG", "타율", "HR", "홈런"}
	pitchingKeys = []string{"ERA", "평균자책점", "WHIP"}
)

// DetectRole infers a role from a cell accessor. Batting metrics are checked
// first, matching the source-data convention for two-way entries.
func DetectRole(get func(key string) string) Role {
	for _, key := range battingKeys {
		if _, ok := ParseFloat(get(key)); ok {
			return RoleBatter
		}
	}
	for _, key := range pitchingKeys {
		if _, ok := ParseFloat(get(key)); ok {
			return RolePitcher
		}
	}
	return RoleUnknown
}

// DetectRoleFromRecord infers a role from a column-headed record row.
func DetectRoleFromRecord(headers, row []string) Role {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}
	return DetectRole(func(key string) string {
		i, ok := index[key]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	})
}
