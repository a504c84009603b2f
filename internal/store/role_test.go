package store

import "testing"

func TestDetectRoleFromRecord(t *testing.T) {
	cases := []struct {
		name    string
		headers []string
		row     []string
		want    Role
	}{
		{"batter by korean header", []string{"시즌", "타율", "홈런"}, []string{"2025", "0.302", "28"}, RoleBatter},
		{"pitcher by era", []string{"시즌", "타율", "ERA"}, []string{"2025", "-", "3.21"}, RolePitcher},
		{"batting checked first", []string{"AVG", "ERA"}, []string{"0.280", "4.50"}, RoleBatter},
		{"no metrics", []string{"시즌", "경기"}, []string{"2025", "-"}, RoleUnknown},
		{"short row", []string{"타율", "홈런"}, []string{}, RoleUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectRoleFromRecord(tc.headers, tc.row); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
