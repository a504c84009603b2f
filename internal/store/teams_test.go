package store

import "testing"

func TestCanonicalTeam(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"lg", "LG"},
		{"엘지", "LG"},
		{"쓱", "SSG"},
		{"에스에스지", "SSG"},
		{"기아", "KIA"},
		{"키움", "키움"},
		{" 두산 ", "두산"},
		{"상무", "상무"}, // unknown passes through
	}
	for _, tc := range cases {
		if got := CanonicalTeam(tc.in); got != tc.want {
			t.Errorf("CanonicalTeam(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFindTeamIn(t *testing.T) {
	cases := []struct {
		in       string
		wantTeam string
		wantOK   bool
	}{
		{"엘지 요즘 어때", "LG", true},
		{"ssg 뉴스 보여줘", "SSG", true},
		{"두산 최근 소식", "두산", true},
		{"양의지 성적 알려줘", "", false},
	}
	for _, tc := range cases {
		team, ok := FindTeamIn(tc.in)
		if ok != tc.wantOK || team != tc.wantTeam {
			t.Errorf("FindTeamIn(%q) = %q, %v, want %q, %v", tc.in, team, ok, tc.wantTeam, tc.wantOK)
		}
	}
}

func TestFindTeamInPrefersLongerAlias(t *testing.T) {
	// "에스에스지" contains no shorter alias, but the scan must not stop at
	// a substring alias of another team.
	team, ok := FindTeamIn("에스에스지 팬인데 분위기 어때")
	if !ok || team != "SSG" {
		t.Fatalf("FindTeamIn = %q, %v, want SSG", team, ok)
	}
}
