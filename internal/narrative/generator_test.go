package narrative

import (
	"context"
	"errors"
	"strings"
	"testing"

	"batterbox/internal/llm"
	"batterbox/internal/store"
)

type fakeClient struct {
	response string
	err      error

	lastPrompt string
	lastOpts   llm.Options
}

func (f *fakeClient) Generate(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	f.lastPrompt = prompt
	f.lastOpts = opts
	return f.response, f.err
}

func TestSeasonEvaluation(t *testing.T) {
	fake := &fakeClient{response: "준수한 시즌입니다."}
	g := NewGenerator(fake)

	out, err := g.SeasonEvaluation(context.Background(), "양의지", "타율: 0.314, 홈런: 17")
	if err != nil {
		t.Fatal(err)
	}
	if out != "준수한 시즌입니다." {
		t.Errorf("out = %q", out)
	}
	if !strings.Contains(fake.lastPrompt, "양의지") || !strings.Contains(fake.lastPrompt, "타율: 0.314") {
		t.Error("prompt missing player or stats")
	}
	if fake.lastOpts.Temperature != 0.8 || fake.lastOpts.MaxOutputTokens != 200 {
		t.Errorf("sampling options = %+v", fake.lastOpts)
	}
}

func TestTeamGroundedCapsRoster(t *testing.T) {
	fake := &fakeClient{response: "ok"}
	g := NewGenerator(fake)

	names := make([]string, 15)
	for i := range names {
		names[i] = "선수" + string(rune('A'+i))
	}
	if _, err := g.TeamGrounded(context.Background(), "두산 어때", "두산", names); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(fake.lastPrompt, names[10]) {
		t.Error("roster in prompt should be capped at 10 names")
	}
	if !strings.Contains(fake.lastPrompt, names[9]) {
		t.Error("prompt missing roster names")
	}
	if fake.lastOpts.MaxOutputTokens != 250 {
		t.Errorf("token cap = %d, want 250", fake.lastOpts.MaxOutputTokens)
	}
}

func TestTeamContextUppercasesTeam(t *testing.T) {
	fake := &fakeClient{response: "ok"}
	g := NewGenerator(fake)

	if _, err := g.TeamContext(context.Background(), "lg 분위기 어때", "lg"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(fake.lastPrompt, "(LG)") {
		t.Errorf("prompt should name the team uppercased: %s", fake.lastPrompt)
	}
	if fake.lastOpts.Temperature != 0.9 {
		t.Errorf("temperature = %v, want 0.9", fake.lastOpts.Temperature)
	}
}

func TestPositionSentenceDefaults(t *testing.T) {
	fake := &fakeClient{response: "네, 포수입니다."}
	g := NewGenerator(fake)

	if _, err := g.PositionSentence(context.Background(), "양의지 포수야?", "양의지", "두산 베어스", ""); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(fake.lastPrompt, "정보 없음") {
		t.Error("empty position should appear as 정보 없음")
	}
	if fake.lastOpts.Temperature != 1.0 || fake.lastOpts.MaxOutputTokens != 80 {
		t.Errorf("sampling options = %+v", fake.lastOpts)
	}
}

func TestStatAbsentByRole(t *testing.T) {
	cases := []struct {
		role store.Role
		want string
	}{
		{store.RoleBatter, "타자이기 때문에"},
		{store.RolePitcher, "투수이기 때문에"},
		{store.RoleUnknown, "현재 제공되지 않습니다"},
	}
	for _, tc := range cases {
		fake := &fakeClient{response: "ok"}
		g := NewGenerator(fake)
		if _, err := g.StatAbsent(context.Background(), "원태인", "타율", tc.role); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(fake.lastPrompt, tc.want) {
			t.Errorf("role %v: prompt %q missing %q", tc.role, fake.lastPrompt, tc.want)
		}
	}
}

func TestStatValuePrompt(t *testing.T) {
	fake := &fakeClient{response: "ok"}
	g := NewGenerator(fake)

	if _, err := g.StatValue(context.Background(), "김도영", "홈런", "32", "2025"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(fake.lastPrompt, "김도영 선수의 2025 시즌 홈런은 32입니다") {
		t.Errorf("prompt = %q", fake.lastPrompt)
	}
	if fake.lastOpts.MaxOutputTokens != 100 {
		t.Errorf("token cap = %d, want 100", fake.lastOpts.MaxOutputTokens)
	}
}

func TestGenerateErrorWrapped(t *testing.T) {
	fake := &fakeClient{err: errors.New("boom")}
	g := NewGenerator(fake)

	_, err := g.FreeForm(context.Background(), "야구 질문")
	if err == nil || !strings.Contains(err.Error(), "free-form") {
		t.Errorf("err = %v, want branch-tagged error", err)
	}
}

func TestPlayerGroundedOptions(t *testing.T) {
	fake := &fakeClient{response: "ok"}
	g := NewGenerator(fake)

	if _, err := g.PlayerGrounded(context.Background(), "김도영 잘해?", "김도영", "KIA 타이거즈", "내야수"); err != nil {
		t.Fatal(err)
	}
	if fake.lastOpts.Temperature != 0.7 || fake.lastOpts.MaxOutputTokens != 250 {
		t.Errorf("sampling options = %+v", fake.lastOpts)
	}
}
