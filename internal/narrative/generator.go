// Package narrative turns structured lookup results into conversational
// Korean sentences. Each branch carries its own prompt template and sampling
// settings; factual claims always come from the caller's data, never from the
// model's own knowledge.
package narrative

import (
	"context"
	"fmt"
	"strings"

	"batterbox/internal/llm"
	"batterbox/internal/logging"
	"batterbox/internal/store"
)

// Generator produces answer sentences through a generative client.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a Generator backed by the given client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

func (g *Generator) generate(ctx context.Context, branch, prompt string, opts llm.Options) (string, error) {
	text, err := g.client.Generate(ctx, prompt, opts)
	if err != nil {
		logging.GatewayError("narrative %s failed: %v", branch, err)
		return "", fmt.Errorf("narrative %s: %w", branch, err)
	}
	return text, nil
}

// SeasonEvaluation writes a commentator-style evaluation of a player's
// season from the given stats summary.
func (g *Generator) SeasonEvaluation(ctx context.Context, name, statsText string) (string, error) {
	prompt := fmt.Sprintf(`당신은 한국 프로야구 해설위원입니다.
아래는 %s 선수의 주요 성적 요약입니다.
이를 바탕으로 2~3문장 정도의 자연스러운 해설 문장을 작성해주세요.

- 첫 문장은 객관적인 시즌 평가
- 두 번째 문장은 장점 또는 주목할 점
- 세 번째 문장은 보완점 또는 향후 기대
- '~입니다.', '~로 평가됩니다.' 등의 자연스러운 말투

[성적 요약]
%s`, name, statsText)

	return g.generate(ctx, "season-evaluation", prompt, llm.Options{Temperature: 0.8, MaxOutputTokens: 200})
}

// TeamGrounded answers a team question using only the stored roster names.
func (g *Generator) TeamGrounded(ctx context.Context, userInput, team string, names []string) (string, error) {
	if len(names) > 10 {
		names = names[:10]
	}
	prompt := fmt.Sprintf(`사용자가 이렇게 물었습니다:
"%s"

아래는 데이터베이스에서 찾은 '%s' 구단 소속 선수 목록입니다:
[%s]

위 선수 데이터를 바탕으로 질문에 맞게 대답하세요.
- 반드시 목록에 포함된 선수 중에서만 언급하세요.
- 은퇴 선수나 목록 외의 선수는 절대 언급하지 마세요.
- 문장은 2~3문장으로 자연스럽고 사실적인 톤으로 작성하세요.
- '~입니다.' 또는 '~하고 있습니다.'로 끝나게 하세요.`, userInput, team, strings.Join(names, ", "))

	return g.generate(ctx, "team-grounded", prompt, llm.Options{Temperature: 0.8, MaxOutputTokens: 250})
}

// TeamUngrounded answers a team question when the roster has no players for
// that team, staying in general league context.
func (g *Generator) TeamUngrounded(ctx context.Context, userInput, team string) (string, error) {
	prompt := fmt.Sprintf(`사용자가 이렇게 물었습니다:
"%s"

이 질문은 특정 팀(%s)에 대한 질문입니다.
하지만 데이터베이스에서 해당 팀 소속 선수를 찾을 수 없습니다.
한국 프로야구(KBO)의 최근 흐름과 일반 팀 분위기를 기준으로
자연스럽고 사실적인 2~3문장으로 답변하세요.`, userInput, team)

	return g.generate(ctx, "team-ungrounded", prompt, llm.Options{Temperature: 0.8, MaxOutputTokens: 200})
}

// TeamContext answers an analysis-style team question reached after name
// resolution failed but a team token was present.
func (g *Generator) TeamContext(ctx context.Context, userInput, team string) (string, error) {
	prompt := fmt.Sprintf(`사용자가 이렇게 물었습니다:
"%s"

이 질문은 특정 팀(%s)과 관련된 분석형 질문입니다.
당신은 한국 프로야구 전문가이자 해설자입니다.
팀의 최근 경기력, 주목받는 선수, 분위기, 팬 평가 등을 기반으로
사실적인 1~2문장으로 자연스럽게 답변하세요.
너무 딱딱하지 않게, 정중한 문체로, 문장은 '~입니다'로 끝나게.`, userInput, strings.ToUpper(team))

	return g.generate(ctx, "team-context", prompt, llm.Options{Temperature: 0.9, MaxOutputTokens: 200})
}

// FreeForm answers a general league question with no recognized player or
// team.
func (g *Generator) FreeForm(ctx context.Context, userInput string) (string, error) {
	prompt := fmt.Sprintf(`사용자가 이렇게 물었습니다:
"%s"

특정 선수 이름이나 팀 이름이 명확하지 않은 일반적인 KBO 관련 질문입니다.
당신은 한국 프로야구 해설자입니다.
전문가답지만 자연스럽게 1~2문장으로 답변하세요.`, userInput)

	return g.generate(ctx, "free-form", prompt, llm.Options{Temperature: 0.9, MaxOutputTokens: 200})
}

// PositionSentence writes a one-sentence answer about a player's position,
// confirming or gently correcting the user's assumption.
func (g *Generator) PositionSentence(ctx context.Context, userInput, name, team, position string) (string, error) {
	if position == "" {
		position = "정보 없음"
	}
	prompt := fmt.Sprintf(`너는 야구 전문가야.
사용자가 "%s" 라고 물었어.

아래 정보를 참고해서 자연스럽고 사람처럼 한 문장으로 대답해줘:
- 선수 이름: %s
- 소속 팀: %s
- 실제 포지션: %s

제약사항:
- 문장 구조를 고정하지 말고 자유롭게 표현해.(존댓말은 필수)
- '역할'을 물어보면 '네'나 '아니요'는 앞에 붙이면 안돼.
- 질문이 맞으면 '네,' 또는 '맞아요,'로 자연스럽게 시작할 수도 있어.
- 다르면 '아니요,' 또는 부드럽게 교정하는 문장으로 시작해도 돼.
- 어색한 형식적 표현 없이 일상적인 말투로 한 문장만 생성해.
- 사용자가 000 ~야? 이렇게 물어봐도 생성할 때는 선수 이름 뒤에 '선수'를 붙여.`, userInput, name, team, position)

	return g.generate(ctx, "position", prompt, llm.Options{Temperature: 1.0, MaxOutputTokens: 80})
}

// StatValue phrases a single season metric as one natural sentence.
func (g *Generator) StatValue(ctx context.Context, name, column, value, season string) (string, error) {
	prompt := fmt.Sprintf("%s 선수의 %s 시즌 %s은 %s입니다. 자연스럽게 한 문장으로 표현해주세요.",
		name, season, column, value)
	return g.generate(ctx, "stat-value", prompt, llm.Options{Temperature: 0.8, MaxOutputTokens: 100})
}

// StatAbsent phrases the absence of a metric, by role: a batter has no
// pitching line and vice versa.
func (g *Generator) StatAbsent(ctx context.Context, name, column string, role store.Role) (string, error) {
	var prompt string
	switch role {
	case store.RoleBatter:
		prompt = fmt.Sprintf("%s 선수는 타자이기 때문에 '%s' 기록은 제공되지 않습니다. 자연스럽게 한 문장으로 표현해주세요.", name, column)
	case store.RolePitcher:
		prompt = fmt.Sprintf("%s 선수는 투수이기 때문에 '%s' 기록은 제공되지 않습니다. 자연스럽게 한 문장으로 표현해주세요.", name, column)
	default:
		prompt = fmt.Sprintf("%s 선수의 '%s' 데이터가 현재 제공되지 않습니다. 자연스럽게 한 문장으로 표현해주세요.", name, column)
	}
	return g.generate(ctx, "stat-absent", prompt, llm.Options{Temperature: 0.8, MaxOutputTokens: 100})
}

// PlayerGrounded answers a free-form question about one stored player using
// only that player's data.
func (g *Generator) PlayerGrounded(ctx context.Context, userInput, name, team, position string) (string, error) {
	if team == "" {
		team = "정보 없음"
	}
	if position == "" {
		position = "정보 없음"
	}
	prompt := fmt.Sprintf(`사용자가 이렇게 물었습니다:
"%s"

아래는 실제 데이터베이스에 존재하는 선수입니다.
[선수명: %s, 소속팀: %s, 포지션: %s]

오직 이 선수의 데이터만 참고해 대답하세요.
- 데이터베이스 외의 선수는 절대 언급하지 않습니다.
- 은퇴 선수나 과거 선수, 외국인 선수는 언급하지 않습니다.
- 자연스럽고 사실적인 톤으로 2~3문장 작성하세요.
- 문장은 '~입니다.' 또는 '~하고 있습니다.'로 끝내세요.`, userInput, name, team, position)

	return g.generate(ctx, "player-grounded", prompt, llm.Options{Temperature: 0.7, MaxOutputTokens: 250})
}

// LeagueGeneric answers in general league context without naming any player.
func (g *Generator) LeagueGeneric(ctx context.Context, userInput string) (string, error) {
	prompt := fmt.Sprintf(`사용자가 이렇게 물었습니다:
"%s"

질문에 포함된 이름은 현재 선수 데이터베이스에 없습니다.
대신 한국 프로야구(KBO) 전체 흐름, 구단 분위기, 경기력 등을 기준으로
사실적인 범위 안에서 2~3문장으로 답변하세요.
특정 선수 이름은 언급하지 않습니다.
자연스럽고 전문가다운 문체로 '~입니다.'로 끝내세요.`, userInput)

	return g.generate(ctx, "league-generic", prompt, llm.Options{Temperature: 0.8, MaxOutputTokens: 250})
}
