package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"batterbox/internal/intent"
	"batterbox/internal/logging"
	"batterbox/internal/naver"
	"batterbox/internal/store"
)

// Keyword triggers of the player sub-cascade, checked in this order.
var (
	recentGameWords = []string{"최근 경기", "최근 성적", "최근 기록", "최근 10경기"}

	summaryWords = []string{"성적 요약", "성적 평가", "2025 성적 요약", "올해 성적 평가", "올해 성적 요약"}

	seasonStatWords     = []string{"2025 성적", "2025 통산기록", "시즌 성적", "올해 성적", "시즌 기록", "성적"}
	summaryExcludeWords = []string{"요약", "평가"}

	playerNewsWords = []string{
		"최근 소식", "소식", "뉴스", "기사", "근황", "최근 이슈", "요즘 어때",
		"요즘 뭐해", "요즘 소식", "최근 근황", "인터뷰", "최근 인터뷰", "요즘 근황",
	}

	positionBroadWords = []string{
		"루수", "포수", "외야수", "내야수", "지명타자", "유격수",
		"1루", "2루", "3루", "야수", "투수", "타자",
		"포지션", "역할", "수야", "야?", "뭐하는", "하는 선수", "무슨", "수비",
	}

	statMetricWords = []string{
		"성적", "기록", "타율", "홈런", "평균자책", "ops", "이닝", "세이브", "홀드",
		"승", "패", "삼진", "출루율", "타점", "득점", "볼넷", "피홈런",
	}

	profileTriggerWords = []string{"선수에 대해 알려줘", "선수 알려줘", "알려줘", "누구야", "정보", "소개"}
	profileExcludeWords = []string{"성적", "홈런", "요약", "평가", "뉴스", "근황", "방어율", "통산기록"}

	freeformGuardWords = []string{
		"성적", "기록", "타율", "홈런", "평균자책", "ops", "이닝", "세이브", "홀드",
		"승", "패", "삼진", "출루율", "타점", "득점", "볼넷", "피홈런",
		"뉴스", "근황", "인터뷰", "포지션", "팀", "번호", "등번호", "프로필",
	}
)

// Evaluation summary draws from these career columns, in this order.
var summaryColumns = []string{"타율", "홈런", "타점", "OPS", "ERA", "삼진", "WHIP"}

// profileField pairs a profile column with the words that ask for it.
type profileField struct {
	column   string
	keywords []string
}

var profileFields = []profileField{
	{"생년월일", []string{"생년월일", "생일"}},
	{"등번호", []string{"등번호", "번호"}},
	{"신장/체중", []string{"키", "신장", "몸무게", "체중"}},
	{"team", []string{"팀", "구단"}},
	{"포지션", []string{"포지션"}},
	{"입단년도", []string{"입단년도", "데뷔년도"}},
	{"연봉", []string{"연봉"}},
	{"지명순위", []string{"지명순위"}},
	{"경력", []string{"경력", "학교", "출신학교"}},
	{"입단 계약금", []string{"입단 계약금", "입단계약금", "계약금"}},
}

// playerQuestion runs the sub-cascade for a question resolved to one player.
func (r *Router) playerQuestion(ctx context.Context, userInput, lower, name string) Reply {
	profiles := r.store.FindByExactName(name)
	if len(profiles) == 0 {
		return Reply{Content: "질문을 다시 입력해주세요. (선수 이름을 정확히 입력해주세요)"}
	}
	p := profiles[0]

	if containsAny(userInput, recentGameWords) {
		return r.recentGames(ctx, p)
	}
	if containsAny(userInput, summaryWords) {
		return r.seasonSummary(ctx, p)
	}
	if containsAny(userInput, seasonStatWords) && !containsAny(userInput, summaryExcludeWords) {
		return r.seasonStats(ctx, p)
	}
	if containsAny(userInput, playerNewsWords) {
		return r.playerNews(ctx, p)
	}
	if strings.Contains(userInput, "포지션") {
		return r.positionExact(p)
	}
	if containsAny(userInput, positionBroadWords) {
		return r.positionBroad(ctx, userInput, p)
	}
	if reply, ok := r.profileAttribute(userInput, p); ok {
		return reply
	}
	if containsAny(lower, statMetricWords) {
		return r.statKeyword(ctx, userInput, p)
	}
	if reply, ok := r.profileCard(userInput, name, profiles); ok {
		return reply
	}
	if !containsAny(lower, freeformGuardWords) {
		return r.playerFreeform(ctx, userInput)
	}

	return Reply{
		Content: fmt.Sprintf("📌 %s 선수의 기본 프로필입니다.", name),
		Profile: r.store.ProfileTable(p),
		Intent:  intent.Profile,
	}
}

func (r *Router) recentGames(ctx context.Context, p store.PlayerProfile) Reply {
	t, err := r.live.RecentGames(ctx, p.ID)
	if err != nil {
		logging.RouterError("recent games for %s: %v", p.Name, err)
		return Reply{Content: fmt.Sprintf("❌ %s 선수의 최근 경기 기록을 불러올 수 없습니다.", p.Name), Intent: intent.Stats}
	}
	return Reply{
		Content: fmt.Sprintf("📊 %s 선수의 최근 경기 기록입니다.", p.Name),
		Table:   t,
		HTML:    t.RenderHTML(),
		Intent:  intent.Stats,
	}
}

func (r *Router) seasonSummary(ctx context.Context, p store.PlayerProfile) Reply {
	t, err := r.live.CareerStats(ctx, p.ID, r.season)
	if err != nil || t.Len() == 0 {
		logging.RouterError("season summary for %s: %v", p.Name, err)
		return Reply{Content: fmt.Sprintf("❌ %s 선수의 %s 시즌 성적 데이터를 불러올 수 없습니다.", p.Name, r.season), Intent: intent.Stats}
	}

	var parts []string
	for _, col := range summaryColumns {
		if val := strings.TrimSpace(t.Value(0, col)); val != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", col, val))
		}
	}
	statsText := strings.Join(parts, ", ")

	summary, err := r.narrator.SeasonEvaluation(ctx, p.Name, statsText)
	if err != nil {
		return Reply{
			Content: fmt.Sprintf("📊 %s 선수의 %s 시즌 주요 성적: %s", p.Name, r.season, statsText),
			Intent:  intent.Stats,
		}
	}
	return Reply{
		Content: fmt.Sprintf("📊 %s 선수의 %s 시즌 AI 성적 요약입니다.\n\n🎯 %s", p.Name, r.season, summary),
		Intent:  intent.Stats,
	}
}

func (r *Router) seasonStats(ctx context.Context, p store.PlayerProfile) Reply {
	t, err := r.live.CareerStats(ctx, p.ID, r.season)
	if err != nil || t.Len() == 0 {
		logging.RouterError("season stats for %s: %v", p.Name, err)
		return Reply{Content: fmt.Sprintf("❌ %s 선수의 %s 통산기록을 불러올 수 없습니다.", p.Name, r.season), Intent: intent.Stats}
	}
	return Reply{
		Content: fmt.Sprintf("📊 %s 선수의 %s 시즌 기록입니다.", p.Name, r.season),
		Table:   t,
		HTML:    t.RenderHTML(),
		Intent:  intent.Stats,
	}
}

func (r *Router) playerNews(ctx context.Context, p store.PlayerProfile) Reply {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📢 %s 선수의 최근 소식입니다.\n\n", p.Name)

	if team, ok := r.store.FindSocialTeamIn(p.Team); ok {
		if url, found := r.store.SocialLinkFor(team); found {
			fmt.Fprintf(&sb, "📸 구단 인스타그램: [바로가기](%s)\n\n", url)
		}
	}

	items, err := r.news.Search(ctx, naver.PlayerNewsQuery(p.Name))
	if err != nil {
		logging.GatewayError("player news for %s: %v", p.Name, err)
		items = nil
	}
	if len(items) > 0 {
		sb.WriteString("📰 야구 관련 뉴스:\n")
		for i, item := range items {
			fmt.Fprintf(&sb, "[%d] [%s](%s)\n", i+1, item.Title, item.Link)
		}
	} else {
		sb.WriteString("📰 관련 뉴스가 없습니다. 대신 구단 인스타그램을 확인해보세요!")
	}
	return Reply{Content: sb.String(), Intent: intent.News}
}

func (r *Router) positionExact(p store.PlayerProfile) Reply {
	pos := store.Clean(p.Position)
	if pos == "" {
		return Reply{Content: fmt.Sprintf("%s 선수의 포지션 정보는 없습니다.", p.Name), Intent: intent.Position}
	}
	return Reply{Content: fmt.Sprintf("%s 선수의 포지션은 %s입니다.", p.Name, pos), Intent: intent.Position}
}

func (r *Router) positionBroad(ctx context.Context, userInput string, p store.PlayerProfile) Reply {
	text, err := r.narrator.PositionSentence(ctx, userInput, p.Name, store.Clean(p.Team), store.Clean(p.Position))
	if err != nil {
		return r.positionExact(p)
	}
	return Reply{Content: text, Intent: intent.Position}
}

// profileAttribute answers a question about one profile column.
func (r *Router) profileAttribute(userInput string, p store.PlayerProfile) (Reply, bool) {
	for _, field := range profileFields {
		if !containsAny(userInput, field.keywords) {
			continue
		}
		val := p.Attr(field.column)
		if val == "" {
			return Reply{Content: fmt.Sprintf("%s 선수의 %s 정보는 없습니다.", p.Name, field.column), Intent: intent.Profile}, true
		}
		return Reply{Content: fmt.Sprintf("%s 선수의 %s은 %s입니다.", p.Name, field.column, val), Intent: intent.Profile}, true
	}
	return Reply{}, false
}

// statKeyword answers a question about a single season metric by matching a
// live career column name against the question text.
func (r *Router) statKeyword(ctx context.Context, userInput string, p store.PlayerProfile) Reply {
	t, err := r.live.CareerStats(ctx, p.ID, r.season)
	if err != nil {
		logging.RouterError("stat lookup for %s: %v", p.Name, err)
		if errors.Is(err, naver.ErrNotFound) {
			return Reply{Content: fmt.Sprintf("❌ %s 선수의 %s 시즌 성적 데이터를 불러올 수 없습니다.", p.Name, r.season), Intent: intent.Stats}
		}
		return Reply{Content: fmt.Sprintf("❌ 성적 데이터를 불러오는 중 오류 발생: %v", err), Intent: intent.Stats}
	}
	if t.Len() == 0 {
		return Reply{Content: fmt.Sprintf("❌ %s 선수의 %s 시즌 성적 데이터를 불러올 수 없습니다.", p.Name, r.season), Intent: intent.Stats}
	}

	lowerInput := strings.ToLower(userInput)
	foundCol := ""
	for _, col := range t.Headers {
		col = strings.TrimSpace(col)
		if col == "" {
			continue
		}
		if strings.Contains(userInput, col) || strings.Contains(lowerInput, strings.ToLower(col)) {
			foundCol = col
			break
		}
	}

	role := store.DetectRoleFromRecord(t.Headers, t.Rows[0])

	if foundCol == "" {
		switch role {
		case store.RoleBatter:
			return Reply{Content: fmt.Sprintf("⚾ %s 선수는 타자이기 때문에 해당 기록은 존재하지 않습니다.", p.Name), Intent: intent.Stats}
		case store.RolePitcher:
			return Reply{Content: fmt.Sprintf("⚾ %s 선수는 투수이기 때문에 해당 기록은 존재하지 않습니다.", p.Name), Intent: intent.Stats}
		default:
			return Reply{Content: fmt.Sprintf("⚾ %s 선수의 해당 지표는 현재 데이터에 없습니다.", p.Name), Intent: intent.Stats}
		}
	}

	val := strings.TrimSpace(t.Value(0, foundCol))
	if val == "" || val == "-" {
		text, err := r.narrator.StatAbsent(ctx, p.Name, foundCol, role)
		if err != nil {
			return Reply{Content: fmt.Sprintf("%s 선수의 '%s' 기록은 제공되지 않습니다.", p.Name, foundCol), Intent: intent.Stats}
		}
		return Reply{Content: text, Intent: intent.Stats}
	}

	text, err := r.narrator.StatValue(ctx, p.Name, foundCol, val, r.season)
	if err != nil {
		return Reply{Content: fmt.Sprintf("%s 선수의 %s 시즌 %s은 %s입니다.", p.Name, r.season, foundCol, val), Intent: intent.Stats}
	}
	return Reply{Content: text, Intent: intent.Stats}
}

// profileCard renders the full profile, with a disambiguation menu when the
// name belongs to more than one player.
func (r *Router) profileCard(userInput, name string, profiles []store.PlayerProfile) (Reply, bool) {
	short := utf8.RuneCountInString(userInput) <= utf8.RuneCountInString(name)+3 && strings.Contains(userInput, name)
	if !short && !containsAny(userInput, profileTriggerWords) {
		return Reply{}, false
	}
	if containsAny(userInput, profileExcludeWords) {
		return Reply{}, false
	}

	if len(profiles) > 1 {
		var sb strings.Builder
		fmt.Fprintf(&sb, "'%s' 이름을 가진 선수가 여러 명 있습니다.\n\n", name)
		sb.WriteString("아래 중에서 찾으시는 선수를 선택해주세요 👇\n\n")
		for i, p := range profiles {
			team := p.Team
			if team == "" {
				team = "팀 정보 없음"
			}
			pos := p.Position
			if pos == "" {
				pos = "포지션 정보 없음"
			}
			fmt.Fprintf(&sb, "%d. %s %s번 (%s)\n", i+1, team, store.NormalizeNumber(p.Number), pos)
		}
		fmt.Fprintf(&sb, "\n예: '키움 2번 %s' 처럼 팀명과 등번호를 함께 입력해주세요.", name)
		return Reply{Content: sb.String(), Intent: intent.Profile}, true
	}

	return Reply{
		Content: fmt.Sprintf("📌 %s 선수의 기본 프로필입니다.", name),
		Profile: r.store.ProfileTable(profiles[0]),
		Intent:  intent.Profile,
	}, true
}

// playerFreeform answers an open question: grounded on a stored player when
// one is named, general league context otherwise.
func (r *Router) playerFreeform(ctx context.Context, userInput string) Reply {
	names := r.extractKoreanNames(userInput)
	if len(names) > 0 {
		name := names[0]
		if matches := r.store.FindByExactName(name); len(matches) > 0 {
			p := matches[0]
			text, err := r.narrator.PlayerGrounded(ctx, userInput, p.Name, store.Clean(p.Team), store.Clean(p.Position))
			if err != nil {
				return Reply{Content: fmt.Sprintf("%s 선수에 대한 답변을 지금은 생성할 수 없습니다. 다시 질문해주세요.", p.Name)}
			}
			return Reply{Content: text}
		}
	}

	text, err := r.narrator.LeagueGeneric(ctx, userInput)
	if err != nil {
		return Reply{Content: "질문에 대한 답변을 지금은 생성할 수 없습니다. 다시 질문해주세요."}
	}
	return Reply{Content: text}
}
