// Package intent classifies what a question is asking for. A deterministic
// keyword pass answers the common cases; only the residue goes to the
// generative classifier, whose output is advisory.
package intent

import (
	"context"
	"fmt"
	"strings"

	"batterbox/internal/llm"
	"batterbox/internal/logging"
)

// Intent is a coarse question category.
type Intent string

const (
	News     Intent = "news"
	Profile  Intent = "profile"
	Stats    Intent = "stats"
	Position Intent = "position"
	Unknown  Intent = "unknown"
)

// Keyword sets for the deterministic pass, checked in this order.
var (
	newsWords = []string{
		"뉴스", "소식", "근황", "기사", "인터뷰", "이슈", "요즘 어때", "인스타",
	}
	statsWords = []string{
		"성적", "기록", "타율", "홈런", "평균자책", "방어율", "ops", "이닝", "세이브",
		"홀드", "삼진", "출루율", "타점", "득점", "볼넷", "피홈런", "요약", "평가",
	}
	positionWords = []string{
		"포지션", "루수", "포수", "외야수", "내야수", "지명타자", "유격수",
		"투수야", "타자야", "역할", "수비",
	}
	profileWords = []string{
		"프로필", "누구야", "알려줘", "소개", "기본 정보",
	}
)

// Classifier assigns an Intent to a question.
type Classifier struct {
	client llm.Client
}

// NewClassifier creates a Classifier. A nil client disables the generative
// residue pass; keyword misses then return Unknown.
func NewClassifier(client llm.Client) *Classifier {
	return &Classifier{client: client}
}

// ClassifyKeywords runs only the deterministic pass.
func ClassifyKeywords(input string) Intent {
	lower := strings.ToLower(input)
	contains := func(words []string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}

	switch {
	case contains(newsWords):
		return News
	case contains(statsWords):
		return Stats
	case contains(positionWords):
		return Position
	case contains(profileWords):
		return Profile
	default:
		return Unknown
	}
}

// Classify assigns an intent, falling back to the generative classifier when
// no keyword matches. Classifier errors degrade to Unknown rather than
// failing the question.
func (c *Classifier) Classify(ctx context.Context, input string) Intent {
	if it := ClassifyKeywords(input); it != Unknown {
		logging.Intent("keyword: %q -> %s", input, it)
		return it
	}
	if c == nil || c.client == nil {
		return Unknown
	}

	prompt := fmt.Sprintf(`사용자가 아래와 같이 질문했습니다:
"%s"

질문의 의도를 아래 중 하나로 정확히 분류하세요:
- 'news' : 최근 소식, 근황, 인터뷰, 기사, 요즘 어때 등
- 'profile' : 선수에 대한 기본 정보, 소개, 누구야, 알려줘 등
- 'stats' : 성적, 기록, 타율, 홈런, 방어율, 삼진 등
- 'position' : 포지션, 투수, 타자, 외야수, 내야수, 역할 등
- 'unknown' : 위 4개 중 어디에도 속하지 않으면 unknown

오직 하나의 단어(news/profile/stats/position/unknown)만 출력하세요.`, input)

	out, err := c.client.Generate(ctx, prompt, llm.Options{Temperature: 0, MaxOutputTokens: 5})
	if err != nil {
		logging.IntentError("classifier failed, treating as unknown: %v", err)
		return Unknown
	}

	it := Intent(strings.ToLower(strings.TrimSpace(out)))
	switch it {
	case News, Profile, Stats, Position, Unknown:
		logging.Intent("model: %q -> %s", input, it)
		return it
	default:
		logging.Intent("model returned %q, treating as unknown", out)
		return Unknown
	}
}
