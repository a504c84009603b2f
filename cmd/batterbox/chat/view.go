package chat

import (
	"strings"

	"batterbox/cmd/batterbox/ui"
)

const welcomeText = `안녕하세요! KBO 선수 챗봇입니다. ⚾

선수 이름, 팀 이름, 등번호로 물어보세요.

  · 양의지 선수에 대해 알려줘
  · 구본혁 2025년 성적 요약
  · LG 최근 소식
  · 키움 2번 누구야

종료하려면 Esc 또는 Ctrl+C를 누르세요.`

// View renders the whole chat screen.
func (m Model) View() string {
	if !m.ready {
		return "로딩 중..."
	}

	var sb strings.Builder

	header := m.styles.Header.Width(m.width).Render("⚾ KBO 선수 챗봇")
	sb.WriteString(header)
	sb.WriteString("\n\n")

	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")

	if m.waiting {
		sb.WriteString(m.styles.Muted.Render(m.spinner.View() + " 답변을 준비하고 있습니다..."))
	} else {
		sb.WriteString(m.input.View())
	}
	sb.WriteString("\n")

	sb.WriteString(m.styles.Footer.Render("Enter 전송 · Esc 종료"))

	return sb.String()
}

// renderHistory renders the scrollback, or the welcome banner for a fresh
// session.
func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return m.styles.Body.Render(welcomeText)
	}

	var sb strings.Builder
	for _, turn := range m.history {
		switch turn.Role {
		case RoleUser:
			sb.WriteString(m.styles.Prompt.Render("나> "))
			sb.WriteString(m.styles.UserInput.Render(turn.Content))
			sb.WriteString("\n\n")
		case RoleBot:
			sb.WriteString(m.styles.BotResponse.Render(m.renderMarkdown(turn.Content)))
			sb.WriteString("\n")
			if turn.Table != nil {
				sb.WriteString(ui.RenderTable(turn.Table, m.styles))
			}
			if turn.Profile != nil {
				sb.WriteString(ui.RenderTable(turn.Profile, m.styles))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// renderMarkdown renders answer text through glamour, falling back to the
// raw string when the renderer is unavailable.
func (m Model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content
	}
	out, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(out)
}
