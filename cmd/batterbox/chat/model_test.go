package chat

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"batterbox/internal/router"
	"batterbox/internal/table"
)

func sized(m Model) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func TestEnterAppendsUserTurn(t *testing.T) {
	m := sized(New(nil))
	m.input.SetValue("양의지 알려줘")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if len(m.history) != 1 || m.history[0].Role != RoleUser {
		t.Fatalf("history = %+v", m.history)
	}
	if m.history[0].Content != "양의지 알려줘" {
		t.Errorf("content = %q", m.history[0].Content)
	}
	if !m.waiting {
		t.Error("model should be waiting for the answer")
	}
	if cmd == nil {
		t.Error("expected ask command")
	}
	if m.input.Value() != "" {
		t.Error("input not cleared")
	}
}

func TestEmptyEnterIgnored(t *testing.T) {
	m := sized(New(nil))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if len(m.history) != 0 || m.waiting {
		t.Error("empty input must not produce a turn")
	}
}

func TestEnterWhileWaitingIgnored(t *testing.T) {
	m := sized(New(nil))
	m.waiting = true
	m.input.SetValue("두 번째 질문")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if len(m.history) != 0 {
		t.Error("question submitted while waiting")
	}
}

func TestReplyAppendsBotTurn(t *testing.T) {
	m := sized(New(nil))
	m.waiting = true

	tbl := table.New("", []string{"항목", "내용"})
	tbl.AddRow("name", "양의지")

	updated, _ := m.Update(replyMsg{reply: router.Reply{Content: "📌 프로필입니다.", Profile: tbl}})
	m = updated.(Model)

	if m.waiting {
		t.Error("waiting should clear on reply")
	}
	if len(m.history) != 1 || m.history[0].Role != RoleBot {
		t.Fatalf("history = %+v", m.history)
	}
	if m.history[0].Profile == nil {
		t.Error("profile payload lost")
	}
}

func TestViewShowsWelcomeBanner(t *testing.T) {
	m := sized(New(nil))
	view := m.View()
	if !strings.Contains(view, "KBO 선수 챗봇") {
		t.Errorf("view missing header:\n%s", view)
	}
	if !strings.Contains(m.renderHistory(), "양의지 선수에 대해 알려줘") {
		t.Error("welcome banner missing example questions")
	}
}

func TestQuitKeys(t *testing.T) {
	m := sized(New(nil))
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("key %v should quit", key)
		}
		if msg := cmd(); msg != tea.Quit() {
			t.Errorf("key %v produced %T, want tea.QuitMsg", key, msg)
		}
	}
}
