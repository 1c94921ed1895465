package chat

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/endevo/legacyready/internal/coach"
)

func typeText(s *ChatScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestChatScreen_Greeting(t *testing.T) {
	s := New(coach.New(nil, coach.DefaultConfig(), nil), nil, "emp-1")
	if len(s.transcript) != 1 || s.transcript[0].text != coach.Greeting {
		t.Fatalf("expected greeting, got %+v", s.transcript)
	}
	if s.View(100, 30) == "" {
		t.Error("expected non-empty view")
	}
}

func TestChatScreen_AskKeywordReply(t *testing.T) {
	s := New(coach.New(nil, coach.DefaultConfig(), nil), nil, "emp-1")
	typeText(s, "where is my progress")
	if s.input.Value() != "where is my progress" {
		t.Fatalf("input = %q", s.input.Value())
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected ask command")
	}
	if !s.waiting || s.input.Value() != "" {
		t.Error("input should clear while waiting for the reply")
	}
	if _, again := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); again != nil {
		t.Error("empty input should not ask")
	}

	s.Update(cmd())
	if s.waiting {
		t.Error("reply should end waiting")
	}
	last := s.transcript[len(s.transcript)-1]
	if last.fromUser || last.source != coach.SourceKeyword {
		t.Errorf("unexpected last entry: %+v", last)
	}
	topic, _ := coach.Match("progress")
	if last.text != topic.Answer {
		t.Errorf("reply = %q, want progress topic answer", last.text)
	}
	if !strings.Contains(s.View(100, 40), "You") {
		t.Error("view should show the learner's question")
	}
}

func TestChatScreen_TabUsesSuggestion(t *testing.T) {
	s := New(coach.New(nil, coach.DefaultConfig(), nil), nil, "emp-1")
	s.Update(replyMsg{Reply: coach.Reply{Text: "ok", Source: coach.SourceLLM, Suggestions: []string{"How do I export?", "What is a module?"}}})

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.input.Value() != "How do I export?" {
		t.Errorf("input = %q, want first suggestion", s.input.Value())
	}
	if len(s.suggestions) != 1 {
		t.Errorf("suggestions left = %d, want 1", len(s.suggestions))
	}
}
