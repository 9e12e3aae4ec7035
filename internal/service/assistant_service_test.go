package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"moodfeed/internal/domain"
)

func newTestAssistant(comments ...domain.Comment) (*AssistantService, *MoodService) {
	moods, _ := newTestMoodService(comments...)
	return NewAssistantService(zap.NewNop(), moods, nil), moods
}

func TestGreeting(t *testing.T) {
	a, _ := newTestAssistant()
	msg := a.Greeting("s1")
	if msg.Role != domain.MessageRoleAssistant || msg.SessionID != "s1" {
		t.Fatalf("unexpected greeting: %+v", msg)
	}
	if msg.Text != "Hi there! I'm your AI assistant. How can I help you today?" {
		t.Fatalf("unexpected greeting text: %q", msg.Text)
	}
}

func TestCheckIn(t *testing.T) {
	a, moods := newTestAssistant(comment("lovely day", domain.SentimentPositive))
	ctx := context.Background()
	session, _ := moods.StartSession(ctx, testViewer, domain.MoodHappy, "")

	reply, err := a.CheckIn(ctx, session.ID, &sequenceRand{})
	if err != nil || reply != nil {
		t.Fatalf("expected no check-in without distress, got %+v (%v)", reply, err)
	}

	if _, _, err := moods.RecordComment(ctx, session.ID, "everything is too much", &sequenceRand{}); err != nil {
		t.Fatalf("record comment: %v", err)
	}
	reply, err = a.CheckIn(ctx, session.ID, &sequenceRand{})
	if err != nil || reply == nil {
		t.Fatalf("expected check-in after distress, got %+v (%v)", reply, err)
	}
	if reply.Severity != domain.SeverityHigh || reply.Resources == nil {
		t.Fatalf("expected high severity with resources, got %+v", reply)
	}
	if !strings.Contains(reply.Resources.Text, "Crisis Text Line: Text HOME to 741741") ||
		!strings.HasSuffix(reply.Resources.Text, "show more uplifting content?") {
		t.Fatalf("unexpected resources message: %q", reply.Resources.Text)
	}

	off := false
	if _, err := moods.UpdateSettings(ctx, session.ID, SettingsPatch{AIAssistEnabled: &off}); err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if reply, _ := a.CheckIn(ctx, session.ID, &sequenceRand{}); reply != nil {
		t.Fatalf("expected no check-in with the assistant disabled")
	}
}

func TestReplyErrors(t *testing.T) {
	a, moods := newTestAssistant()
	ctx := context.Background()
	session, _ := moods.StartSession(ctx, testViewer, domain.MoodCalm, "")

	if _, err := a.Reply(ctx, session.ID, "  ", &sequenceRand{}); !errors.Is(err, ErrEmptyComment) {
		t.Fatalf("expected ErrEmptyComment, got %v", err)
	}
	off := false
	if _, err := moods.UpdateSettings(ctx, session.ID, SettingsPatch{AIAssistEnabled: &off}); err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if _, err := a.Reply(ctx, session.ID, "hello", &sequenceRand{}); !errors.Is(err, ErrAssistantDisabled) {
		t.Fatalf("expected ErrAssistantDisabled, got %v", err)
	}
}

func TestReplySeverity(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantSeverity domain.Severity
		wantResource string
	}{
		{"positive stays low", "I love this, so happy", domain.SeverityLow, ""},
		{"negative majority is medium", "I'm sad and tired", domain.SeverityMedium, "7 Cups: Free online chat support"},
		{"distress is high", "I feel worthless", domain.SeverityHigh, "National Suicide Prevention Lifeline: 988"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, moods := newTestAssistant(
				comment("nice", domain.SentimentPositive),
				comment("ugh", domain.SentimentNegative),
			)
			ctx := context.Background()
			session, _ := moods.StartSession(ctx, testViewer, domain.MoodCalm, "")

			reply, err := a.Reply(ctx, session.ID, tt.text, &sequenceRand{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if reply.UserMessage == nil || reply.UserMessage.Text != tt.text {
				t.Fatalf("expected echoed user message, got %+v", reply.UserMessage)
			}
			if reply.Severity != tt.wantSeverity {
				t.Fatalf("expected severity %s, got %s", tt.wantSeverity, reply.Severity)
			}
			if tt.wantResource == "" {
				if reply.Resources != nil {
					t.Fatalf("expected no resources, got %q", reply.Resources.Text)
				}
				return
			}
			if reply.Resources == nil || !strings.Contains(reply.Resources.Text, tt.wantResource) {
				t.Fatalf("expected resources containing %q, got %+v", tt.wantResource, reply.Resources)
			}
		})
	}
}
