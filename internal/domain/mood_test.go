package domain

import (
	"errors"
	"testing"
)

func TestParseMood(t *testing.T) {
	m, err := ParseMood("  Happy ")
	if err != nil || m != MoodHappy {
		t.Fatalf("expected happy, got %q (%v)", m, err)
	}

	_, err = ParseMood("bored")
	var invalid *InvalidMoodError
	if !errors.As(err, &invalid) || invalid.Mood != "bored" {
		t.Fatalf("expected InvalidMoodError, got %v", err)
	}
	if !errors.Is(err, ErrInvalidMood) {
		t.Fatalf("expected errors.Is to match ErrInvalidMood")
	}
}

func TestEverySubEmotionHasCatalogParent(t *testing.T) {
	for _, opt := range MoodOptions() {
		if len(opt.SubEmotions) != 4 {
			t.Fatalf("expected 4 sub-emotions for %s, got %d", opt.ID, len(opt.SubEmotions))
		}
		for _, sub := range opt.SubEmotions {
			parent, ok := sub.ID.Parent()
			if !ok || parent != opt.ID {
				t.Fatalf("sub-emotion %s: expected parent %s, got %s", sub.ID, opt.ID, parent)
			}
		}
	}
}

func TestValidateSubEmotion(t *testing.T) {
	tests := []struct {
		name string
		mood Mood
		sub  SubEmotion
		want error
	}{
		{"empty is valid", MoodSad, "", nil},
		{"matching parent", MoodStressed, SubEmotionBurnedOut, nil},
		{"wrong parent", MoodCalm, SubEmotionFurious, ErrSubEmotionMismatch},
		{"unknown", MoodCalm, "sleepy", ErrInvalidSubEmotion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateSubEmotion(tt.mood, tt.sub); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseSubEmotion(t *testing.T) {
	if s, err := ParseSubEmotion(""); err != nil || s != "" {
		t.Fatalf("expected empty sub-emotion to be accepted, got %q (%v)", s, err)
	}
	if s, err := ParseSubEmotion("Serene"); err != nil || s != SubEmotionSerene {
		t.Fatalf("expected serene, got %q (%v)", s, err)
	}
	if _, err := ParseSubEmotion("sleepy"); !errors.Is(err, ErrInvalidSubEmotion) {
		t.Fatalf("expected ErrInvalidSubEmotion, got %v", err)
	}
}

func TestMoodOptionsReturnsCopies(t *testing.T) {
	opts := MoodOptions()
	if len(opts) != len(AllMoods()) {
		t.Fatalf("expected %d options, got %d", len(AllMoods()), len(opts))
	}
	opts[0].SubEmotions[0].Label = "changed"
	again, _ := LookupMoodOption(opts[0].ID)
	if again.SubEmotions[0].Label == "changed" {
		t.Fatalf("expected catalog to be immutable")
	}
}

func TestParseFilterStrengthAndDefaults(t *testing.T) {
	if s, err := ParseFilterStrength("HIGH"); err != nil || s != FilterStrengthHigh {
		t.Fatalf("expected high, got %q (%v)", s, err)
	}
	if _, err := ParseFilterStrength("max"); !errors.Is(err, ErrInvalidFilterStrength) {
		t.Fatalf("expected ErrInvalidFilterStrength, got %v", err)
	}
	if got := DefaultSettings("nope").MoodFilterStrength; got != FilterStrengthMedium {
		t.Fatalf("expected medium fallback, got %s", got)
	}
}

func TestSentimentCounts(t *testing.T) {
	var c SentimentCounts
	for _, s := range []Sentiment{SentimentPositive, SentimentPositive, SentimentDistressed, "bogus"} {
		c.Add(s)
	}
	if c.Positive != 2 || c.Distressed != 1 || c.Total() != 3 {
		t.Fatalf("unexpected counts: %+v", c)
	}
	if _, err := ParseSentiment("angry"); !errors.Is(err, ErrInvalidSentiment) {
		t.Fatalf("expected ErrInvalidSentiment, got %v", err)
	}
}
