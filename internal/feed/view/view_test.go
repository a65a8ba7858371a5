package view

import (
	"testing"

	"github.com/zappabad/trendtape/internal/feed"
)

func publish(v *TopicView, texts ...string) {
	for _, text := range texts {
		v.Apply(TopicEvent{Topics: []feed.Topic{{Text: text}}})
	}
}

func texts(topics []feed.Topic) []string {
	out := make([]string, len(topics))
	for i, t := range topics {
		out[i] = t.Text
	}
	return out
}

func TestTopicViewLatest(t *testing.T) {
	v := NewTopicView(3)
	if got := v.Latest(5); got != nil {
		t.Fatalf("expected nil from empty view, got %v", got)
	}

	publish(v, "a", "b")
	got := texts(v.Latest(5))
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected [a b], got %v", got)
	}

	publish(v, "c", "d")
	got = texts(v.Latest(3))
	if len(got) != 3 || got[0] != "b" || got[2] != "d" {
		t.Fatalf("expected [b c d] after overwrite, got %v", got)
	}
	if v.Count() != 3 {
		t.Errorf("expected count 3, got %d", v.Count())
	}

	got = texts(v.Latest(1))
	if len(got) != 1 || got[0] != "d" {
		t.Errorf("expected [d], got %v", got)
	}
}

func TestTopicViewReset(t *testing.T) {
	v := NewTopicView(3)
	publish(v, "a", "b", "c", "d")

	v.Apply(TopicEvent{Reset: true, Topics: []feed.Topic{{Text: "x"}, {Text: "y"}}})
	got := texts(v.All())
	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Fatalf("expected [x y] after reset, got %v", got)
	}

	v.Apply(TopicEvent{Reset: true})
	if v.Count() != 0 {
		t.Errorf("expected empty view, got %d topics", v.Count())
	}
}

func TestTopicViewLatestReturnsCopy(t *testing.T) {
	v := NewTopicView(2)
	publish(v, "a")
	out := v.Latest(1)
	out[0].Text = "changed"
	if v.Latest(1)[0].Text != "a" {
		t.Error("expected view to be unaffected by caller mutation")
	}
}
