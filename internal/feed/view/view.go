package view

import (
	"sync"

	"github.com/zappabad/trendtape/internal/feed"
)

// TopicEvent carries a change to the feed. Reset events replace the whole
// feed with Topics; otherwise Topics holds the one published topic.
type TopicEvent struct {
	Topics []feed.Topic
	Reset  bool
}

// TopicView maintains a bounded ring buffer of topics.
type TopicView struct {
	mu    sync.RWMutex
	buf   []feed.Topic
	size  int
	start int
	count int
}

// NewTopicView creates a new TopicView with the given capacity.
func NewTopicView(capacity int) *TopicView {
	if capacity <= 0 {
		capacity = 100
	}
	return &TopicView{
		buf:  make([]feed.Topic, capacity),
		size: capacity,
	}
}

// Apply folds an event into the view.
func (v *TopicView) Apply(ev TopicEvent) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if ev.Reset {
		v.start = 0
		v.count = 0
	}
	for _, t := range ev.Topics {
		v.push(t)
	}
}

func (v *TopicView) push(t feed.Topic) {
	if v.count < v.size {
		v.buf[(v.start+v.count)%v.size] = t
		v.count++
		return
	}
	// overwrite oldest
	v.buf[v.start] = t
	v.start = (v.start + 1) % v.size
}

// Latest returns the last n topics in chronological order (oldest first).
// Returns a copy (not internal references).
func (v *TopicView) Latest(n int) []feed.Topic {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if n <= 0 || v.count == 0 {
		return nil
	}
	if n > v.count {
		n = v.count
	}

	out := make([]feed.Topic, n)
	first := (v.start + (v.count - n)) % v.size
	for i := 0; i < n; i++ {
		out[i] = v.buf[(first+i)%v.size]
	}
	return out
}

// All returns every topic held, oldest first.
func (v *TopicView) All() []feed.Topic {
	return v.Latest(v.Count())
}

// Count returns the number of topics in the view.
func (v *TopicView) Count() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.count
}
