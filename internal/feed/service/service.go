package service

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/zappabad/trendtape/internal/feed"
	feedview "github.com/zappabad/trendtape/internal/feed/view"
)

// FeedService owns the topics shown on the tape.
type FeedService struct {
	cfg  Config
	view *feedview.TopicView
	log  *zap.Logger

	idGen atomic.Int64

	internalEvents chan feedview.TopicEvent
	externalEvents chan feedview.TopicEvent
	droppedEvents  atomic.Int64

	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewFeedService creates a new FeedService. A nil logger logs nothing.
func NewFeedService(cfg Config, log *zap.Logger) *FeedService {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultConfig().Capacity
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = DefaultConfig().EventBuffer
	}
	if cfg.ExternalEventBuffer <= 0 {
		cfg.ExternalEventBuffer = DefaultConfig().ExternalEventBuffer
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &FeedService{
		cfg:            cfg,
		view:           feedview.NewTopicView(cfg.Capacity),
		log:            log,
		internalEvents: make(chan feedview.TopicEvent, cfg.EventBuffer),
		externalEvents: make(chan feedview.TopicEvent, cfg.ExternalEventBuffer),
		closed:         make(chan struct{}),
	}

	s.idGen.Store(time.Now().UnixNano())

	s.wg.Add(1)
	go s.runEventDispatcher()

	return s
}

func (s *FeedService) nextID() feed.TopicID {
	return feed.TopicID(s.idGen.Add(1))
}

func (s *FeedService) runEventDispatcher() {
	defer s.wg.Done()
	defer close(s.externalEvents)

	for {
		select {
		case <-s.closed:
			return
		case ev := <-s.internalEvents:
			// Always update view (authoritative)
			s.view.Apply(ev)

			if s.cfg.DropExternalEvents {
				select {
				case s.externalEvents <- ev:
				default:
					if n := s.droppedEvents.Add(1); n == 1 || n%100 == 0 {
						s.log.Warn("feed subscriber lagging, dropping events", zap.Int64("dropped", n))
					}
				}
			} else {
				select {
				case s.externalEvents <- ev:
				case <-s.closed:
					return
				}
			}
		}
	}
}

func (s *FeedService) stamp(text string, now int64) feed.Topic {
	return feed.Topic{ID: s.nextID(), Time: now, Text: text}
}

// Publish adds one topic to the feed.
func (s *FeedService) Publish(text string) {
	s.send(feedview.TopicEvent{
		Topics: []feed.Topic{s.stamp(text, time.Now().UnixNano())},
	})
}

// Replace swaps the whole feed for texts, in order.
func (s *FeedService) Replace(texts []string) {
	now := time.Now().UnixNano()
	topics := make([]feed.Topic, len(texts))
	for i, text := range texts {
		topics[i] = s.stamp(text, now)
	}
	s.log.Debug("replacing feed", zap.Int("topics", len(topics)))
	s.send(feedview.TopicEvent{Topics: topics, Reset: true})
}

func (s *FeedService) send(ev feedview.TopicEvent) {
	select {
	case s.internalEvents <- ev:
	case <-s.closed:
	}
}

// Latest returns the last n topics (from view).
func (s *FeedService) Latest(n int) []feed.Topic {
	return s.view.Latest(n)
}

// Topics returns every topic currently on the feed, oldest first.
func (s *FeedService) Topics() []feed.Topic {
	return s.view.All()
}

// Events returns the external events channel for subscribers.
func (s *FeedService) Events() <-chan feedview.TopicEvent {
	return s.externalEvents
}

// DroppedEvents returns the count of dropped external events.
func (s *FeedService) DroppedEvents() int64 {
	return s.droppedEvents.Load()
}

// Close shuts down the feed service.
func (s *FeedService) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
	s.wg.Wait()
}
