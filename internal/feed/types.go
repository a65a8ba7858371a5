package feed

// TopicID uniquely identifies a topic on the feed.
type TopicID int64

// Topic is one story carried by the tape.
type Topic struct {
	ID   TopicID
	Time int64
	Text string
}
