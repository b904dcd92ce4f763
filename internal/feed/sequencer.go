package feed

import "sync"

// Class groups operations whose results replace each other in the View.
type Class string

const (
	ClassFeed    Class = "feed"
	ClassMarkets Class = "markets"
	ClassWeather Class = "weather"
	ClassSearch  Class = "search"
)

// Ticket tags one dispatched request.
type Ticket struct {
	Class Class
	Seq   uint64
}

// Sequencer issues monotonically increasing tickets per class. Only the
// latest ticket of a class may write to the View.
type Sequencer struct {
	mu     sync.Mutex
	latest map[Class]uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{latest: make(map[Class]uint64)}
}

// Next issues a ticket that supersedes every earlier ticket of class.
func (s *Sequencer) Next(class Class) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[class]++
	return Ticket{Class: class, Seq: s.latest[class]}
}

// IsLatest reports whether no newer ticket of the same class was issued.
func (s *Sequencer) IsLatest(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[t.Class] == t.Seq
}
