package events

import (
	"sync"

	"marketplace-settlement/utils"
)

// Kind names an entry of the append-only settlement event log
type Kind string

const (
	AuctionCreated       Kind = "auction_created"
	AuctionExtended      Kind = "auction_extended"
	AuctionEnded         Kind = "auction_ended"
	AuctionCancelled     Kind = "auction_cancelled"
	AuctionSettled       Kind = "auction_settled"
	BidPlaced            Kind = "bid_placed"
	BidRevealed          Kind = "bid_revealed"
	DisputeCreated       Kind = "dispute_created"
	DisputeVoted         Kind = "dispute_voted"
	DisputeResolved      Kind = "dispute_resolved"
	DisputeExecuted      Kind = "dispute_executed"
	EvidenceSubmitted    Kind = "evidence_submitted"
	FeeCollected         Kind = "platform_fees_collected"
	FeesWithdrawn        Kind = "platform_fees_withdrawn"
	FeeConfigUpdated     Kind = "fee_config_updated"
	ReentrancyDetected   Kind = "reentrancy_detected"
	FrontRunningDetected Kind = "front_running_detected"
)

// Event is one log entry consumed by external indexers
type Event struct {
	ID        string         `json:"id"`
	Kind      Kind           `json:"kind"`
	Timestamp uint64         `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// New builds an event with a fresh id
func New(kind Kind, timestamp uint64, data map[string]any) Event {
	if data == nil {
		data = map[string]any{}
	}
	return Event{
		ID:        utils.GenerateID(),
		Kind:      kind,
		Timestamp: timestamp,
		Data:      data,
	}
}

// Emitter accepts events
type Emitter interface {
	Emit(e Event)
}

// Discard drops every event
var Discard Emitter = discard{}

type discard struct{}

func (discard) Emit(Event) {}

// Recorder is an in-memory append-only event log
type Recorder struct {
	mu     sync.RWMutex
	events []Event
}

// NewRecorder creates an empty log
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit appends e
func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the whole log
func (r *Recorder) Events() []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Event(nil), r.events...)
}

// Recent returns up to n of the latest events, oldest first
func (r *Recorder) Recent(n int) []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if n <= 0 || n > len(r.events) {
		n = len(r.events)
	}
	return append([]Event(nil), r.events[len(r.events)-n:]...)
}

// ByKind returns every event of kind, oldest first
func (r *Recorder) ByKind(kind Kind) []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Event
	for _, e := range r.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Buffer holds the events of one invocation until it commits
type Buffer struct {
	events []Event
}

// Emit stages e
func (b *Buffer) Emit(e Event) {
	b.events = append(b.events, e)
}

// Events returns the staged events
func (b *Buffer) Events() []Event {
	return append([]Event(nil), b.events...)
}

// Flush forwards staged events to out and empties the buffer
func (b *Buffer) Flush(out Emitter) {
	for _, e := range b.events {
		out.Emit(e)
	}
	b.events = nil
}

// Discard drops staged events
func (b *Buffer) Discard() {
	b.events = nil
}

// Bus fans events out to several emitters
type Bus struct {
	sinks []Emitter
}

// NewBus creates a bus over sinks
func NewBus(sinks ...Emitter) *Bus {
	return &Bus{sinks: sinks}
}

// Emit forwards e to every sink
func (b *Bus) Emit(e Event) {
	for _, s := range b.sinks {
		s.Emit(e)
	}
}
