package security

import (
	"fmt"
	"strings"

	"marketplace-settlement/internal/events"
	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/settlementerrors"
	"marketplace-settlement/utils"
)

// Heuristic parameters
const (
	RapidBidWindow    uint64 = 60
	RapidBidThreshold        = 3
	GamingIncrement   int64  = 1000
	IncrementLookback        = 3
	TimedBidMaxJitter uint64 = 5
)

// Pattern names reported by the detector
const (
	PatternRapidBidding    = "rapid_bidding"
	PatternIncrementGaming = "increment_gaming"
	PatternTimedBidding    = "timed_bidding"
)

// FrontRunningDetector inspects a candidate bid against the auction's bid history
type FrontRunningDetector struct {
	alerts events.Emitter
	clock  utils.Clock
}

// NewFrontRunningDetector creates a detector that reports detections to alerts
func NewFrontRunningDetector(alerts events.Emitter, clock utils.Clock) *FrontRunningDetector {
	return &FrontRunningDetector{alerts: alerts, clock: clock}
}

// AnalyzeBiddingPattern fails with ErrFrontRunningDetected when any pattern matches
func (d *FrontRunningDetector) AnalyzeBiddingPattern(auctionID uint64, candidate models.Bid, recent []models.Bid) error {
	patterns := DetectSuspiciousPatterns(candidate, recent)
	if len(patterns) == 0 {
		return nil
	}

	d.alerts.Emit(events.New(events.FrontRunningDetected, d.clock.Now(), map[string]any{
		"auction_id":         auctionID,
		"suspicious_address": candidate.Bidder,
		"patterns":           patterns,
	}))
	utils.Warn("front-running pattern detected", map[string]any{
		"auction_id": auctionID,
		"bidder":     candidate.Bidder,
		"patterns":   strings.Join(patterns, ","),
	})
	return fmt.Errorf("auction %d: %w - %s", auctionID, settlementerrors.ErrFrontRunningDetected, strings.Join(patterns, ","))
}

// DetectSuspiciousPatterns returns the names of every matching pattern
func DetectSuspiciousPatterns(candidate models.Bid, recent []models.Bid) []string {
	var patterns []string
	if DetectRapidBidding(candidate, recent) {
		patterns = append(patterns, PatternRapidBidding)
	}
	if DetectIncrementGaming(candidate, recent) {
		patterns = append(patterns, PatternIncrementGaming)
	}
	if DetectTimedBidding(candidate, recent) {
		patterns = append(patterns, PatternTimedBidding)
	}
	return patterns
}

// DetectRapidBidding matches when the candidate would be the third bid from the same
// bidder inside the trailing window.
func DetectRapidBidding(candidate models.Bid, recent []models.Bid) bool {
	count := 1
	for _, b := range recent {
		if b.Bidder != candidate.Bidder || b.PlacedAt > candidate.PlacedAt {
			continue
		}
		if candidate.PlacedAt-b.PlacedAt < RapidBidWindow {
			count++
			if count >= RapidBidThreshold {
				return true
			}
		}
	}
	return false
}

// DetectIncrementGaming matches a candidate exactly one gaming increment above one of the last bids
func DetectIncrementGaming(candidate models.Bid, recent []models.Bid) bool {
	for i, n := len(recent)-1, 0; i >= 0 && n < IncrementLookback; i, n = i-1, n+1 {
		if candidate.Amount == recent[i].Amount+GamingIncrement {
			return true
		}
	}
	return false
}

// DetectTimedBidding matches when the gap to the last bid repeats the previous gap within the jitter
func DetectTimedBidding(candidate models.Bid, recent []models.Bid) bool {
	if len(recent) < 2 {
		return false
	}
	last := recent[len(recent)-1]
	prev := recent[len(recent)-2]
	if last.PlacedAt < prev.PlacedAt || candidate.PlacedAt < last.PlacedAt {
		return false
	}

	lastInterval := last.PlacedAt - prev.PlacedAt
	newInterval := candidate.PlacedAt - last.PlacedAt

	var diff uint64
	if newInterval > lastInterval {
		diff = newInterval - lastInterval
	} else {
		diff = lastInterval - newInterval
	}
	return diff < TimedBidMaxJitter
}
