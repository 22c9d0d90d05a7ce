package models

// Resolution is the outcome code recorded on a dispute
type Resolution uint64

const (
	ResolutionNone Resolution = iota
	ResolutionRefundBuyer
	ResolutionReleaseToSeller
	ResolutionSplitFunds
	ResolutionCancelTransaction
)

func (r Resolution) String() string {
	switch r {
	case ResolutionNone:
		return "not_resolved"
	case ResolutionRefundBuyer:
		return "refund_buyer"
	case ResolutionReleaseToSeller:
		return "release_to_seller"
	case ResolutionSplitFunds:
		return "split_funds"
	case ResolutionCancelTransaction:
		return "cancel_transaction"
	default:
		return "invalid"
	}
}

// Valid reports whether r names one of the four executable outcomes
func (r Resolution) Valid() bool {
	return r >= ResolutionRefundBuyer && r <= ResolutionCancelTransaction
}

// Dispute is a disagreement over a transaction or auction awaiting arbitration
type Dispute struct {
	DisputeID     uint64          `json:"dispute_id"`
	TransactionID uint64          `json:"transaction_id"`
	AuctionID     *uint64         `json:"auction_id,omitempty"`
	Initiator     string          `json:"initiator"`
	Reason        string          `json:"reason"`
	EvidenceURI   string          `json:"evidence_uri,omitempty"`
	Arbitrators   []string        `json:"arbitrators"`
	Votes         map[string]bool `json:"votes"`
	RequiredVotes uint64          `json:"required_votes"`
	CreatedAt     uint64          `json:"created_at"`
	ResolvedAt    uint64          `json:"resolved_at"`
	Resolution    Resolution      `json:"resolution"`
	ExecutedAt    uint64          `json:"executed_at"`
}

// IsResolved reports whether the dispute has its single final resolution
func (d Dispute) IsResolved() bool {
	return d.ResolvedAt != 0
}

// HasArbitrator reports whether addr is assigned to the dispute
func (d Dispute) HasArbitrator(addr string) bool {
	for _, a := range d.Arbitrators {
		if a == addr {
			return true
		}
	}
	return false
}

// DisputeConfig holds the arbitration tunables
type DisputeConfig struct {
	ArbitrationQuorum        uint64 `json:"arbitration_quorum"`
	CoolingPeriod            uint64 `json:"cooling_period"`
	EvidenceSubmissionPeriod uint64 `json:"evidence_submission_period"`
	MaxArbitratorsPerDispute uint64 `json:"max_arbitrators_per_dispute"`
	MinArbitratorReputation  uint64 `json:"min_arbitrator_reputation"`
}

// DefaultDisputeConfig returns the configuration seeded on first start
func DefaultDisputeConfig() DisputeConfig {
	return DisputeConfig{
		ArbitrationQuorum:        3,
		CoolingPeriod:            86400,
		EvidenceSubmissionPeriod: 604800,
		MaxArbitratorsPerDispute: 5,
		MinArbitratorReputation:  50,
	}
}

// Arbitrator is a registered dispute resolver
type Arbitrator struct {
	Address               string `json:"address"`
	ReputationScore       uint64 `json:"reputation_score"`
	DisputesHandled       uint64 `json:"disputes_handled"`
	SuccessfulResolutions uint64 `json:"successful_resolutions"`
	IsActive              bool   `json:"is_active"`
	RegisteredAt          uint64 `json:"registered_at"`
}
