package settlement

import (
	"fmt"

	auction "marketplace-settlement/internal/auctionEngine"
	dispute "marketplace-settlement/internal/disputeService"
	"marketplace-settlement/internal/escrow"
	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/settlementerrors"
)

// auctionTerms resolves escrow terms from the auction a dispute refers to
type auctionTerms struct {
	auctions *auction.Engine
	account  string
}

func (t auctionTerms) TermsFor(d models.Dispute) (escrow.Terms, error) {
	if d.AuctionID == nil {
		return escrow.Terms{}, fmt.Errorf("%w - no escrow terms for transaction %d", settlementerrors.ErrNotFound, d.TransactionID)
	}
	a, err := t.auctions.GetAuction(*d.AuctionID)
	if err != nil {
		return escrow.Terms{}, err
	}
	if a.Winner == "" {
		return escrow.Terms{}, fmt.Errorf("%w - auction %d has no winner", settlementerrors.ErrInvalidState, a.AuctionID)
	}
	return escrow.Terms{
		Account:    t.account,
		Buyer:      a.Winner,
		Seller:     a.Seller,
		Currency:   a.Currency,
		Amount:     a.FinalPrice,
		NFTAddress: a.NFTAddress,
		TokenID:    a.TokenID,
	}, nil
}

// InitiateDispute opens a dispute over a transaction or auction
func (m *Marketplace) InitiateDispute(p dispute.InitiateParams) (uint64, error) {
	var id uint64
	err := m.invoke(p.Initiator, "initiate_dispute", func(s *session) error {
		if p.AuctionID != nil {
			a, err := s.auctions.GetAuction(*p.AuctionID)
			if err != nil {
				return err
			}
			if a.Settled {
				return fmt.Errorf("auction %d: %w - already settled", a.AuctionID, settlementerrors.ErrInvalidState)
			}
		}
		var err error
		id, err = s.disputes.InitiateDispute(p)
		return err
	})
	return id, err
}

// VoteOnDispute records an arbitrator vote
func (m *Marketplace) VoteOnDispute(disputeID uint64, arbitrator string, favorInitiator bool) (models.Dispute, error) {
	var d models.Dispute
	err := m.invoke(arbitrator, "vote_on_dispute", func(s *session) error {
		var err error
		d, err = s.disputes.VoteOnDispute(disputeID, arbitrator, favorInitiator)
		return err
	})
	return d, err
}

// SubmitEvidence attaches evidence to a dispute
func (m *Marketplace) SubmitEvidence(disputeID uint64, submitter, evidenceURI string) error {
	return m.invoke(submitter, "submit_evidence", func(s *session) error {
		return s.disputes.SubmitEvidence(disputeID, submitter, evidenceURI)
	})
}

// ForceResolveDispute sets a resolution without voting
func (m *Marketplace) ForceResolveDispute(disputeID uint64, resolution models.Resolution, admin string) error {
	return m.invoke(admin, "force_resolve_dispute", func(s *session) error {
		if err := requireAdmin(s, admin); err != nil {
			return err
		}
		return s.disputes.ForceResolveDispute(disputeID, resolution, admin)
	})
}

// ExecuteDisputeResolution runs the custody action of a resolved dispute
func (m *Marketplace) ExecuteDisputeResolution(disputeID uint64, executor string) error {
	return m.invoke(executor, "execute_dispute_resolution", func(s *session) error {
		return s.disputes.ExecuteResolution(disputeID, executor)
	})
}

// RegisterArbitrator adds an arbitrator at initialReputation
func (m *Marketplace) RegisterArbitrator(addr string, initialReputation uint64) error {
	return m.invoke(addr, "register_arbitrator", func(s *session) error {
		return s.disputes.RegisterArbitrator(addr, initialReputation)
	})
}

// UpdateArbitratorReputation adjusts an arbitrator's reputation
func (m *Marketplace) UpdateArbitratorReputation(addr string, delta int64, admin string) error {
	return m.invoke(admin, "update_arbitrator_reputation", func(s *session) error {
		if err := requireAdmin(s, admin); err != nil {
			return err
		}
		return s.disputes.UpdateArbitratorReputation(addr, delta)
	})
}

// SetArbitratorActive toggles an arbitrator's eligibility
func (m *Marketplace) SetArbitratorActive(addr string, active bool, admin string) error {
	return m.invoke(admin, "set_arbitrator_active", func(s *session) error {
		if err := requireAdmin(s, admin); err != nil {
			return err
		}
		return s.disputes.SetArbitratorActive(addr, active)
	})
}

// GetDispute returns a dispute
func (m *Marketplace) GetDispute(disputeID uint64) (models.Dispute, error) {
	var d models.Dispute
	err := m.view(func(s *session) error {
		var err error
		d, err = s.disputes.GetDispute(disputeID)
		return err
	})
	return d, err
}

// ActiveDisputes lists unresolved disputes
func (m *Marketplace) ActiveDisputes() ([]models.Dispute, error) {
	var out []models.Dispute
	err := m.view(func(s *session) error {
		var err error
		out, err = s.disputes.ActiveDisputes()
		return err
	})
	return out, err
}

// ResolvedDisputes lists disputes that carry a resolution
func (m *Marketplace) ResolvedDisputes() ([]models.Dispute, error) {
	var out []models.Dispute
	err := m.view(func(s *session) error {
		var err error
		out, err = s.disputes.ResolvedDisputes()
		return err
	})
	return out, err
}

// DisputesByInitiator lists the disputes opened by initiator
func (m *Marketplace) DisputesByInitiator(initiator string) ([]models.Dispute, error) {
	var out []models.Dispute
	err := m.view(func(s *session) error {
		var err error
		out, err = s.disputes.DisputesByInitiator(initiator)
		return err
	})
	return out, err
}

// Arbitrators lists the registry
func (m *Marketplace) Arbitrators() ([]models.Arbitrator, error) {
	var out []models.Arbitrator
	err := m.view(func(s *session) error {
		var err error
		out, err = s.disputes.Arbitrators()
		return err
	})
	return out, err
}

// GetDisputeConfig returns the arbitration tunables
func (m *Marketplace) GetDisputeConfig() (models.DisputeConfig, error) {
	var cfg models.DisputeConfig
	err := m.view(func(s *session) error {
		var err error
		cfg, err = s.disputes.GetConfig()
		return err
	})
	return cfg, err
}

// UpdateDisputeConfig replaces the arbitration tunables
func (m *Marketplace) UpdateDisputeConfig(cfg models.DisputeConfig, admin string) error {
	return m.invoke(admin, "update_dispute_config", func(s *session) error {
		if err := requireAdmin(s, admin); err != nil {
			return err
		}
		return s.disputes.UpdateConfig(cfg)
	})
}
