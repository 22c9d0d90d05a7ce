package dispute

import (
	"fmt"

	"marketplace-settlement/internal/escrow"
	"marketplace-settlement/internal/events"
	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/repository"
	"marketplace-settlement/internal/settlementerrors"
	"marketplace-settlement/utils"
)

const (
	configKey        = "dispute_config"
	registryKey      = "arbitrator_registry"
	disputeCounter   = "dispute"
	maxEvidenceBytes = 10 * 1024
	maxReputation    = 100
)

// TermsSource resolves the escrowed positions a dispute refers to
type TermsSource interface {
	TermsFor(d models.Dispute) (escrow.Terms, error)
}

// InitiateParams describe a new dispute
type InitiateParams struct {
	TransactionID uint64
	AuctionID     *uint64
	Initiator     string
	Reason        string
	EvidenceURI   string
}

// Manager runs arbitration: registry, dispute lifecycle, voting and execution
type Manager struct {
	store   repository.Store
	clock   utils.Clock
	events  events.Emitter
	actions escrow.Actions
	terms   TermsSource
}

// NewManager creates a dispute manager. actions and terms are only used by ExecuteResolution.
func NewManager(store repository.Store, clock utils.Clock, emitter events.Emitter, actions escrow.Actions, terms TermsSource) *Manager {
	return &Manager{store: store, clock: clock, events: emitter, actions: actions, terms: terms}
}

// GetConfig returns the stored dispute configuration
func (m *Manager) GetConfig() (models.DisputeConfig, error) {
	cfg, ok, err := repository.Load[models.DisputeConfig](m.store, repository.GroupConfig, configKey)
	if err != nil {
		return models.DisputeConfig{}, fmt.Errorf("dispute: failed to load config: %w", err)
	}
	if !ok {
		return models.DisputeConfig{}, fmt.Errorf("dispute: %w - dispute config not initialized", settlementerrors.ErrNotFound)
	}
	return cfg, nil
}

// UpdateConfig stores cfg
func (m *Manager) UpdateConfig(cfg models.DisputeConfig) error {
	if cfg.ArbitrationQuorum == 0 || cfg.MaxArbitratorsPerDispute == 0 {
		return fmt.Errorf("dispute: %w - quorum and arbitrator count must be positive", settlementerrors.ErrInvalidAmount)
	}
	return repository.Save(m.store, repository.GroupConfig, configKey, cfg)
}

// InitiateDispute opens a dispute and assigns arbitrators to it
func (m *Manager) InitiateDispute(p InitiateParams) (uint64, error) {
	if p.Initiator == "" {
		return 0, fmt.Errorf("dispute: %w - missing initiator", settlementerrors.ErrInvalidAmount)
	}
	if len(p.EvidenceURI) > maxEvidenceBytes {
		return 0, fmt.Errorf("dispute: %w - evidence exceeds %d bytes", settlementerrors.ErrInvalidAmount, maxEvidenceBytes)
	}

	existing, err := m.allDisputes()
	if err != nil {
		return 0, err
	}
	for _, d := range existing {
		if d.TransactionID == p.TransactionID {
			return 0, fmt.Errorf("dispute: %w - transaction %d already disputed", settlementerrors.ErrAlreadyExists, p.TransactionID)
		}
		if p.AuctionID != nil && d.AuctionID != nil && *d.AuctionID == *p.AuctionID {
			return 0, fmt.Errorf("dispute: %w - auction %d already disputed", settlementerrors.ErrAlreadyExists, *p.AuctionID)
		}
	}

	cfg, err := m.GetConfig()
	if err != nil {
		return 0, err
	}
	arbitrators, err := m.SelectArbitrators(cfg)
	if err != nil {
		return 0, err
	}
	if len(arbitrators) == 0 {
		return 0, fmt.Errorf("dispute: %w", settlementerrors.ErrInsufficientArbitrators)
	}

	id, err := repository.NextID(m.store, disputeCounter)
	if err != nil {
		return 0, fmt.Errorf("dispute: failed to allocate id: %w", err)
	}

	now := m.clock.Now()
	d := models.Dispute{
		DisputeID:     id,
		TransactionID: p.TransactionID,
		AuctionID:     p.AuctionID,
		Initiator:     p.Initiator,
		Reason:        p.Reason,
		EvidenceURI:   p.EvidenceURI,
		Arbitrators:   arbitrators,
		Votes:         map[string]bool{},
		RequiredVotes: cfg.ArbitrationQuorum,
		CreatedAt:     now,
	}
	if err := m.save(d); err != nil {
		return 0, err
	}

	data := map[string]any{
		"dispute_id":     id,
		"transaction_id": p.TransactionID,
		"initiator":      p.Initiator,
		"reason":         p.Reason,
		"arbitrators":    arbitrators,
	}
	if p.AuctionID != nil {
		data["auction_id"] = *p.AuctionID
	}
	m.events.Emit(events.New(events.DisputeCreated, now, data))
	utils.Info("dispute initiated", map[string]any{"dispute_id": id, "transaction_id": p.TransactionID, "arbitrators": len(arbitrators)})
	return id, nil
}

// SelectArbitrators returns up to the configured number of active arbitrators meeting
// the reputation floor, in registration order.
func (m *Manager) SelectArbitrators(cfg models.DisputeConfig) ([]string, error) {
	order, err := m.registry()
	if err != nil {
		return nil, err
	}
	selected := []string{}
	for _, addr := range order {
		if uint64(len(selected)) >= cfg.MaxArbitratorsPerDispute {
			break
		}
		arb, ok, err := m.arbitrator(addr)
		if err != nil {
			return nil, err
		}
		if ok && arb.IsActive && arb.ReputationScore >= cfg.MinArbitratorReputation {
			selected = append(selected, addr)
		}
	}
	return selected, nil
}

// VoteOnDispute records an assigned arbitrator's vote and resolves once quorum is reached
func (m *Manager) VoteOnDispute(disputeID uint64, arbitrator string, favorInitiator bool) (models.Dispute, error) {
	d, err := m.GetDispute(disputeID)
	if err != nil {
		return models.Dispute{}, err
	}
	if d.IsResolved() {
		return models.Dispute{}, fmt.Errorf("dispute %d: %w", disputeID, settlementerrors.ErrDisputeAlreadyResolved)
	}
	if !d.HasArbitrator(arbitrator) {
		return models.Dispute{}, fmt.Errorf("dispute %d: %w - %s is not assigned", disputeID, settlementerrors.ErrUnauthorized, arbitrator)
	}
	if _, voted := d.Votes[arbitrator]; voted {
		return models.Dispute{}, fmt.Errorf("dispute %d: %w - %s already voted", disputeID, settlementerrors.ErrAlreadyExists, arbitrator)
	}

	if d.Votes == nil {
		d.Votes = map[string]bool{}
	}
	d.Votes[arbitrator] = favorInitiator

	now := m.clock.Now()
	m.events.Emit(events.New(events.DisputeVoted, now, map[string]any{
		"dispute_id":      disputeID,
		"arbitrator":      arbitrator,
		"favor_initiator": favorInitiator,
	}))

	if err := m.tryResolve(&d); err != nil {
		return models.Dispute{}, err
	}
	if err := m.save(d); err != nil {
		return models.Dispute{}, err
	}
	utils.Info("dispute vote recorded", map[string]any{"dispute_id": disputeID, "arbitrator": arbitrator, "votes": len(d.Votes)})
	return d, nil
}

// Tally decides a dispute by strict simple majority of votes favoring the initiator.
// Ties release to the seller.
func Tally(votes map[string]bool) (models.Resolution, uint64) {
	var favor uint64
	for _, v := range votes {
		if v {
			favor++
		}
	}
	if favor > uint64(len(votes))/2 {
		return models.ResolutionRefundBuyer, favor
	}
	return models.ResolutionReleaseToSeller, uint64(len(votes)) - favor
}

func (m *Manager) tryResolve(d *models.Dispute) error {
	total := uint64(len(d.Votes))
	if total < d.RequiredVotes {
		return nil
	}

	resolution, winning := Tally(d.Votes)
	d.Resolution = resolution
	d.ResolvedAt = m.clock.Now()

	if err := m.updateReputations(*d); err != nil {
		return err
	}

	m.events.Emit(events.New(events.DisputeResolved, d.ResolvedAt, map[string]any{
		"dispute_id":    d.DisputeID,
		"resolution":    resolution.String(),
		"winning_votes": winning,
		"total_votes":   total,
	}))
	utils.Info("dispute resolved", map[string]any{"dispute_id": d.DisputeID, "resolution": resolution.String()})
	return nil
}

// ForceResolveDispute sets the resolution without voting
func (m *Manager) ForceResolveDispute(disputeID uint64, resolution models.Resolution, admin string) error {
	d, err := m.GetDispute(disputeID)
	if err != nil {
		return err
	}
	if d.IsResolved() {
		return fmt.Errorf("dispute %d: %w", disputeID, settlementerrors.ErrDisputeAlreadyResolved)
	}

	d.Resolution = resolution
	d.ResolvedAt = m.clock.Now()
	if err := m.updateReputations(d); err != nil {
		return err
	}
	if err := m.save(d); err != nil {
		return err
	}

	m.events.Emit(events.New(events.DisputeResolved, d.ResolvedAt, map[string]any{
		"dispute_id":    disputeID,
		"resolution":    resolution.String(),
		"winning_votes": uint64(0),
		"total_votes":   uint64(0),
		"forced_by":     admin,
	}))
	utils.Warn("dispute force-resolved", map[string]any{"dispute_id": disputeID, "resolution": resolution.String(), "admin": admin})
	return nil
}

// ExecuteResolution triggers the custody action of a resolved dispute. Each dispute executes once.
func (m *Manager) ExecuteResolution(disputeID uint64, executor string) error {
	d, err := m.GetDispute(disputeID)
	if err != nil {
		return err
	}
	if !d.IsResolved() || !d.Resolution.Valid() {
		return fmt.Errorf("dispute %d: %w - resolution %s is not executable", disputeID, settlementerrors.ErrInvalidState, d.Resolution)
	}
	if d.ExecutedAt != 0 {
		return fmt.Errorf("dispute %d: %w - already executed", disputeID, settlementerrors.ErrInvalidState)
	}
	if m.actions == nil || m.terms == nil {
		return fmt.Errorf("dispute %d: %w - no escrow configured", disputeID, settlementerrors.ErrInvalidState)
	}

	terms, err := m.terms.TermsFor(d)
	if err != nil {
		return fmt.Errorf("dispute %d: %w", disputeID, err)
	}

	d.ExecutedAt = m.clock.Now()
	if err := m.save(d); err != nil {
		return err
	}
	if err := escrow.Dispatch(m.actions, d, terms); err != nil {
		return fmt.Errorf("dispute %d: %w", disputeID, err)
	}

	m.events.Emit(events.New(events.DisputeExecuted, d.ExecutedAt, map[string]any{
		"dispute_id": disputeID,
		"resolution": d.Resolution.String(),
		"executor":   executor,
		"amount":     terms.Amount,
	}))
	utils.Info("dispute resolution executed", map[string]any{"dispute_id": disputeID, "resolution": d.Resolution.String()})
	return nil
}

// SubmitEvidence attaches evidence while the submission period is open
func (m *Manager) SubmitEvidence(disputeID uint64, submitter, evidenceURI string) error {
	d, err := m.GetDispute(disputeID)
	if err != nil {
		return err
	}
	if submitter != d.Initiator && !d.HasArbitrator(submitter) {
		return fmt.Errorf("dispute %d: %w - %s may not submit evidence", disputeID, settlementerrors.ErrUnauthorized, submitter)
	}
	if len(evidenceURI) == 0 || len(evidenceURI) > maxEvidenceBytes {
		return fmt.Errorf("dispute %d: %w - evidence must be 1..%d bytes", disputeID, settlementerrors.ErrInvalidAmount, maxEvidenceBytes)
	}

	cfg, err := m.GetConfig()
	if err != nil {
		return err
	}
	now := m.clock.Now()
	if now > d.CreatedAt+cfg.EvidenceSubmissionPeriod {
		return fmt.Errorf("dispute %d: %w - evidence period closed", disputeID, settlementerrors.ErrExpired)
	}

	d.EvidenceURI = evidenceURI
	if err := m.save(d); err != nil {
		return err
	}

	m.events.Emit(events.New(events.EvidenceSubmitted, now, map[string]any{
		"dispute_id": disputeID,
		"submitter":  submitter,
	}))
	utils.Info("evidence submitted", map[string]any{"dispute_id": disputeID, "submitter": submitter})
	return nil
}

// GetDispute returns a dispute by id
func (m *Manager) GetDispute(disputeID uint64) (models.Dispute, error) {
	d, ok, err := repository.Load[models.Dispute](m.store, repository.GroupDisputes, repository.IDKey(disputeID))
	if err != nil {
		return models.Dispute{}, fmt.Errorf("dispute %d: %w", disputeID, err)
	}
	if !ok {
		return models.Dispute{}, fmt.Errorf("dispute %d: %w", disputeID, settlementerrors.ErrDisputeNotFound)
	}
	return d, nil
}

// DisputeForAuction returns the dispute opened over auctionID, if any
func (m *Manager) DisputeForAuction(auctionID uint64) (models.Dispute, bool, error) {
	all, err := m.allDisputes()
	if err != nil {
		return models.Dispute{}, false, err
	}
	for _, d := range all {
		if d.AuctionID != nil && *d.AuctionID == auctionID {
			return d, true, nil
		}
	}
	return models.Dispute{}, false, nil
}

// ActiveDisputes returns every unresolved dispute
func (m *Manager) ActiveDisputes() ([]models.Dispute, error) {
	return m.filter(func(d models.Dispute) bool { return !d.IsResolved() })
}

// ResolvedDisputes returns every resolved dispute
func (m *Manager) ResolvedDisputes() ([]models.Dispute, error) {
	return m.filter(models.Dispute.IsResolved)
}

// DisputesByInitiator returns the disputes opened by initiator
func (m *Manager) DisputesByInitiator(initiator string) ([]models.Dispute, error) {
	return m.filter(func(d models.Dispute) bool { return d.Initiator == initiator })
}

func (m *Manager) filter(keep func(models.Dispute) bool) ([]models.Dispute, error) {
	all, err := m.allDisputes()
	if err != nil {
		return nil, err
	}
	out := []models.Dispute{}
	for _, d := range all {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *Manager) allDisputes() ([]models.Dispute, error) {
	keys, err := m.store.Keys(repository.GroupDisputes)
	if err != nil {
		return nil, fmt.Errorf("dispute: failed to list disputes: %w", err)
	}
	out := make([]models.Dispute, 0, len(keys))
	for _, key := range keys {
		d, ok, err := repository.Load[models.Dispute](m.store, repository.GroupDisputes, key)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *Manager) save(d models.Dispute) error {
	if err := repository.Save(m.store, repository.GroupDisputes, repository.IDKey(d.DisputeID), d); err != nil {
		return fmt.Errorf("dispute %d: %w", d.DisputeID, err)
	}
	return nil
}
