package settlement

import (
	"errors"
	"fmt"

	auction "marketplace-settlement/internal/auctionEngine"
	dispute "marketplace-settlement/internal/disputeService"
	"marketplace-settlement/internal/escrow"
	"marketplace-settlement/internal/events"
	fee "marketplace-settlement/internal/feeService"
	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/repository"
	"marketplace-settlement/internal/security"
	"marketplace-settlement/internal/settlementerrors"
	"marketplace-settlement/utils"
)

const adminKey = "admin"

// Options wires a Marketplace to its collaborators
type Options struct {
	Store         repository.Store
	Clock         utils.Clock
	Events        events.Emitter
	Assets        escrow.AssetTransfer
	Items         escrow.ItemOwnership
	EscrowAccount string
}

// Seeds are the configurations stored on first start
type Seeds struct {
	Admin   string
	Auction models.AuctionConfig
	Fee     models.FeeConfig
	Dispute models.DisputeConfig
}

// Marketplace is the entry-point surface of the settlement core. Every mutating operation
// runs under the reentrancy guard inside one store transaction; its events reach the log
// only when the transaction commits.
type Marketplace struct {
	store   repository.Store
	clock   utils.Clock
	log     events.Emitter
	guard   *security.Guard
	locks   *security.FunctionLock
	assets  escrow.AssetTransfer
	items   escrow.ItemOwnership
	account string
}

// New creates a marketplace from opts
func New(opts Options) *Marketplace {
	if opts.Clock == nil {
		opts.Clock = utils.SystemClock{}
	}
	if opts.Events == nil {
		opts.Events = events.Discard
	}
	return &Marketplace{
		store:   opts.Store,
		clock:   opts.Clock,
		log:     opts.Events,
		guard:   security.NewGuard(opts.Store, opts.Events, opts.Clock),
		locks:   security.NewFunctionLock(opts.Store),
		assets:  opts.Assets,
		items:   opts.Items,
		account: opts.EscrowAccount,
	}
}

// session binds the components to one invocation's store and event buffer
type session struct {
	store    repository.Store
	events   events.Emitter
	auctions *auction.Engine
	fees     *fee.Manager
	disputes *dispute.Manager
}

func (m *Marketplace) newSession(store repository.Store, emitter events.Emitter) *session {
	s := &session{store: store, events: emitter}
	s.auctions = auction.NewEngine(store, m.clock, emitter, m.log)
	s.fees = fee.NewManager(store, m.clock, emitter, m.assets, m.account)
	s.disputes = dispute.NewManager(store, m.clock, emitter,
		escrow.NewTransferActions(m.assets, m.items),
		auctionTerms{auctions: s.auctions, account: m.account})
	return s
}

// invoke runs fn as one protected, all-or-nothing invocation
func (m *Marketplace) invoke(caller, function string, fn func(s *session) error) error {
	release, err := m.guard.Enter(caller, function)
	if err != nil {
		return err
	}
	defer release()

	tx := repository.NewTxn(m.store)
	buf := &events.Buffer{}
	if err := fn(m.newSession(tx, buf)); err != nil {
		tx.Rollback()
		buf.Discard()
		utils.Warn("invocation rejected", map[string]any{"function": function, "caller": caller, "error": err.Error()})
		return err
	}
	if err := tx.Commit(); err != nil {
		buf.Discard()
		utils.Error("invocation commit failed", map[string]any{"function": function, "caller": caller, "error": err.Error()})
		return fmt.Errorf("%s: %w", function, err)
	}
	buf.Flush(m.log)
	return nil
}

// view runs a read-only fn against committed state
func (m *Marketplace) view(fn func(s *session) error) error {
	return fn(m.newSession(m.store, events.Discard))
}

// Initialize clears guard flags left by an earlier process and stores the admin and
// configuration seeds that are not set yet. It runs once at startup, before the marketplace
// serves any other call.
func (m *Marketplace) Initialize(seeds Seeds) error {
	if err := m.recoverLocks(); err != nil {
		return err
	}
	return m.invoke(seeds.Admin, "initialize", func(s *session) error {
		admin, ok, err := repository.Load[string](s.store, repository.GroupConfig, adminKey)
		if err != nil {
			return err
		}
		if !ok || admin == "" {
			if seeds.Admin == "" {
				return fmt.Errorf("initialize: %w - missing admin address", settlementerrors.ErrInvalidState)
			}
			if err := repository.Save(s.store, repository.GroupConfig, adminKey, seeds.Admin); err != nil {
				return err
			}
		}

		if _, err := s.auctions.GetConfig(); err != nil {
			if !errors.Is(err, settlementerrors.ErrNotFound) {
				return err
			}
			if err := s.auctions.SetConfig(seeds.Auction); err != nil {
				return err
			}
		}
		if _, err := s.fees.GetConfig(); err != nil {
			if !errors.Is(err, settlementerrors.ErrNotFound) {
				return err
			}
			if err := s.fees.UpdateConfig(seeds.Fee, seeds.Admin); err != nil {
				return err
			}
		}
		if _, err := s.disputes.GetConfig(); err != nil {
			if !errors.Is(err, settlementerrors.ErrNotFound) {
				return err
			}
			if err := s.disputes.UpdateConfig(seeds.Dispute); err != nil {
				return err
			}
		}
		return nil
	})
}

func (m *Marketplace) recoverLocks() error {
	stale, err := m.guard.Reset()
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	if stale {
		utils.Warn("cleared stale reentrancy flag", nil)
	}
	released, err := m.locks.Reset()
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	if len(released) > 0 {
		utils.Warn("released stale function locks", map[string]any{"locks": released})
	}
	return nil
}

// Admin returns the configured administrator address
func (m *Marketplace) Admin() (string, error) {
	admin, ok, err := repository.Load[string](m.store, repository.GroupConfig, adminKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("admin: %w - marketplace not initialized", settlementerrors.ErrNotFound)
	}
	return admin, nil
}

func requireAdmin(s *session, caller string) error {
	admin, ok, err := repository.Load[string](s.store, repository.GroupConfig, adminKey)
	if err != nil {
		return err
	}
	if !ok || caller == "" || caller != admin {
		return fmt.Errorf("%w - %s", settlementerrors.ErrNotAdmin, caller)
	}
	return nil
}
