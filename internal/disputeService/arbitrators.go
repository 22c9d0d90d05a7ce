package dispute

import (
	"fmt"
	"math"

	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/repository"
	"marketplace-settlement/internal/settlementerrors"
	"marketplace-settlement/utils"
)

// RegisterArbitrator adds addr to the registry. An address registers once; later changes
// go through the admin-only reputation and activation calls.
func (m *Manager) RegisterArbitrator(addr string, initialReputation uint64) error {
	if addr == "" {
		return fmt.Errorf("dispute: %w - missing arbitrator address", settlementerrors.ErrInvalidAmount)
	}
	if initialReputation > maxReputation {
		return fmt.Errorf("dispute: %w - initial reputation %d exceeds %d", settlementerrors.ErrInvalidAmount, initialReputation, maxReputation)
	}
	if _, exists, err := m.arbitrator(addr); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("dispute: %w - arbitrator %s already registered", settlementerrors.ErrAlreadyExists, addr)
	}

	arb := models.Arbitrator{
		Address:         addr,
		ReputationScore: initialReputation,
		IsActive:        true,
		RegisteredAt:    m.clock.Now(),
	}
	if err := m.saveArbitrator(arb); err != nil {
		return err
	}

	order, err := m.registry()
	if err != nil {
		return err
	}
	if err := repository.Save(m.store, repository.GroupConfig, registryKey, append(order, addr)); err != nil {
		return fmt.Errorf("dispute: %w", err)
	}
	utils.Info("arbitrator registered", map[string]any{"arbitrator": addr, "reputation": initialReputation})
	return nil
}

// UpdateArbitratorReputation adjusts the reputation of addr by delta, saturating at the bounds
func (m *Manager) UpdateArbitratorReputation(addr string, delta int64) error {
	arb, err := m.GetArbitrator(addr)
	if err != nil {
		return err
	}
	arb.ReputationScore = applyDelta(arb.ReputationScore, delta)
	return m.saveArbitrator(arb)
}

func applyDelta(score uint64, delta int64) uint64 {
	if delta >= 0 {
		if score > math.MaxUint64-uint64(delta) {
			return math.MaxUint64
		}
		return score + uint64(delta)
	}
	dec := uint64(-(delta + 1)) + 1
	if dec > score {
		return 0
	}
	return score - dec
}

// SetArbitratorActive toggles whether addr is eligible for new disputes
func (m *Manager) SetArbitratorActive(addr string, active bool) error {
	arb, err := m.GetArbitrator(addr)
	if err != nil {
		return err
	}
	arb.IsActive = active
	return m.saveArbitrator(arb)
}

// GetArbitrator returns the registry record of addr
func (m *Manager) GetArbitrator(addr string) (models.Arbitrator, error) {
	arb, ok, err := m.arbitrator(addr)
	if err != nil {
		return models.Arbitrator{}, err
	}
	if !ok {
		return models.Arbitrator{}, fmt.Errorf("dispute: %w - arbitrator %s", settlementerrors.ErrNotFound, addr)
	}
	return arb, nil
}

// Arbitrators lists the registry in registration order
func (m *Manager) Arbitrators() ([]models.Arbitrator, error) {
	order, err := m.registry()
	if err != nil {
		return nil, err
	}
	out := make([]models.Arbitrator, 0, len(order))
	for _, addr := range order {
		arb, ok, err := m.arbitrator(addr)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, arb)
		}
	}
	return out, nil
}

// updateReputations counts d as a successful resolution for every assigned arbitrator
func (m *Manager) updateReputations(d models.Dispute) error {
	for _, addr := range d.Arbitrators {
		arb, ok, err := m.arbitrator(addr)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		arb.DisputesHandled++
		arb.SuccessfulResolutions++
		arb.ReputationScore = arb.SuccessfulResolutions * 100 / arb.DisputesHandled
		if err := m.saveArbitrator(arb); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) registry() ([]string, error) {
	order, _, err := repository.Load[[]string](m.store, repository.GroupConfig, registryKey)
	if err != nil {
		return nil, fmt.Errorf("dispute: %w", err)
	}
	return order, nil
}

func (m *Manager) arbitrator(addr string) (models.Arbitrator, bool, error) {
	arb, ok, err := repository.Load[models.Arbitrator](m.store, repository.GroupArbitrators, addr)
	if err != nil {
		return models.Arbitrator{}, false, fmt.Errorf("dispute: %w", err)
	}
	return arb, ok, nil
}

func (m *Manager) saveArbitrator(arb models.Arbitrator) error {
	if err := repository.Save(m.store, repository.GroupArbitrators, arb.Address, arb); err != nil {
		return fmt.Errorf("dispute: %w", err)
	}
	return nil
}
