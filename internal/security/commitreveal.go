package security

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/repository"
	"marketplace-settlement/internal/settlementerrors"
	"marketplace-settlement/utils"

	"golang.org/x/crypto/sha3"
)

// ComputeCommitment returns the digest a bidder submits before revealing.
//
// Formula: Keccak256(bidder + "|" + auction_id + "|" + amount + "|" + hex(salt))
func ComputeCommitment(bidder string, auctionID uint64, amount int64, salt []byte) []byte {
	data := fmt.Sprintf("%s|%d|%d|%s", bidder, auctionID, amount, hex.EncodeToString(salt))
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(data))
	return h.Sum(nil)
}

// CommitRevealScheme stores hidden bid digests per bidder per auction
type CommitRevealScheme struct {
	store repository.Store
	clock utils.Clock
}

// NewCommitRevealScheme creates a scheme over store
func NewCommitRevealScheme(store repository.Store, clock utils.Clock) *CommitRevealScheme {
	return &CommitRevealScheme{store: store, clock: clock}
}

func commitmentKey(bidder string, auctionID uint64) string {
	return bidder + "/" + repository.IDKey(auctionID)
}

// StoreCommitment records hash for bidder on auctionID, replacing any earlier one
func (s *CommitRevealScheme) StoreCommitment(bidder string, auctionID uint64, hash []byte, deadline uint64) error {
	if len(hash) == 0 {
		return fmt.Errorf("commit: %w - empty commitment", settlementerrors.ErrInvalidAmount)
	}
	c := models.Commitment{
		Bidder:         bidder,
		AuctionID:      auctionID,
		Hash:           append([]byte(nil), hash...),
		RevealDeadline: deadline,
	}
	return repository.Save(s.store, repository.GroupCommitments, commitmentKey(bidder, auctionID), c)
}

// GetCommitment returns the stored commitment of bidder on auctionID
func (s *CommitRevealScheme) GetCommitment(bidder string, auctionID uint64) (models.Commitment, bool, error) {
	return repository.Load[models.Commitment](s.store, repository.GroupCommitments, commitmentKey(bidder, auctionID))
}

// RevealCommitment verifies amount and salt against the stored digest and consumes it
func (s *CommitRevealScheme) RevealCommitment(bidder string, auctionID uint64, amount int64, salt []byte) error {
	c, ok, err := s.GetCommitment(bidder, auctionID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("reveal: %w - no commitment for %s on auction %d", settlementerrors.ErrNotFound, bidder, auctionID)
	}

	if s.clock.Now() > c.RevealDeadline {
		return fmt.Errorf("reveal: %w - deadline %d passed", settlementerrors.ErrExpired, c.RevealDeadline)
	}

	if !bytes.Equal(ComputeCommitment(bidder, auctionID, amount, salt), c.Hash) {
		return fmt.Errorf("reveal: %w", settlementerrors.ErrCommitmentMismatch)
	}

	return s.store.Remove(repository.GroupCommitments, commitmentKey(bidder, auctionID))
}

// CleanupExpiredCommitments removes every commitment whose reveal deadline has passed
func (s *CommitRevealScheme) CleanupExpiredCommitments() (int, error) {
	keys, err := s.store.Keys(repository.GroupCommitments)
	if err != nil {
		return 0, fmt.Errorf("cleanup commitments: %w", err)
	}

	now := s.clock.Now()
	removed := 0
	for _, key := range keys {
		c, ok, err := repository.Load[models.Commitment](s.store, repository.GroupCommitments, key)
		if err != nil {
			return removed, err
		}
		if !ok || now <= c.RevealDeadline {
			continue
		}
		if err := s.store.Remove(repository.GroupCommitments, key); err != nil {
			return removed, fmt.Errorf("cleanup commitments: %w", err)
		}
		removed++
	}

	if removed > 0 {
		utils.Info("expired commitments removed", map[string]any{"removed": removed})
	}
	return removed, nil
}

// CommitmentsFor lists the open commitments of bidder
func (s *CommitRevealScheme) CommitmentsFor(bidder string) ([]models.Commitment, error) {
	keys, err := s.store.Keys(repository.GroupCommitments)
	if err != nil {
		return nil, err
	}
	var out []models.Commitment
	for _, key := range keys {
		if !strings.HasPrefix(key, bidder+"/") {
			continue
		}
		c, ok, err := repository.Load[models.Commitment](s.store, repository.GroupCommitments, key)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, c)
		}
	}
	return out, nil
}
