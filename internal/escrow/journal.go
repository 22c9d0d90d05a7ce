package escrow

import (
	"errors"
	"fmt"

	"marketplace-settlement/internal/models"
	"marketplace-settlement/utils"
)

// Journal executes outbound movements and remembers how to reverse them, so a multi-step
// payout that fails halfway can be walked back before the caller reports the error.
type Journal struct {
	assets AssetTransfer
	items  ItemOwnership
	undo   []movement
}

type movement struct {
	desc    string
	reverse func() error
}

// NewJournal creates an empty journal over assets and items
func NewJournal(assets AssetTransfer, items ItemOwnership) *Journal {
	return &Journal{assets: assets, items: items}
}

// Pay transfers amount and records the reverse transfer
func (j *Journal) Pay(currency models.Asset, from, to string, amount int64) error {
	if err := j.assets.Transfer(currency, from, to, amount); err != nil {
		return err
	}
	j.undo = append(j.undo, movement{
		desc:    fmt.Sprintf("%d %s %s->%s", amount, currency.Key(), from, to),
		reverse: func() error { return j.assets.Transfer(currency, to, from, amount) },
	})
	return nil
}

// MoveItem transfers an item and records the reverse transfer
func (j *Journal) MoveItem(nftAddress string, tokenID uint64, from, to string) error {
	if err := j.items.TransferItem(nftAddress, tokenID, from, to); err != nil {
		return err
	}
	j.undo = append(j.undo, movement{
		desc:    fmt.Sprintf("%s/%d %s->%s", nftAddress, tokenID, from, to),
		reverse: func() error { return j.items.TransferItem(nftAddress, tokenID, to, from) },
	})
	return nil
}

// Len returns the number of recorded movements
func (j *Journal) Len() int {
	return len(j.undo)
}

// Unwind reverses the recorded movements newest first. Every reversal is attempted; the
// failures are joined into the returned error.
func (j *Journal) Unwind() error {
	var errs []error
	for i := len(j.undo) - 1; i >= 0; i-- {
		mv := j.undo[i]
		if err := mv.reverse(); err != nil {
			utils.Error("compensation failed", map[string]any{"movement": mv.desc, "error": err.Error()})
			errs = append(errs, fmt.Errorf("reverse %s: %w", mv.desc, err))
			continue
		}
		utils.Warn("movement reversed", map[string]any{"movement": mv.desc})
	}
	j.undo = nil
	return errors.Join(errs...)
}

// Abort unwinds the journal and returns cause, annotated when compensation itself failed
func (j *Journal) Abort(cause error) error {
	if err := j.Unwind(); err != nil {
		return fmt.Errorf("%w (compensation incomplete: %v)", cause, err)
	}
	return cause
}
