package escrow

import (
	"fmt"

	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/settlementerrors"
)

// AssetTransfer moves fungible value between accounts
type AssetTransfer interface {
	Transfer(currency models.Asset, from, to string, amount int64) error
}

// ItemOwnership moves and checks ownership of non-fungible items
type ItemOwnership interface {
	TransferItem(nftAddress string, tokenID uint64, from, to string) error
	CheckOwnership(nftAddress string, tokenID uint64, owner string) (bool, error)
}

// Terms are the escrowed positions a dispute resolution acts on
type Terms struct {
	Account    string       `json:"account"`
	Buyer      string       `json:"buyer"`
	Seller     string       `json:"seller"`
	Currency   models.Asset `json:"currency"`
	Amount     int64        `json:"amount"`
	NFTAddress string       `json:"nft_address,omitempty"`
	TokenID    uint64       `json:"token_id"`
}

// Actions are the four custody actions a resolved dispute can trigger
type Actions interface {
	RefundBuyer(d models.Dispute, t Terms) error
	ReleaseToSeller(d models.Dispute, t Terms) error
	SplitFunds(d models.Dispute, t Terms) error
	CancelTransaction(d models.Dispute, t Terms) error
}

// Dispatch invokes the action matching the dispute's resolution
func Dispatch(actions Actions, d models.Dispute, t Terms) error {
	switch d.Resolution {
	case models.ResolutionRefundBuyer:
		return actions.RefundBuyer(d, t)
	case models.ResolutionReleaseToSeller:
		return actions.ReleaseToSeller(d, t)
	case models.ResolutionSplitFunds:
		return actions.SplitFunds(d, t)
	case models.ResolutionCancelTransaction:
		return actions.CancelTransaction(d, t)
	default:
		return fmt.Errorf("escrow: %w - resolution %d is not executable", settlementerrors.ErrInvalidState, d.Resolution)
	}
}

// TransferActions implements Actions on top of the transfer facades
type TransferActions struct {
	Assets AssetTransfer
	Items  ItemOwnership
}

// NewTransferActions creates custody actions backed by assets and items
func NewTransferActions(assets AssetTransfer, items ItemOwnership) *TransferActions {
	return &TransferActions{Assets: assets, Items: items}
}

func (a *TransferActions) pay(j *Journal, t Terms, to string, amount int64) error {
	if amount <= 0 {
		return nil
	}
	if err := j.Pay(t.Currency, t.Account, to, amount); err != nil {
		return fmt.Errorf("escrow: %w - %v", settlementerrors.ErrPaymentFailed, err)
	}
	return nil
}

// RefundBuyer returns the escrowed amount to the buyer
func (a *TransferActions) RefundBuyer(_ models.Dispute, t Terms) error {
	return a.pay(NewJournal(a.Assets, a.Items), t, t.Buyer, t.Amount)
}

// ReleaseToSeller pays the escrowed amount to the seller
func (a *TransferActions) ReleaseToSeller(_ models.Dispute, t Terms) error {
	return a.pay(NewJournal(a.Assets, a.Items), t, t.Seller, t.Amount)
}

// SplitFunds pays half to each side. The odd unit goes to the seller. When the second
// payment fails the buyer's half is pulled back into escrow.
func (a *TransferActions) SplitFunds(_ models.Dispute, t Terms) error {
	j := NewJournal(a.Assets, a.Items)
	half := t.Amount / 2
	if err := a.pay(j, t, t.Buyer, half); err != nil {
		return err
	}
	if err := a.pay(j, t, t.Seller, t.Amount-half); err != nil {
		return j.Abort(err)
	}
	return nil
}

// CancelTransaction refunds the buyer and returns the item to the seller when it already
// moved. The refund is reversed if the item cannot be returned.
func (a *TransferActions) CancelTransaction(_ models.Dispute, t Terms) error {
	j := NewJournal(a.Assets, a.Items)
	if err := a.pay(j, t, t.Buyer, t.Amount); err != nil {
		return err
	}
	if t.NFTAddress == "" || a.Items == nil {
		return nil
	}
	owned, err := a.Items.CheckOwnership(t.NFTAddress, t.TokenID, t.Buyer)
	if err != nil {
		return j.Abort(fmt.Errorf("escrow: ownership check failed: %w", err))
	}
	if !owned {
		return nil
	}
	if err := j.MoveItem(t.NFTAddress, t.TokenID, t.Buyer, t.Seller); err != nil {
		return j.Abort(fmt.Errorf("escrow: item return failed: %w", err))
	}
	return nil
}
