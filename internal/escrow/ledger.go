package escrow

import (
	"fmt"
	"sync"

	"marketplace-settlement/internal/models"
	"marketplace-settlement/internal/settlementerrors"
	"marketplace-settlement/utils"
)

// Receipt records one executed movement
type Receipt struct {
	ID         string       `json:"id"`
	Currency   models.Asset `json:"currency,omitempty"`
	From       string       `json:"from"`
	To         string       `json:"to"`
	Amount     int64        `json:"amount,omitempty"`
	NFTAddress string       `json:"nft_address,omitempty"`
	TokenID    uint64       `json:"token_id,omitempty"`
}

// Ledger is an in-memory custody backend implementing both transfer facades
type Ledger struct {
	mu       sync.Mutex
	balances map[string]map[string]int64 // key: currency -> account -> balance
	owners   map[string]string           // key: nft/token -> owner
	receipts []Receipt
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[string]map[string]int64),
		owners:   make(map[string]string),
	}
}

func itemKey(nftAddress string, tokenID uint64) string {
	return fmt.Sprintf("%s/%d", nftAddress, tokenID)
}

// Deposit credits account with amount of currency
func (l *Ledger) Deposit(currency models.Asset, account string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("ledger: %w - deposit must be positive", settlementerrors.ErrInvalidAmount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	accounts, ok := l.balances[currency.Key()]
	if !ok {
		accounts = make(map[string]int64)
		l.balances[currency.Key()] = accounts
	}
	sum, err := utils.SafeAdd(accounts[account], amount)
	if err != nil {
		return err
	}
	accounts[account] = sum
	return nil
}

// Balance returns the balance of account in currency
func (l *Ledger) Balance(currency models.Asset, account string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[currency.Key()][account]
}

// Transfer moves amount from one account to another
func (l *Ledger) Transfer(currency models.Asset, from, to string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("ledger: %w - transfer must be positive", settlementerrors.ErrInvalidAmount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	accounts := l.balances[currency.Key()]
	if accounts == nil || accounts[from] < amount {
		return fmt.Errorf("ledger: %w - %s holds less than %d", settlementerrors.ErrInsufficientFunds, from, amount)
	}
	credited, err := utils.SafeAdd(accounts[to], amount)
	if err != nil {
		return err
	}
	accounts[from] -= amount
	accounts[to] = credited

	l.receipts = append(l.receipts, Receipt{ID: utils.GenerateID(), Currency: currency, From: from, To: to, Amount: amount})
	utils.Debug("ledger transfer", map[string]any{"currency": currency.Key(), "from": from, "to": to, "amount": amount})
	return nil
}

// Mint assigns an item to owner
func (l *Ledger) Mint(nftAddress string, tokenID uint64, owner string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := itemKey(nftAddress, tokenID)
	if _, exists := l.owners[key]; exists {
		return fmt.Errorf("ledger: %w - item %s", settlementerrors.ErrAlreadyExists, key)
	}
	l.owners[key] = owner
	return nil
}

// TransferItem moves an item from its current owner
func (l *Ledger) TransferItem(nftAddress string, tokenID uint64, from, to string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := itemKey(nftAddress, tokenID)
	if l.owners[key] != from {
		return fmt.Errorf("ledger: %w - %s does not own %s", settlementerrors.ErrUnauthorized, from, key)
	}
	l.owners[key] = to
	l.receipts = append(l.receipts, Receipt{ID: utils.GenerateID(), From: from, To: to, NFTAddress: nftAddress, TokenID: tokenID})
	return nil
}

// CheckOwnership reports whether owner holds the item
func (l *Ledger) CheckOwnership(nftAddress string, tokenID uint64, owner string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.owners[itemKey(nftAddress, tokenID)] == owner, nil
}

// Receipts returns every executed movement in order
func (l *Ledger) Receipts() []Receipt {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Receipt(nil), l.receipts...)
}

// Holding is a starting balance applied by Seed
type Holding struct {
	Currency models.Asset
	Account  string
	Amount   int64
}

// ItemHolding is a starting item owner applied by Seed
type ItemHolding struct {
	NFTAddress string
	TokenID    uint64
	Owner      string
}

// Seed credits the holdings and mints the items, stopping at the first failure
func (l *Ledger) Seed(holdings []Holding, items []ItemHolding) error {
	for _, h := range holdings {
		if err := l.Deposit(h.Currency, h.Account, h.Amount); err != nil {
			return fmt.Errorf("seed %s for %s: %w", h.Currency.Key(), h.Account, err)
		}
	}
	for _, it := range items {
		if err := l.Mint(it.NFTAddress, it.TokenID, it.Owner); err != nil {
			return fmt.Errorf("seed item: %w", err)
		}
	}
	return nil
}
