package models

// AuctionType selects how an auction discovers its price
type AuctionType int

const (
	// English auctions rise with competing bids
	English AuctionType = iota
	// Dutch auctions decay linearly from the starting price to the reserve
	Dutch
)

func (t AuctionType) String() string {
	switch t {
	case English:
		return "english"
	case Dutch:
		return "dutch"
	default:
		return "unknown"
	}
}

// TransactionState is the lifecycle state shared by auctions and sale transactions
type TransactionState int

const (
	Pending TransactionState = iota
	Funded
	Executed
	Cancelled
	Disputed
	Resolved
)

func (s TransactionState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Funded:
		return "funded"
	case Executed:
		return "executed"
	case Cancelled:
		return "cancelled"
	case Disputed:
		return "disputed"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Asset identifies a settlement currency
type Asset struct {
	Contract string `json:"contract"`
	Symbol   string `json:"symbol"`
}

// Key returns the record key used for per-currency ledgers
func (a Asset) Key() string {
	return a.Contract + ":" + a.Symbol
}

// RoyaltyDistribution describes how sale proceeds are split, in basis points
type RoyaltyDistribution struct {
	CreatorAddress     string           `json:"creator_address"`
	CreatorPercentage  uint64           `json:"creator_percentage"`
	SellerPercentage   uint64           `json:"seller_percentage"`
	PlatformPercentage uint64           `json:"platform_percentage"`
	TotalAmount        int64            `json:"total_amount"`
	Amounts            map[string]int64 `json:"amounts,omitempty"`
}

// AuctionConfig holds the process-wide auction tunables owned by the administrator
type AuctionConfig struct {
	MinBidIncrementBps  uint64 `json:"min_bid_increment_bps"`
	MaxAuctionDuration  uint64 `json:"max_auction_duration"`
	ExtensionWindow     uint64 `json:"extension_window"`
	DutchPriceDecrement uint64 `json:"dutch_price_decrement"`
	CommitRevealEnabled bool   `json:"commit_reveal_enabled"`
	RevealPeriod        uint64 `json:"reveal_period"`
}

// DefaultAuctionConfig returns the configuration seeded on first start
func DefaultAuctionConfig() AuctionConfig {
	return AuctionConfig{
		MinBidIncrementBps:  100,
		MaxAuctionDuration:  604800,
		ExtensionWindow:     300,
		DutchPriceDecrement: 1000,
		CommitRevealEnabled: false,
		RevealPeriod:        3600,
	}
}

// Auction is the persisted auction record. Bids are kept in their own record group
// and only attached when the auction is read back for callers.
type Auction struct {
	AuctionID       uint64              `json:"auction_id"`
	AuctionType     AuctionType         `json:"auction_type"`
	Seller          string              `json:"seller"`
	NFTAddress      string              `json:"nft_address"`
	TokenID         uint64              `json:"token_id"`
	StartingPrice   int64               `json:"starting_price"`
	ReservePrice    int64               `json:"reserve_price"`
	HighestBid      int64               `json:"highest_bid"`
	HighestBidder   string              `json:"highest_bidder,omitempty"`
	BidIncrement    int64               `json:"bid_increment"`
	StartTime       uint64              `json:"start_time"`
	EndTime         uint64              `json:"end_time"`
	State           TransactionState    `json:"state"`
	Bids            []Bid               `json:"bids,omitempty" cbor:"-"`
	ExtensionWindow uint64              `json:"extension_window"`
	Currency        Asset               `json:"currency"`
	RoyaltyInfo     RoyaltyDistribution `json:"royalty_info"`
	PlatformFee     int64               `json:"platform_fee"`
	Winner          string              `json:"winner,omitempty"`
	FinalPrice      int64               `json:"final_price"`
	Settled         bool                `json:"settled"`
}

// Bid is a single bid entry. Committed bids are rewritten in place once revealed.
type Bid struct {
	Bidder         string `json:"bidder"`
	Amount         int64  `json:"amount"`
	PlacedAt       uint64 `json:"placed_at"`
	IsCommitted    bool   `json:"is_committed"`
	CommitmentHash []byte `json:"commitment_hash,omitempty"`
}

// DutchAuctionData caches the lazily recomputed price of a Dutch auction
type DutchAuctionData struct {
	StartingPrice   int64  `json:"starting_price"`
	EndingPrice     int64  `json:"ending_price"`
	PriceDecrement  uint64 `json:"price_decrement"`
	TimeUnit        uint64 `json:"time_unit"`
	CurrentPrice    int64  `json:"current_price"`
	LastPriceUpdate uint64 `json:"last_price_update"`
}

// Commitment is a hidden bid digest awaiting reveal
type Commitment struct {
	Bidder         string `json:"bidder"`
	AuctionID      uint64 `json:"auction_id"`
	Hash           []byte `json:"hash"`
	RevealDeadline uint64 `json:"reveal_deadline"`
}

// AuctionStats summarizes bidding activity on one auction
type AuctionStats struct {
	TotalBids     uint64 `json:"total_bids"`
	UniqueBidders uint64 `json:"unique_bidders"`
	HighestBid    int64  `json:"highest_bid"`
	AverageBid    int64  `json:"average_bid"`
	// BidFrequency is bids per hour scaled by 1000
	BidFrequency int64 `json:"bid_frequency"`
}
