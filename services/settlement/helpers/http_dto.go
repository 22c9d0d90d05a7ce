package helpers

import "marketplace-settlement/internal/models"

// Request DTOs
type CreateAuctionRequest struct {
	AuctionType   string       `json:"auction_type" binding:"required,oneof=english dutch"`
	Seller        string       `json:"seller" binding:"required"`
	NFTAddress    string       `json:"nft_address" binding:"required"`
	TokenID       uint64       `json:"token_id"`
	StartingPrice int64        `json:"starting_price" binding:"required,gt=0"`
	ReservePrice  int64        `json:"reserve_price" binding:"gte=0"`
	Duration      uint64       `json:"duration" binding:"required,gt=0"`
	BidIncrement  int64        `json:"bid_increment" binding:"required,gt=0"`
	Currency      models.Asset `json:"currency"`
}

type PlaceBidRequest struct {
	Bidder string `json:"bidder" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
	// Commitment is the hex-encoded digest of a hidden bid
	Commitment string `json:"commitment,omitempty" binding:"omitempty,hexadecimal"`
}

type RevealBidRequest struct {
	Bidder string `json:"bidder" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Salt   string `json:"salt" binding:"required,hexadecimal"`
}

type CallerRequest struct {
	Caller string `json:"caller" binding:"required"`
}

type AuctionConfigRequest struct {
	Admin  string               `json:"admin" binding:"required"`
	Config models.AuctionConfig `json:"config"`
}

type InitiateDisputeRequest struct {
	TransactionID uint64  `json:"transaction_id"`
	AuctionID     *uint64 `json:"auction_id,omitempty"`
	Initiator     string  `json:"initiator" binding:"required"`
	Reason        string  `json:"reason" binding:"required"`
	EvidenceURI   string  `json:"evidence_uri,omitempty"`
}

type VoteRequest struct {
	Arbitrator     string `json:"arbitrator" binding:"required"`
	FavorInitiator bool   `json:"favor_initiator"`
}

type EvidenceRequest struct {
	Submitter   string `json:"submitter" binding:"required"`
	EvidenceURI string `json:"evidence_uri" binding:"required"`
}

type ForceResolveRequest struct {
	Admin      string `json:"admin" binding:"required"`
	Resolution uint64 `json:"resolution" binding:"required"`
}

type RegisterArbitratorRequest struct {
	Address    string `json:"address" binding:"required"`
	Reputation uint64 `json:"reputation"`
}

type ReputationRequest struct {
	Admin string `json:"admin" binding:"required"`
	Delta int64  `json:"delta"`
}

type ArbitratorActiveRequest struct {
	Admin  string `json:"admin" binding:"required"`
	Active bool   `json:"active"`
}

type DisputeConfigRequest struct {
	Admin  string               `json:"admin" binding:"required"`
	Config models.DisputeConfig `json:"config"`
}

type CollectFeeRequest struct {
	Amount   int64        `json:"amount" binding:"gte=0"`
	Currency models.Asset `json:"currency"`
	Payer    string       `json:"payer" binding:"required"`
	Admin    string       `json:"admin" binding:"required"`
}

type WithdrawFeesRequest struct {
	Currency  models.Asset `json:"currency"`
	Recipient string       `json:"recipient" binding:"required"`
	Admin     string       `json:"admin" binding:"required"`
}

type FeeConfigRequest struct {
	Admin  string           `json:"admin" binding:"required"`
	Config models.FeeConfig `json:"config"`
}

type VIPRequest struct {
	User  string `json:"user" binding:"required"`
	Admin string `json:"admin" binding:"required"`
}

// Response DTOs
type IDResponse struct {
	ID uint64 `json:"id"`
}

type PriceResponse struct {
	AuctionID uint64 `json:"auction_id"`
	Price     int64  `json:"price"`
}

type CleanupResponse struct {
	Removed int `json:"removed"`
}

type WithdrawResponse struct {
	Amount int64 `json:"amount"`
}

type VolumeResponse struct {
	User   string `json:"user"`
	Volume int64  `json:"volume"`
}

type AccumulatedResponse struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}
