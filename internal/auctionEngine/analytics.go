package auction

import (
	"marketplace-settlement/internal/models"
	"marketplace-settlement/utils"
)

// Stats summarizes the bidding activity of one auction
func (e *Engine) Stats(auctionID uint64) (models.AuctionStats, error) {
	a, err := e.loadAuction(auctionID)
	if err != nil {
		return models.AuctionStats{}, err
	}
	bids, err := e.loadBids(auctionID)
	if err != nil {
		return models.AuctionStats{}, err
	}
	return ComputeStats(a, bids)
}

// ComputeStats derives AuctionStats from a bid list. Bid frequency is bids per hour
// scaled by 1000 over the span from the first to the last bid; it is 0 below two bids.
func ComputeStats(a models.Auction, bids []models.Bid) (models.AuctionStats, error) {
	stats := models.AuctionStats{
		TotalBids:  uint64(len(bids)),
		HighestBid: a.HighestBid,
	}
	if len(bids) == 0 {
		return stats, nil
	}

	bidders := make(map[string]struct{}, len(bids))
	var total int64
	for _, b := range bids {
		bidders[b.Bidder] = struct{}{}
		sum, err := utils.SafeAdd(total, b.Amount)
		if err != nil {
			return models.AuctionStats{}, err
		}
		total = sum
	}
	stats.UniqueBidders = uint64(len(bidders))
	stats.AverageBid = total / int64(len(bids))

	stats.BidFrequency = bidFrequency(bids)
	return stats, nil
}

func bidFrequency(bids []models.Bid) int64 {
	if len(bids) < 2 {
		return 0
	}
	first, last := bids[0].PlacedAt, bids[len(bids)-1].PlacedAt
	if last <= first {
		return 0
	}
	// hours scaled by 1000, truncated before dividing
	hours := int64(last-first) * 1000 / 3600
	if hours == 0 {
		return 0
	}
	return int64(len(bids)) * 1000 / hours
}
