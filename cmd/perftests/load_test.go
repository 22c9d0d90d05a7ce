package perftests

import (
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"marketplace-settlement/internal/settlementerrors"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name        string
	NumUsers    int
	NumAuctions int
	ReadRatio   int  // reads out of 10 operations
	Burst       bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	latencies := append([]time.Duration(nil), om.latencies...)
	om.mu.Unlock()
	if len(latencies) == 0 {
		return
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// Benchmark_Load_Marketplace runs multiple scenarios
func Benchmark_Load_Marketplace(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 200, 0, false},
		{"High-Contention-WriteHeavy", 500, 5, 0, false},
		{"Mixed-Workload", 300, 50, 7, false},
		{"ReadHeavy", 200, 50, 9, false},
		{"Edge-Case-SingleAuction", 100, 1, 5, false},
		{"Peak-Burst", 500, 50, 0, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	env := setupMarket(b)
	auctionIDs := make([]uint64, s.NumAuctions)
	for i := range auctionIDs {
		auctionIDs[i] = env.createAuction(b, uint64(i))
	}

	// the marketplace rejects overlapping calls, so goroutines queue on the host lock
	// the way the HTTP layer serializes requests
	var host sync.Mutex
	var totalOps, successfulBids, rejectedBids, totalReads int64
	rejections := make(map[int]int64)
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

		for pb.Next() {
			auctionID := auctionIDs[rnd.Intn(len(auctionIDs))]
			opType := rnd.Intn(10)
			user := bidder(rnd.Intn(s.NumUsers))

			opStart := time.Now()
			host.Lock()
			if opType < s.ReadRatio {
				if _, err := env.market.AuctionStats(auctionID); err != nil {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&totalReads, 1)
			} else if err := env.placeBid(auctionID, user); err != nil {
				rejections[settlementerrors.CodeOf(err)]++
				atomic.AddInt64(&rejectedBids, 1)
			} else {
				atomic.AddInt64(&successfulBids, 1)
			}
			host.Unlock()

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Auctions: %d | Total Ops: %d | Accepted Bids: %d | Rejected Bids: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumAuctions, totalOps, successfulBids, rejectedBids, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)

	for code, n := range rejections {
		b.Logf("Rejection code %d: %d", code, n)
	}
}
