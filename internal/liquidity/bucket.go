// Package liquidity provides envelope-budget accounting: bucket funding
// adequacy, annual reserve tracking, peak-funding volatility shielding,
// credit-card clearing exposure, and the composite elasticity index.
package liquidity

import "strings"

// BucketType partitions cash by purpose.
type BucketType string

const (
	TypeOperating     BucketType = "operating"
	TypeSmoothing     BucketType = "smoothing"
	TypeLedgerReserve BucketType = "ledger_reserve"
	TypeCapital       BucketType = "capital"
	TypeClearing      BucketType = "clearing"
)

// BucketStatus marks a bucket active or dormant.
type BucketStatus string

const (
	StatusActive  BucketStatus = "active"
	StatusDormant BucketStatus = "dormant"
)

// Bucket is one named envelope of cash.
type Bucket struct {
	ID          string
	Name        string
	Type        BucketType
	Status      BucketStatus
	Archived    bool
	Balance     float64
	Target      float64 // target funding level
	Constrained bool    // withdrawals restricted
}

// dormantPrefix is a legacy soft-delete convention: buckets renamed with a
// "zz" prefix sort last and drop out of every computation. Kept for
// compatibility with existing ledgers; Archived is the first-class
// mechanism going forward.
const dormantPrefix = "zz"

// IsDormant reports whether a bucket should be excluded from computation:
// archived, explicitly dormant, or carrying the legacy name prefix.
func IsDormant(b Bucket) bool {
	return b.Archived ||
		b.Status == StatusDormant ||
		strings.HasPrefix(b.Name, dormantPrefix)
}

// ActiveBuckets filters out dormant buckets; a non-empty type narrows the
// result further. The input slice is never modified.
func ActiveBuckets(buckets []Bucket, t BucketType) []Bucket {
	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		if IsDormant(b) {
			continue
		}
		if t != "" && b.Type != t {
			continue
		}
		out = append(out, b)
	}
	return out
}

// BalanceOf sums the balances of active buckets of the given type.
func BalanceOf(buckets []Bucket, t BucketType) float64 {
	var sum float64
	for _, b := range ActiveBuckets(buckets, t) {
		sum += b.Balance
	}
	return sum
}

// LedgerEntry is an append-only audit record of a withdrawal from a
// ledger_reserve bucket. The engine only reads these; requiring one per
// draw-down is the calling application's policy.
type LedgerEntry struct {
	BucketID string
	Amount   float64
	Memo     string
}
