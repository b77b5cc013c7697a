// Package stats tracks the per-run and global counters the subsumption
// engine maintains and a bounded top-K report of the largest clauses touched
// during a run.
package stats

// BinTri holds the aggregate literal/clause counters partitioned by
// redundancy, mirroring CryptoMiniSat's solver->binTri fields. The engine
// must keep these equal to the totals across all live clauses at every step;
// long clauses contribute to IrredLits/RedLits only (binary/ternary clauses
// live entirely in the occurrence lists and contribute to the Bins/Tris
// counters instead).
type BinTri struct {
	IrredLits int64
	RedLits   int64
	IrredBins int64
	RedBins   int64
	IrredTris int64
	RedTris   int64
}

// MoveLits moves n literals from the redundant to the irredundant bucket,
// used when a redundant clause absorbs irredundant content and is promoted.
func (b *BinTri) MoveLits(n int) {
	b.RedLits -= int64(n)
	b.IrredLits += int64(n)
}

// AddLits adds a newly-linked long clause's literal count to the
// appropriate bucket.
func (b *BinTri) AddLits(n int, redundant bool) {
	if redundant {
		b.RedLits += int64(n)
	} else {
		b.IrredLits += int64(n)
	}
}

// RemoveLits removes an unlinked long clause's literal count from the
// appropriate bucket.
func (b *BinTri) RemoveLits(n int, redundant bool) {
	b.AddLits(-n, redundant)
}

// RemoveBin removes one binary clause from the appropriate bucket.
func (b *BinTri) RemoveBin(redundant bool) {
	if redundant {
		b.RedBins--
	} else {
		b.IrredBins--
	}
}

// RemoveTri removes one ternary clause from the appropriate bucket.
func (b *BinTri) RemoveTri(redundant bool) {
	if redundant {
		b.RedTris--
	} else {
		b.IrredTris--
	}
}
