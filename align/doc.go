// Package align computes pairwise alignments between labeled numeric
// sequences, delegating the warping search to a Dynamic Time Warping engine.
//
// 🚀 What is align?
//
//	An adapter layer between dataframe-shaped time series and the DTW
//	machinery in lvlath: you hand it two tables, it hands back which row
//	of the first corresponds to which row of the second, plus the cost
//	of that correspondence.  Typical uses:
//	  • Aligning two recordings of the same phenomenon sampled unevenly
//	  • Comparing benchmark traces of different lengths
//	  • Reindexing a pair of series onto a common warped axis
//
// ✨ Key features:
//   - Aligner: univariate alignment on a chosen column (closed or open-ended)
//   - DistAligner: alignment over a precomputed pairwise cost matrix,
//     supplied by any PairwiseTransformer (see package pairdist)
//   - step patterns symmetric1/symmetric2/symmetricP05/symmetricP1/symmetricP2
//   - optional Sakoe–Chiba window (|i−j| ≤ w)
//   - post-fit queries: Alignment, Distance, DistanceMatrix, Pairs, AlignedPair
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tsbench/align"
//
//	a := align.New(align.WithColumn("close"))
//	if err := a.Fit(x0, x1); err != nil {
//	  log.Fatal(err)
//	}
//	table, _ := a.Alignment()   // two columns: ind0, ind1
//	dist, _ := a.Distance()     // scalar alignment cost
//
// Closed-ended univariate alignments run on lvlath/dtw directly.
// Open-ended alignments and precomputed cost matrices are solved as a
// shortest path over a warp grid projected onto lvlath/core, searched by
// lvlath/dijkstra; costs on that path are resolved at 1e-6 resolution.
//
// Performance:
//
//   - Time:   O(N·M) via the engine, O(N·M·log(N·M)) via the warp grid
//   - Memory: O(N·M)
//
// See examples in example_test.go.
package align
