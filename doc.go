// Package tsbench is a toolkit for comparing time series and the
// benchmark results computed over them — alignment adapters on one
// side, archive result collation on the other.
//
// 🚀 What is tsbench?
//
//	A small companion library to lvlath that speaks dataframes:
//		• align/    — DTW-backed sequence alignment between labeled series,
//		              univariate or via precomputed pairwise cost matrices
//		• pairdist/ — pairwise distance transformers (euclidean, cityblock,
//		              chebyshev, squared euclidean) producing matrix.Dense
//		• collate/  — validated retrieval of benchmark result tables from
//		              the timeseriesclassification.com archive
//
// ✨ Why tsbench?
//
//   - Honest adapters – the warping search itself stays in lvlath
//     (dtw, core+dijkstra); this module only translates shapes
//   - Strict validation – vocabularies, enumerations and URLs are
//     checked up front, with errors naming the allowed choices
//   - Dataframe in, dataframe out – sequences, alignment tables and
//     result tables are all gota dataframes
//
// Quick taste:
//
//	a := align.New(align.WithColumn("close"))
//	if err := a.Fit(x0, x1); err != nil { ... }
//	dist, _ := a.Distance()
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/tsbench
package tsbench
