// Package collate fetches and reshapes benchmark result tables published
// by the timeseriesclassification.com archive.
//
// 🚀 What is collate?
//
//	A small results-collation client: point it at archive result URLs,
//	tell it which classifiers, problems, metric and toolkit you mean,
//	and it validates the request against the archive's own enumerations
//	before downloading and reshaping each result file into a dataframe.
//	Validation is deliberately strict and fail-fast — a typo in a
//	classifier acronym surfaces as an error naming the valid choices,
//	not as a silently empty table.
//
// ✨ Key features:
//   - Collator: validated, ordered retrieval of result tables
//   - EnumCache: lazy, once-per-process enumeration lookups keyed by
//     (url, key); failures are never cached
//   - Selection: explicit all-vs-listed parameter selection, with
//     ParseSelection understanding the literal "*" wildcard
//   - every cell arrives as a string: no header detection, no type
//     coercion, padded rectangular so downstream code can rely on shape
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tsbench/collate"
//
//	c := collate.New(
//	  []string{"https://timeseriesclassification.com/results/acc.csv"},
//	  collate.WithClassifiers(collate.Values("HC2", "ROCKET")),
//	  collate.WithMetric("accuracy"),
//	)
//	tables, err := c.Results()
//
// All I/O is blocking and synchronous with no retries; inject an
// *http.Client carrying a Timeout to bound calls.
//
// See examples in example_test.go.
package collate
