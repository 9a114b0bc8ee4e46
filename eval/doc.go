// Package eval measures recommendation quality against labeled test sets.
//
// The core metric is Recall@K: the fraction of the relevant assessments for
// a query that appear in the top K recommendations. MeanRecallAtK averages
// it over a query set. Test sets load from JSON, CSV, or plain text files,
// and predictions export in the Query,Assessment_url CSV layout.
package eval
