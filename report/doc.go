// Package report renders solver runs for people (Text) and scripts (JSON).
//
// For every run the text form prints the run statistics and one line per
// chord:
//
//	For am play variant 0. Centroid: 2.00, Total cost: 0.00 ✓ (CSV: 0.00)
//
// Total cost is the square root of the cumulative cost, the unit used by the
// reference series. When a reference is supplied each line is checked
// against it: |sqrt(cost) - expected| < Tolerance prints ✓, anything else
// prints ❌ with the difference.
package report
