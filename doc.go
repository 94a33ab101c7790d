// Package fretpath picks, for every chord of a song, the guitar placement that
// keeps the hand moving as little as possible.
//
// 🎸 What is fretpath?
//
//	Each chord can be played in up to three places on the neck. Every
//	placement has a centroid (its average hand position); moving from one
//	placement to the next costs the squared difference of the centroids.
//	fretpath finds the sequence of placements with the smallest total cost:
//		• Exhaustive search: every combination, the ground truth (O(3ⁿ))
//		• Dynamic programming: shortest path over 3 states per chord (O(n))
//		• Greedy: nearest next placement, fast but not optimal
//
// Under the hood, everything is organized in small packages:
//
//	chord/        placement records, name normalization, centroid extraction & cache
//	voicing/      the three solvers, dispatcher, concurrent comparison, path checks
//	chordgen/     deterministic random tables and songs for tests and benchmarks
//	loader/       chord tables (.xlsx/.csv), song files, reference series, msgpack cache
//	report/       text and JSON rendering with reference verification
//	config/       fretpath.toml
//	console/      leveled, colored CLI output
//	cmd/fretpath  the CLI: solve, songs, menu, bench, version
//
// Quick ASCII example:
//
//	a: {2}   b: {2, 5}   c: {6}
//
//	a:0 ─0─▶ b:0 ─16─▶ c:0     greedy, total 16
//	a:0 ─9─▶ b:1 ──1─▶ c:0     optimum, total 10
//
//	go install github.com/polynizer/fretpath/cmd/fretpath@latest
package fretpath
