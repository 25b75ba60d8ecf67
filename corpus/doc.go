// SPDX-License-Identifier: MIT
// Package: seqlath/corpus
//
// doc.go — package overview.

// Package corpus reads reference sequences in the OEIS "stripped" format:
//
//	# comment lines start with '#'
//	A000045 ,0,1,1,2,3,5,8,13,21,34,
//
// One sequence per line: an identifier, a single space, then comma-separated
// numbers. Leading and trailing commas are tolerated; blank lines and
// comments are skipped.
//
// ⚙️ Usage:
//
//	entries, err := corpus.Load("stripped.gz", corpus.WithLimit(1000))
//
// Open detects gzip by its magic bytes, so the compressed dump published by
// OEIS can be read as is.
package corpus
