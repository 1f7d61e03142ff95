// Package text offers small string-cleanup helpers: whitespace
// normalization (Clean), URL-safe slugs (Slugify), extraction of the text
// between two markers (Between) and rune-safe truncation (Truncate).
//
// Slugify folds diacritics through golang.org/x/text (NFD, strip combining
// marks, NFC) before lowering and collapsing separators, so "Crème Brûlée"
// becomes "creme-brulee".
package text
