// Package category implements the two equivalence-class trackers the
// comparison engine is seeded with: Categorizer, parameterized over device
// classes and over circuits, and PinMapper, a per-circuit union-find over
// swappable pin ids.
//
// Both trackers start from a case-insensitive by-name default and let the
// caller unify categories or pin clusters explicitly. Category merges use
// union-by-rewrite rather than a proper union-find, following the original
// implementation's own rationale: the category maps stay small and are
// built up before queries dominate, so a rewrite scan is cheap enough and
// keeps CategoryFor O(1) with no path-compression bookkeeping.
package category
