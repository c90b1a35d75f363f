// Package script parses narration scripts and estimates spoken durations.
//
// ParseSections splits a marker-delimited script ([HOOK], [PRODUCT_5] ...
// [PRODUCT_1], [RETENTION_RESET], [CONCLUSION]) into canonical prose blocks.
// CountWords and WordsToSeconds convert prose into narration seconds at a
// fixed speaking rate, stripping bracketed and parenthesised stage directions
// first. Both halves are pure functions; all file and timeline handling lives
// elsewhere.
package script
