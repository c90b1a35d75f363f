// Package assets discovers and classifies the media files of a video project
// directory.
//
// Discovery supports two directory generations: the current layout
// (audio/voiceover.*, audio/voice/chunks, assets/amazon, assets/dzine,
// assets/clips) and the legacy layout (audio/chunks, visuals/backgrounds,
// visuals/products/<rank>). Each asset class is resolved through an ordered
// probe chain, current convention first; adding a third layout means
// appending one probe. Product media is bucketed per rank into amazon-sourced
// images, AI-generated (dzine) images, and video clips, with strict two-digit
// rank prefix ownership so files never leak across ranks.
//
// Everything here is read-only filesystem probing. Missing files and
// directories degrade to empty values; Discover never returns an error.
package assets
