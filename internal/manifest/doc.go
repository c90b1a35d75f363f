// Package manifest assembles the time-resolved edit plan for one ranked-list
// video.
//
// Build walks the fixed narrative structure -- hook, avatar intro, ranked
// segments 5 through 1 with a retention reset after rank 3, outro -- with a
// strictly monotonic timeline cursor, assigning visuals (AssignVisuals),
// text overlays, and sound cues (AssignOverlays) to each segment from its
// own asset bucket. The result is an immutable EditManifest consumed by the
// render serializers.
//
// # Key Types
//
// EditManifest: aggregate root holding the named windows, the five segments
// in countdown order, global overlays, and the audio tracks.
//
// ProductSegment: one ranked item with its owned visuals, overlays, and SFX.
//
// Profile: the injected parameter set (speaking rate, frame rate, loudness
// targets, overlay caps, export geometry). Builds never read configuration
// directly.
//
// # Error policy
//
// Build is a total function: missing script sections, empty asset buckets,
// and absent overrides all degrade to zero durations and empty lists. An
// entirely empty script still yields a complete manifest.
package manifest
