// Package workflow orchestrates a full edit-plan generation run.
//
// A Generator reads the project script, loads the optional overrides.yaml
// sidecar, discovers assets, builds the manifest, and writes the three
// artifacts (manifest.json, markers.csv, edit_notes.md) into the project
// directory. Each run takes an advisory file lock on the project so two
// slate processes never write the same artifacts concurrently.
package workflow
