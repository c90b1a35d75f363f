// Command slate generates Resolve-ready edit plans for Top-5 product
// countdown videos: a JSON manifest, a marker CSV and Markdown edit notes,
// all derived from a project's script and discovered assets.
package main
