// Package render serializes a completed edit manifest into its three output
// representations.
//
// JSON produces the machine-readable manifest document, MarkersCSV the editor
// marker-import file (Name,Start TC,Duration,Note,Color with HH:MM:SS:FF
// timecodes), and Notes the human-readable Markdown review document. All
// three are independent pure functions over the same immutable manifest;
// rendering twice yields identical bytes.
package render
