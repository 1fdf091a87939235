// Package checklist parses Markdown task lists and aggregates progress stats.
//
// A task line is a GitHub-style list item carrying a checkbox marker:
//
//	- [ ] pending task
//	- [x] completed task
//	* [X] completed task (asterisk bullets and uppercase X are accepted)
//
// Leading whitespace is ignored; the marker must start the trimmed line.
// Partial-line and multi-line task markers are not recognized.
//
// The title of a file is the first H1 heading ("# Title"); when no heading
// exists, or the file is missing or unreadable, the base name of the path
// without its extension is used instead.
//
// Parsing never fails: a missing or unreadable file counts as zero tasks.
// Both counts and title come from a single pass over the file.
package checklist
