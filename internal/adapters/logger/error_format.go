package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// chainError describes an error that can report its own message and metadata
// without the rest of the chain. This matches the methods provided by
// zerr.Error (go.trai.ch/zerr v0.3.0+). If zerr's API changes, errors
// gracefully fall back to standard error handling.
type chainError interface {
	Message() string
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain: its own message plus any
// metadata attached at that level.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens an error chain into entries. A chain-aware
// error contributes its raw message and metadata and traversal continues into
// its cause; a standard error contributes its full Error() text and ends the
// walk, since anything it wraps is already part of that text.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	current := err

	for current != nil {
		if chain, ok := current.(chainError); ok {
			entries = append(entries, ErrorEntry{
				Message:  chain.Message(),
				Metadata: chain.Metadata(),
			})
			current = errors.Unwrap(current)
		} else {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}
	}

	return entries
}

// formatErrorEntries renders entries hierarchically:
//
//	Error: <main message>
//	       <main metadata>
//
//	  Caused by:
//	    → <cause>
//	      <cause metadata>
func formatErrorEntries(entries []ErrorEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			// Indent continuation lines to align with "Error: "
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = append(lines, metadataLines(entry.Metadata, "       ")...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		// Indent continuation lines to align with the arrow
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = append(lines, metadataLines(entry.Metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

// metadataLines renders metadata as "key: value" lines in stable key order.
func metadataLines(metadata map[string]any, indent string) []string {
	if len(metadata) == 0 {
		return nil
	}

	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, metadata[key]))
	}
	return lines
}
