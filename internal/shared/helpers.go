// Package shared provides common utility functions used across multiple
// packages in the autosar-arxml codebase.
package shared

import (
	"strings"
)

// SplitPath splits an absolute ARXML path into its segments. The leading
// slash is optional and empty segments are dropped.
func SplitPath(path string) []string {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, "/")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// JoinPath builds an absolute path from segments.
func JoinPath(segments ...string) string {
	return "/" + strings.Join(segments, "/")
}

// ParentPath returns the path of the container that owns path, or "/" for
// top-level names.
func ParentPath(path string) string {
	segments := SplitPath(path)
	if len(segments) <= 1 {
		return "/"
	}
	return JoinPath(segments[:len(segments)-1]...)
}

// DedupeStrings removes duplicates while keeping first-seen order.
func DedupeStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
