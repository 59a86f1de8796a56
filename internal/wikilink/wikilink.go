// Package wikilink provides canonical scanning of note reference tokens.
//
// Reference grammar:
//
//	[[target]]
//
// The target is trimmed of surrounding whitespace and matched case-sensitively
// against a note's filename stem or title; no other normalization happens at
// scan time. Matching is non-greedy, left-to-right, and non-overlapping, so
// malformed or nested brackets yield the innermost pair's content.
package wikilink

import (
	"regexp"
	"strings"
)

// re matches [[target]]. The target cannot contain brackets, which keeps
// matches anchored to the innermost pair.
var re = regexp.MustCompile(`\[\[([^\]\[]+?)\]\]`)

// Extract returns the distinct reference targets in body, in first-occurrence
// order. Repeated tokens collapse to one entry; blank targets are dropped.
func Extract(body string) []string {
	matches := re.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var out []string
	for _, m := range matches {
		target := strings.TrimSpace(m[1])
		if target == "" {
			continue
		}
		if _, ok := seen[target]; ok {
			continue
		}
		seen[target] = struct{}{}
		out = append(out, target)
	}
	return out
}

// Contains reports whether body references any of the given targets.
func Contains(body string, targets ...string) bool {
	refs := Extract(body)
	for _, ref := range refs {
		for _, t := range targets {
			if ref == t {
				return true
			}
		}
	}
	return false
}

// Token returns the literal reference form for a target: "[[target]]".
func Token(target string) string {
	return "[[" + target + "]]"
}
