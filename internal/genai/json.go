package genai

import (
	"regexp"
	"strings"
)

// Models wrap JSON in prose and markdown fences more often than not. These
// helpers cut the first well-delimited JSON value out of a raw completion.

var fenceRe = regexp.MustCompile("```(?:json)?")

// stripFences removes markdown code fence markers, keeping their content.
func stripFences(s string) string {
	return fenceRe.ReplaceAllString(s, "")
}

// ExtractJSONArray returns the outermost [...] slice of s, or "" when no
// array can be located.
func ExtractJSONArray(s string) string {
	return extractDelimited(stripFences(s), '[', ']')
}

// ExtractJSONObject returns the outermost {...} slice of s, or "" when no
// object can be located.
func ExtractJSONObject(s string) string {
	return extractDelimited(stripFences(s), '{', '}')
}

func extractDelimited(s string, open, shut byte) string {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, shut)
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}
