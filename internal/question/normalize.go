package question

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Generation models return options in several malformed shapes. This file
// collapses them into a canonical list of trimmed strings with an explicit
// priority order:
//
//  1. "options" as a JSON array
//  2. "choices" as a JSON array
//  3. "answers" as a JSON array
//  4. "options" as a delimited string
//  5. options embedded in the question text after an "Options:" marker
//
// An empty result is the terminal "no usable options" case.

var (
	optionSplitRe = regexp.MustCompile(`\r?\n|;|\||,`)
	optionsMarkRe = regexp.MustCompile(`(?i)Options?:`)
	letterPrefRe  = regexp.MustCompile(`^\(?[A-Da-d][).]\s*`)
)

// NormalizeOptions resolves the option list for one raw question.
func NormalizeOptions(options, choices, answers json.RawMessage, text string) []string {
	for _, raw := range []json.RawMessage{options, choices, answers} {
		if arr := asStringArray(raw); len(arr) > 0 {
			return arr
		}
	}

	var s string
	if len(options) > 0 && json.Unmarshal(options, &s) == nil && s != "" {
		return splitDelimited(s, false)
	}

	if loc := optionsMarkRe.FindStringIndex(text); loc != nil {
		return splitDelimited(text[loc[1]:], true)
	}

	return nil
}

// asStringArray decodes a JSON array field, stringifying scalar members and
// dropping empties.
func asStringArray(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			// Non-string member (number, bool): keep its literal form.
			s = strings.TrimSpace(string(item))
			if s == "null" {
				continue
			}
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// splitDelimited breaks a free-form options blob on newlines and common
// separators. stripLetters additionally removes "(A)", "b." style prefixes
// left over from embedded lists.
func splitDelimited(s string, stripLetters bool) []string {
	parts := optionSplitRe.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if stripLetters {
			p = letterPrefRe.ReplaceAllString(strings.TrimSpace(p), "")
		}
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// trimNonEmpty trims every member and drops blanks.
func trimNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
