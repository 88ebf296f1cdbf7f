package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyRule(t *testing.T, name, text string) string {
	t.Helper()
	for _, rule := range markdownRules {
		if rule.name == name {
			return rule.pattern.ReplaceAllString(text, rule.replacement)
		}
	}
	require.Failf(t, "unknown rule", "no markdown rule named %q", name)
	return ""
}

func TestMarkdownRules_Order(t *testing.T) {
	names := make([]string, 0, len(markdownRules))
	for _, rule := range markdownRules {
		names = append(names, rule.name)
	}
	assert.Equal(t, []string{
		"bold", "italic", "heading", "link", "code_block",
		"inline_code", "blockquote", "ordered_list", "unordered_list",
	}, names)
}

func TestMarkdownRules_EachStep(t *testing.T) {
	tests := []struct {
		rule string
		in   string
		want string
	}{
		{"bold", "**bold** text", "bold text"},
		{"bold", "**a** and **b**", "a and b"},
		{"italic", "*italic* text", "italic text"},
		{"heading", "## Title", "Title"},
		{"heading", "intro # tail", "intro tail"},
		{"heading", "#\nnext", "next"},
		{"link", "see [docs](https://example.com) now", "see docs now"},
		{"code_block", "```go\nx := 1\n```", "go\nx := 1\n"},
		{"inline_code", "run `make` now", "run make now"},
		{"blockquote", "> quoted line", "quoted line"},
		{"ordered_list", "1. first\n2. second", "first\nsecond"},
		{"ordered_list", "\u0661. arabic digit list", "arabic digit list"},
		{"unordered_list", "+ one\n* two", "one\ntwo"},
	}
	for _, tt := range tests {
		t.Run(tt.rule+"/"+tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, applyRule(t, tt.rule, tt.in))
		})
	}
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"emphasis", "**bold** and *italic*", "bold and italic"},
		{"heading", "# Heading\ntext", "Heading text"},
		{"link", "[label](http://x)", "label"},
		{"outer quotes", `"quoted"`, "quoted"},
		{"inline code", "`code`", "code"},
		{"whitespace collapsed", "  a \n\n b\t c  ", "a b c"},
		{"unicode whitespace", "a\u00a0\u2003b", "a b"},
		{"inner quotes removed", `He said "hi" to me`, "He said hi to me"},
		{"lone quote", `"`, ""},
		{"plain text untouched", "Nothing to strip here.", "Nothing to strip here."},
		{"list", "Steps:\n1. Open\n2. Close\n- dash stays", "Steps: Open Close - dash stays"},
		{"non-ascii digits", "Steps:\n\u0661. Open\n\u0662. Close", "Steps: Open Close"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkdown(tt.in))
		})
	}
}

func TestStripMarkdown_CleanTextIsFixedPoint(t *testing.T) {
	clean := "The report covers revenue and costs for the year"
	assert.Equal(t, clean, StripMarkdown(clean))
	assert.Equal(t, clean, StripMarkdown(StripMarkdown(clean)))
}
