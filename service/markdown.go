package service

import (
	"regexp"
	"strings"
)

// ws matches a single whitespace character, including Unicode spaces.
const ws = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

type markdownRule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
}

// markdownRules run in order; each one sees the output of the previous.
var markdownRules = []markdownRule{
	{"bold", regexp.MustCompile(`\*\*(.*?)\*\*`), "${1}"},
	{"italic", regexp.MustCompile(`\*(.*?)\*`), "${1}"},
	{"heading", regexp.MustCompile(`#+` + ws + `*(.*)`), "${1}"},
	{"link", regexp.MustCompile(`\[(.*?)\]\((.*?)\)`), "${1}"},
	{"code_block", regexp.MustCompile("(?s)```(.*?)```"), "${1}"},
	{"inline_code", regexp.MustCompile("`(.*?)`"), "${1}"},
	{"blockquote", regexp.MustCompile(`>` + ws + `*(.*)`), "${1}"},
	{"ordered_list", regexp.MustCompile(`\p{Nd}+\.` + ws + `*(.*)`), "${1}"},
	{"unordered_list", regexp.MustCompile(`[+*]` + ws + `*(.*)`), "${1}"},
}

var whitespaceRun = regexp.MustCompile(ws + `+`)

// StripMarkdown turns a model reply into plain text: markdown decoration is
// removed, whitespace is collapsed, and double quotes are dropped.
func StripMarkdown(text string) string {
	for _, rule := range markdownRules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}

	text = whitespaceRun.ReplaceAllString(text, " ")
	text = strings.Trim(text, " ")

	text = stripOuterQuotes(text)
	return strings.ReplaceAll(text, `"`, "")
}

func stripOuterQuotes(text string) string {
	if !strings.HasPrefix(text, `"`) || !strings.HasSuffix(text, `"`) {
		return text
	}
	if len(text) < 2 {
		return ""
	}
	return text[1 : len(text)-1]
}
