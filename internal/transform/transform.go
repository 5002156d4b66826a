// Package transform applies the template-based clause transforms offered by
// the drafting surface. The transforms are local placeholders with fixed
// phrasing; no network calls are involved.
package transform

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode selects which transform to apply to a clause.
type Mode string

const (
	ModeRewrite  Mode = "rewrite"
	ModeExpand   Mode = "expand"
	ModeRephrase Mode = "rephrase"
	ModeCustom   Mode = "custom"
)

// Request is one clause transform invocation.
type Request struct {
	Mode        Mode   `json:"mode"`
	Markdown    string `json:"markdown"`
	Instruction string `json:"user_instruction,omitempty"`
}

// Apply runs the transform for the requested mode. Unknown modes fall back to
// the custom-instruction template; empty input yields a fixed placeholder, so
// the operation is total.
func Apply(req Request) string {
	text := strings.TrimSpace(req.Markdown)
	if text == "" {
		return "(空内容，无法处理)"
	}

	switch req.Mode {
	case ModeRewrite:
		return "[改写示例] " + text
	case ModeExpand:
		return text + "\n\n扩写示例文本：为确保条款落地，可补充责任分工、时间节点与沟通机制。"
	case ModeRephrase:
		return "[重写示例] " + capitalize(text)
	default:
		instruction := req.Instruction
		if instruction == "" {
			instruction = "自定义指令"
		}
		return "根据「" + instruction + "」调整：" + text
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
