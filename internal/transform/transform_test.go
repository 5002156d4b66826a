package transform

import (
	"strings"
	"testing"
)

func TestApply_Modes(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "rewrite",
			req:  Request{Mode: ModeRewrite, Markdown: "甲方按期付款。"},
			want: "[改写示例] 甲方按期付款。",
		},
		{
			name: "rephrase capitalizes",
			req:  Request{Mode: ModeRephrase, Markdown: "the party shall pay."},
			want: "[重写示例] The party shall pay.",
		},
		{
			name: "custom with instruction",
			req:  Request{Mode: ModeCustom, Markdown: "条款正文", Instruction: "更正式"},
			want: "根据「更正式」调整：条款正文",
		},
		{
			name: "custom without instruction",
			req:  Request{Mode: ModeCustom, Markdown: "条款正文"},
			want: "根据「自定义指令」调整：条款正文",
		},
		{
			name: "unknown mode falls back to custom",
			req:  Request{Mode: "summarize", Markdown: "条款正文"},
			want: "根据「自定义指令」调整：条款正文",
		},
	}
	for _, tt := range tests {
		if got := Apply(tt.req); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestApply_ExpandAppends(t *testing.T) {
	got := Apply(Request{Mode: ModeExpand, Markdown: "原文"})
	if !strings.HasPrefix(got, "原文\n\n") {
		t.Errorf("expected original text first, got %q", got)
	}
	if !strings.Contains(got, "扩写示例文本") {
		t.Errorf("expected expansion template, got %q", got)
	}
}

func TestApply_EmptyInputIsTotal(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		if got := Apply(Request{Mode: ModeRewrite, Markdown: input}); got != "(空内容，无法处理)" {
			t.Errorf("input %q: expected placeholder, got %q", input, got)
		}
	}
}
