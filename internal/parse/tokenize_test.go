package parse

import (
	"reflect"
	"testing"

	"github.com/clausemd/clausemd/internal/doctree"
)

func TestTokenizeLine_BoldThenPlain(t *testing.T) {
	runs := TokenizeLine("**加粗**文本")
	want := []doctree.Run{
		{Text: "加粗", Bold: true},
		{Text: "文本"},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("expected %v, got %v", want, runs)
	}
}

func TestTokenizeLine_MultiplePairs(t *testing.T) {
	runs := TokenizeLine("甲方应当**按时**支付**全部**价款")
	want := []doctree.Run{
		{Text: "甲方应当"},
		{Text: "按时", Bold: true},
		{Text: "支付"},
		{Text: "全部", Bold: true},
		{Text: "价款"},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("expected %v, got %v", want, runs)
	}
}

func TestTokenizeLine_UnmatchedDelimiterStaysLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  []doctree.Run
	}{
		{"前文**后文", []doctree.Run{{Text: "前文**后文"}}},
		{"**", []doctree.Run{{Text: "**"}}},
		{"**配对**尾部**", []doctree.Run{{Text: "配对", Bold: true}, {Text: "尾部**"}}},
	}
	for _, tt := range tests {
		got := TokenizeLine(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("input %q: expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestTokenizeLine_EmptyNeverReturnsEmptySequence(t *testing.T) {
	runs := TokenizeLine("")
	if len(runs) != 1 || runs[0].Text != "" || runs[0].Bold {
		t.Errorf("expected single empty run, got %v", runs)
	}
}

func TestTokenizeBlock_HardBreakBetweenLines(t *testing.T) {
	runs := TokenizeBlock("第一行\n第二行")
	want := []doctree.Run{
		{Text: "第一行"},
		{Break: true},
		{Text: "第二行"},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("expected %v, got %v", want, runs)
	}
}

func TestTokenizeBlock_NoBreakAfterLastLine(t *testing.T) {
	runs := TokenizeBlock("只有一行")
	if len(runs) != 1 || runs[0].Break {
		t.Errorf("expected one run without break, got %v", runs)
	}
}
