package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		name     string
		r        rune
		expected int
	}{
		{name: "ascii letter", r: 'a', expected: 1},
		{name: "digit", r: '7', expected: 1},
		{name: "space", r: ' ', expected: 1},
		{name: "cjk ideograph", r: '会', expected: 2},
		{name: "hiragana", r: 'あ', expected: 2},
		{name: "hangul", r: '한', expected: 2},
		{name: "fullwidth latin", r: 'Ａ', expected: 2},
		{name: "halfwidth katakana", r: 'ｱ', expected: 1},
		{name: "combining acute", r: '́', expected: 1},
		{name: "accented latin", r: 'é', expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RuneWidth(tt.r))
		})
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "empty", input: "", expected: 0},
		{name: "ascii equals length", input: "Team Standup", expected: len("Team Standup")},
		{name: "cjk doubles", input: "会議", expected: 4},
		{name: "mixed", input: "1:1 面談", expected: 4 + 4},
		{name: "combining mark counts one", input: "é", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StringWidth(tt.input))
		})
	}
}
