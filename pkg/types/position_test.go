package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Position
		expected int
	}{
		{name: "Equal", a: Position{2, 4}, b: Position{2, 4}, expected: 0},
		{name: "Earlier line", a: Position{1, 9}, b: Position{2, 0}, expected: -1},
		{name: "Later line", a: Position{3, 0}, b: Position{2, 9}, expected: 1},
		{name: "Same line earlier character", a: Position{2, 1}, b: Position{2, 4}, expected: -1},
		{name: "Same line later character", a: Position{2, 5}, b: Position{2, 4}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Compare(tt.b))
			assert.Equal(t, tt.expected < 0, tt.a.Before(tt.b))
			assert.Equal(t, tt.expected > 0, tt.a.After(tt.b))
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Start: Position{2, 2}, End: Position{4, 2}}

	tests := []struct {
		name     string
		pos      Position
		expected bool
	}{
		{name: "Inside", pos: Position{3, 4}, expected: true},
		{name: "At start", pos: Position{2, 2}, expected: true},
		{name: "At end", pos: Position{4, 2}, expected: true},
		{name: "Before start on same line", pos: Position{2, 1}, expected: false},
		{name: "After end on same line", pos: Position{4, 3}, expected: false},
		{name: "Line before", pos: Position{1, 5}, expected: false},
		{name: "Line after", pos: Position{5, 0}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Contains(tt.pos))
		})
	}
}

func TestRangeContainsRange(t *testing.T) {
	outer := Range{Start: Position{0, 0}, End: Position{10, 0}}

	tests := []struct {
		name     string
		inner    Range
		expected bool
	}{
		{name: "Strictly inside", inner: Range{Position{2, 2}, Position{4, 2}}, expected: true},
		{name: "Identical", inner: outer, expected: true},
		{name: "Empty range inside", inner: EmptyRange(Position{3, 4}), expected: true},
		{name: "Starts inside ends outside", inner: Range{Position{9, 0}, Position{11, 0}}, expected: false},
		{name: "Entirely outside", inner: Range{Position{12, 0}, Position{13, 0}}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, outer.ContainsRange(tt.inner))
		})
	}
}

func TestSelectionRange(t *testing.T) {
	forward := Selection{Anchor: Position{1, 0}, Active: Position{3, 5}}
	backward := Selection{Anchor: Position{3, 5}, Active: Position{1, 0}}
	expected := Range{Start: Position{1, 0}, End: Position{3, 5}}

	assert.Equal(t, expected, forward.Range())
	assert.Equal(t, expected, backward.Range())
	assert.False(t, forward.IsEmpty())
	assert.True(t, NewCursor(Position{2, 9}).IsEmpty())
	assert.Equal(t, EmptyRange(Position{2, 9}), NewCursor(Position{2, 9}).Range())
	assert.Equal(t, forward, NewSelection(expected))
}
