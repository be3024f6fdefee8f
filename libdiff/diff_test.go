package libdiff

import (
	"testing"

	"github.com/signadot/jsonwatch/value"
)

var U = value.Undefined

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to any
		want     []Change
	}{
		{
			name: "equal numbers",
			from: map[string]any{"a": 1},
			to:   map[string]any{"a": 1.0},
		},
		{
			name: "scalar",
			from: 1,
			to:   2,
			want: []Change{{Path: "", Op: Replace, From: 1, To: 2}},
		},
		{
			name: "from undefined",
			from: U,
			to:   map[string]any{"x": 1},
			want: []Change{{Path: "", Op: Insert, From: U, To: map[string]any{"x": 1}}},
		},
		{
			name: "to undefined",
			from: "x",
			to:   U,
			want: []Change{{Path: "", Op: Delete, From: "x", To: U}},
		},
		{
			name: "object",
			from: map[string]any{"a": 1, "b": 2, "c": map[string]any{"d": true}},
			to:   map[string]any{"a": 1, "c": map[string]any{"d": false}, "e": "x"},
			want: []Change{
				{Path: "b", Op: Delete, From: 2, To: U},
				{Path: "c.d", Op: Replace, From: true, To: false},
				{Path: "e", Op: Insert, From: U, To: "x"},
			},
		},
		{
			name: "type change",
			from: map[string]any{"a": []any{1}},
			to:   map[string]any{"a": map[string]any{"0": 1}},
			want: []Change{{Path: "a", Op: Replace, From: []any{1}, To: map[string]any{"0": 1}}},
		},
		{
			name: "array insert",
			from: []any{1, 2, 3},
			to:   []any{1, 4, 2, 3},
			want: []Change{{Path: "1", Op: Insert, From: U, To: 4}},
		},
		{
			name: "array replace",
			from: []any{1, 2, 3},
			to:   []any{1, 5, 3},
			want: []Change{{Path: "1", Op: Replace, From: 2, To: 5}},
		},
		{
			name: "array delete",
			from: []any{1, 2, 3},
			to:   []any{1, 3},
			want: []Change{{Path: "1", Op: Delete, From: 2, To: U}},
		},
		{
			name: "array element fields",
			from: map[string]any{"xs": []any{map[string]any{"a": 1}}},
			to:   map[string]any{"xs": []any{map[string]any{"a": 2}}},
			want: []Change{{Path: "xs.0.a", Op: Replace, From: 1, To: 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.from, tt.to)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				g, w := got[i], tt.want[i]
				if g.Path != w.Path || g.Op != w.Op || !value.Equal(g.From, w.From) || !value.Equal(g.To, w.To) {
					t.Errorf("change %d: got %v, want %v", i, g, w)
				}
			}
		})
	}
}

func TestCount(t *testing.T) {
	cs := Diff(
		map[string]any{"a": 1, "b": 2},
		map[string]any{"a": 3, "c": 4},
	)
	got := Count(cs)
	if got[Replace] != 1 || got[Delete] != 1 || got[Insert] != 1 {
		t.Errorf("got %v", got)
	}
}

func TestChangePlain(t *testing.T) {
	c := Change{Path: "a", Op: Insert, From: U, To: map[string]any{"b": U}}
	want := map[string]any{"path": "a", "op": "insert", "to": map[string]any{}}
	if got := c.Plain(); !value.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
