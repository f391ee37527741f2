package session

import (
	"reflect"
	"testing"
)

func TestGroupPartitionsInput(t *testing.T) {
	occs := []Occurrence{
		{FilePath: "a.ts", Line: 1, Column: 1, Text: "你好"},
		{FilePath: "b.ts", Line: 2, Column: 1, Text: "世界"},
		{FilePath: "a.ts", Line: 5, Column: 3, Text: "测试"},
	}

	g := Group(occs)

	wantFiles := []string{"a.ts", "b.ts"}
	if !reflect.DeepEqual(g.Files(), wantFiles) {
		t.Fatalf("Files() = %v, want %v", g.Files(), wantFiles)
	}

	wantA := []Occurrence{occs[0], occs[2]}
	if !reflect.DeepEqual(g.Occurrences("a.ts"), wantA) {
		t.Errorf("Occurrences(a.ts) = %v, want %v", g.Occurrences("a.ts"), wantA)
	}
	wantB := []Occurrence{occs[1]}
	if !reflect.DeepEqual(g.Occurrences("b.ts"), wantB) {
		t.Errorf("Occurrences(b.ts) = %v, want %v", g.Occurrences("b.ts"), wantB)
	}

	// union of all groups must equal the input
	total := 0
	for _, f := range g.Files() {
		total += len(g.Occurrences(f))
	}
	if total != len(occs) {
		t.Errorf("grouped %d occurrences, want %d", total, len(occs))
	}
}

func TestGroupPreservesEmissionOrder(t *testing.T) {
	// occurrences arrive out of line order; the grouper must not sort
	occs := []Occurrence{
		{FilePath: "x.tsx", Line: 9, Column: 2, Text: "末尾"},
		{FilePath: "x.tsx", Line: 1, Column: 1, Text: "开头"},
	}

	g := Group(occs)
	got := g.Occurrences("x.tsx")
	if got[0].Line != 9 || got[1].Line != 1 {
		t.Errorf("order = [%d, %d], want emission order [9, 1]", got[0].Line, got[1].Line)
	}
}

func TestGroupEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		occs      []Occurrence
		wantFiles int
	}{
		{"empty input", nil, 0},
		{"single occurrence", []Occurrence{{FilePath: "a.js", Line: 1, Column: 1, Text: "中"}}, 1},
		{"all same file", []Occurrence{
			{FilePath: "a.js", Line: 1, Column: 1, Text: "一"},
			{FilePath: "a.js", Line: 2, Column: 1, Text: "二"},
		}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Group(tt.occs)
			if g.Len() != tt.wantFiles {
				t.Errorf("Len() = %d, want %d", g.Len(), tt.wantFiles)
			}
			if g.Occurrences("missing") != nil {
				t.Errorf("Occurrences(missing) = %v, want nil", g.Occurrences("missing"))
			}
		})
	}
}
