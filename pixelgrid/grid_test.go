package pixelgrid

import "testing"

func testGrid() Grid {
	return Grid{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{7, 6, 5, 4},
	}
}

func TestMirrorHFlipsColumns(t *testing.T) {
	g := testGrid()
	m := MirrorH(g)

	rows, cols := Size(g)
	mr, mc := Size(m)
	if mr != rows || mc != cols {
		t.Fatalf("mirror changed shape: got %dx%d, want %dx%d", mr, mc, rows, cols)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if m[r][c] != g[r][cols-1-c] {
				t.Fatalf("m[%d][%d] = %d, want %d", r, c, m[r][c], g[r][cols-1-c])
			}
		}
	}
}

func TestMirrorHInvolution(t *testing.T) {
	g := testGrid()
	if got := MirrorH(MirrorH(g)); !Equal(got, g) {
		t.Fatalf("double mirror is not the identity: got %v, want %v", got, g)
	}
}

func TestMirrorHDoesNotAliasInput(t *testing.T) {
	g := testGrid()
	m := MirrorH(g)
	m[0][0] = 9
	if g[0][3] == 9 {
		t.Fatal("mirror output shares storage with input")
	}
}

func TestCompositeRows(t *testing.T) {
	head := Grid{
		{1, 1},
		{1, 1},
		{1, 1},
		{1, 1},
	}
	legs := Grid{
		{2, 2},
		{2, 2},
		{2, 2},
		{2, 2},
	}

	out, err := CompositeRows(head, legs, 2)
	if err != nil {
		t.Fatalf("CompositeRows: %v", err)
	}
	for r := 0; r < 4; r++ {
		want := head[r]
		if r >= 2 {
			want = legs[r]
		}
		for c := 0; c < 2; c++ {
			if out[r][c] != want[c] {
				t.Fatalf("out[%d][%d] = %d, want %d", r, c, out[r][c], want[c])
			}
		}
	}

	// Output must be independent of its sources.
	out[0][0] = 9
	out[3][0] = 9
	if head[0][0] == 9 || legs[3][0] == 9 {
		t.Fatal("composite output shares storage with a source")
	}
}

func TestCompositeRowsRejectsBadInput(t *testing.T) {
	square := Grid{{1, 1}, {1, 1}}
	tall := Grid{{2, 2}, {2, 2}, {2, 2}}

	cases := []struct {
		name  string
		head  Grid
		legs  Grid
		split int
	}{
		{"mismatched dimensions", square, tall, 1},
		{"split at zero", square, square, 0},
		{"split at height", square, square, 2},
		{"split beyond height", square, square, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := CompositeRows(tc.head, tc.legs, tc.split); err == nil {
				t.Fatal("expected an error, got none")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(testGrid()); err != nil {
		t.Fatalf("valid grid rejected: %v", err)
	}
	if err := Validate(Grid{}); err == nil {
		t.Fatal("empty grid accepted")
	}
	if err := Validate(Grid{{1, 2}, {1}}); err == nil {
		t.Fatal("ragged grid accepted")
	}
}
