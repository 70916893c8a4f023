package chex

import "testing"

func TestSingleCollapsesDegenerateCases(t *testing.T) {
	if !Single(nil, Include).IsEmpty() {
		t.Fatal("Single(nil, Include) should collapse to Empty")
	}
	if !Single(nil, Exclude).IsUniversal() {
		t.Fatal("Single(nil, Exclude) should collapse to Universe")
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		cs   CharSet
		r    rune
		want bool
	}{
		{"empty never matches", Empty(), 'a', false},
		{"universe always matches", Universe(), 'a', true},
		{"include hits member", Single([]rune{'a', 'b'}, Include), 'a', true},
		{"include misses non-member", Single([]rune{'a', 'b'}, Include), 'c', false},
		{"exclude misses member", Single([]rune{'a', 'b'}, Exclude), 'a', false},
		{"exclude hits non-member", Single([]rune{'a', 'b'}, Exclude), 'c', true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cs.Matches(tt.r); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestUnionTruthTable(t *testing.T) {
	ab := Single([]rune{'a', 'b'}, Include)
	bc := Single([]rune{'b', 'c'}, Include)
	notAB := Single([]rune{'a', 'b'}, Exclude)
	notBC := Single([]rune{'b', 'c'}, Exclude)

	tests := []struct {
		name    string
		a, b    CharSet
		checkIn []rune  // runes the result must match
		checkOut []rune // runes the result must not match
	}{
		{"empty|x=x", Empty(), ab, []rune{'a', 'b'}, []rune{'c'}},
		{"universe|x=universe", Universe(), ab, []rune{'a', 'z'}, nil},
		{"inc|inc=union", ab, bc, []rune{'a', 'b', 'c'}, []rune{'d'}},
		{"inc|exc", ab, notBC, []rune{'a', 'b', 'd'}, []rune{'c'}},
		{"exc|inc", notAB, bc, []rune{'b', 'c', 'd'}, []rune{'a'}},
		{"exc|exc=intersect-of-excluded", notAB, notBC, []rune{'a', 'c', 'd'}, []rune{'b'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := Union(tt.a, tt.b)
			for _, r := range tt.checkIn {
				if !u.Matches(r) {
					t.Errorf("Union(%s,%s) should match %q", tt.a, tt.b, r)
				}
			}
			for _, r := range tt.checkOut {
				if u.Matches(r) {
					t.Errorf("Union(%s,%s) should not match %q", tt.a, tt.b, r)
				}
			}
		})
	}
}

func TestIntersectTruthTable(t *testing.T) {
	ab := Single([]rune{'a', 'b'}, Include)
	bc := Single([]rune{'b', 'c'}, Include)
	notAB := Single([]rune{'a', 'b'}, Exclude)

	tests := []struct {
		name     string
		a, b     CharSet
		checkIn  []rune
		checkOut []rune
	}{
		{"empty&x=empty", Empty(), ab, nil, []rune{'a', 'b'}},
		{"universe&x=x", Universe(), ab, []rune{'a', 'b'}, []rune{'c'}},
		{"inc&inc", ab, bc, []rune{'b'}, []rune{'a', 'c'}},
		{"inc&exc", ab, notAB, nil, []rune{'a', 'b', 'c'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Intersect(tt.a, tt.b)
			for _, r := range tt.checkIn {
				if !in.Matches(r) {
					t.Errorf("Intersect(%s,%s) should match %q", tt.a, tt.b, r)
				}
			}
			for _, r := range tt.checkOut {
				if in.Matches(r) {
					t.Errorf("Intersect(%s,%s) should not match %q", tt.a, tt.b, r)
				}
			}
		})
	}
}

func TestComplementInvolution(t *testing.T) {
	sets := []CharSet{
		Empty(),
		Universe(),
		Single([]rune{'a', 'b', 'c'}, Include),
		Single([]rune{'x', 'y'}, Exclude),
	}
	for _, cs := range sets {
		got := Complement(Complement(cs))
		if !got.Equal(cs) {
			t.Errorf("Complement(Complement(%s)) = %s, want %s", cs, got, cs)
		}
	}
}

func TestContains(t *testing.T) {
	ab := Single([]rune{'a', 'b'}, Include)
	abc := Single([]rune{'a', 'b', 'c'}, Include)

	tests := []struct {
		name string
		a, b CharSet
		want bool
	}{
		{"universe contains everything", Universe(), abc, true},
		{"empty contains only empty", Empty(), Empty(), true},
		{"empty does not contain finite", Empty(), ab, false},
		{"superset contains subset", abc, ab, true},
		{"subset does not contain superset", ab, abc, false},
		{"everything contains empty", ab, Empty(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.a, tt.b); got != tt.want {
				t.Errorf("Contains(%s,%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStringCanonicalForm(t *testing.T) {
	if Single([]rune{'a'}, Include).String() != "a" {
		t.Errorf("single-include-char should render bare, got %q", Single([]rune{'a'}, Include).String())
	}
	if Single([]rune{'a', 'b'}, Include).String() != "[ab]" {
		t.Errorf("got %q", Single([]rune{'a', 'b'}, Include).String())
	}
	if Single([]rune{'a', 'b'}, Exclude).String() != "[^ab]" {
		t.Errorf("got %q", Single([]rune{'a', 'b'}, Exclude).String())
	}
}
