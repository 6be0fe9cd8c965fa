package graphtype

import "testing"

func TestTagFromName(t *testing.T) {
	cases := []struct {
		name      string
		wantPlain string
		wantMode  TransMode
	}{
		{"knows", "knows", TransNone},
		{"knows*", "knows", TransStar},
		{"knows+", "knows", TransPlus},
		{"a", "a", TransNone},
		{"*", "*", TransNone},
		{"a'*", "a'*", TransNone},
		{"a''b*", "a''b", TransStar},
	}
	for _, c := range cases {
		plain, mode := TagFromName(c.name)
		if plain != c.wantPlain || mode != c.wantMode {
			t.Errorf("TagFromName(%q) = (%q, %v), want (%q, %v)", c.name, plain, mode, c.wantPlain, c.wantMode)
		}
	}
}

func TestNewPredicateMeta_Override(t *testing.T) {
	yes := true
	no := false

	p := NewPredicateMeta("knows", &yes)
	if p.Name != "knows" || p.Trans != TransStar {
		t.Errorf("trans=true override: got %+v", p)
	}

	p = NewPredicateMeta("knows*", &no)
	if p.Name != "knows*" || p.Trans != TransNone {
		t.Errorf("trans=false override: got %+v", p)
	}

	p = NewPredicateMeta("knows*", nil)
	if p.Name != "knows" || p.Trans != TransStar {
		t.Errorf("nil override should defer to in-name tag: got %+v", p)
	}
}
