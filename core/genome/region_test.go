package genome

import (
	"errors"
	"testing"
)

func TestRangeValidate(t *testing.T) {
	r := &Region{ID: "chr1", Seq: []byte("ACGTACGT")}
	cases := []struct {
		name string
		rg   Range
		ok   bool
	}{
		{"full", Range{0, 8}, true},
		{"inner", Range{2, 5}, true},
		{"single", Range{7, 8}, true},
		{"empty", Range{3, 3}, false},
		{"inverted", Range{5, 2}, false},
		{"negative", Range{-1, 4}, false},
		{"past-end", Range{0, 9}, false},
	}
	for _, c := range cases {
		err := c.rg.Validate(r)
		if c.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
		}
		if !c.ok {
			if err == nil {
				t.Errorf("%s: expected error", c.name)
			} else if !errors.Is(err, ErrConfig) {
				t.Errorf("%s: error %v is not ErrConfig", c.name, err)
			}
		}
	}
}

func TestFullRange(t *testing.T) {
	r := &Region{ID: "s", Seq: []byte("ACGTA")}
	rg := FullRange(r)
	if rg.Low != 0 || rg.High != 5 || rg.Len() != 5 {
		t.Fatalf("unexpected full range: %+v", rg)
	}
}
