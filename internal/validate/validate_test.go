package validate_test

import (
	"reflect"
	"testing"

	"productgen/internal/validate"
)

func TestCountString(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"", 5, true},
		{"10", 10, true},
		{" 7 ", 7, true},
		{"0", 0, false},
		{"-1", -1, false},
		{"abc", 0, false},
		{"2000000", 2000000, false},
	}
	for _, c := range cases {
		n, ok := validate.CountString(c.in, 5)
		if n != c.want || ok != c.ok {
			t.Errorf("CountString(%q) = %d,%v want %d,%v", c.in, n, ok, c.want, c.ok)
		}
	}
}

func TestFileName(t *testing.T) {
	for _, good := range []string{"products", "run-1", "a_b.v2"} {
		if _, ok := validate.FileName(good); !ok {
			t.Errorf("%q should be accepted", good)
		}
	}
	for _, bad := range []string{"", "..", "../etc/passwd", "a/b", ".hidden", "x y"} {
		if _, ok := validate.FileName(bad); ok {
			t.Errorf("%q should be rejected", bad)
		}
	}
}

func TestCategories(t *testing.T) {
	got, ok := validate.Categories("Books, Home & Garden,,Music ")
	if !ok || !reflect.DeepEqual(got, []string{"Books", "Home & Garden", "Music"}) {
		t.Fatalf("got %v %v", got, ok)
	}
	if got, ok := validate.Categories(""); !ok || len(got) != 0 {
		t.Fatalf("empty: %v %v", got, ok)
	}
	if _, ok := validate.Categories("Books,<script>"); ok {
		t.Fatal("markup should be rejected")
	}
}

func TestUUIDAndPage(t *testing.T) {
	if _, ok := validate.UUID("6F9619FF-8B86-D011-B42D-00C04FC964FF"); !ok {
		t.Fatal("uppercase uuid should normalize")
	}
	if _, ok := validate.UUID("gbc-001"); ok {
		t.Fatal("non-uuid accepted")
	}
	if p, s := validate.Page("", ""); p != 1 || s != 20 {
		t.Fatalf("defaults %d %d", p, s)
	}
	if p, s := validate.Page("3", "500"); p != 3 || s != 100 {
		t.Fatalf("clamp %d %d", p, s)
	}
}
