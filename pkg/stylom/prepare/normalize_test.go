package prepare

import "testing"

func TestNormalizeLowerAndCollapse(t *testing.T) {
	got := Normalize("  Hello\t\nWORLD  ", NormalizeOptions{
		Lower:              true,
		CollapseWhitespace: true,
	})
	want := "hello world"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeStripURLs(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"see https://example.com/page now", "see now"},
		{"see http://example.com now", "see now"},
		{"see www.example.com now", "see now"},
	}
	for _, tc := range cases {
		got := Normalize(tc.in, NormalizeOptions{
			CollapseWhitespace: true,
			StripURLs:          true,
		})
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeStripsHTML(t *testing.T) {
	got := Normalize("<p>Hello <b>world</b></p>", NormalizeOptions{
		CollapseWhitespace: true,
	})
	want := "Hello world"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizePlainComparisonUntouched(t *testing.T) {
	// A bare less-than that is not markup must survive
	got := Normalize("a < b", NormalizeOptions{CollapseWhitespace: true})
	want := "a < b"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeNFC(t *testing.T) {
	// e + combining acute accent composes to a single rune
	got := Normalize("cafe\u0301", NormalizeOptions{})
	want := "caf\u00e9"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if got := Normalize("", NormalizeOptions{Lower: true, CollapseWhitespace: true}); got != "" {
		t.Errorf("Normalize(\"\") = %q, want empty", got)
	}
}
