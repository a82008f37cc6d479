package spell

import (
	"reflect"
	"testing"
)

func TestMisspelled(t *testing.T) {
	c := Default()
	cases := []struct {
		token string
		want  bool
	}{
		{"recieve", true},
		{"receive", false},
		{"seperate", true},
		{"separate", false},
		{"x2", false},
		{"", false},
		{"Recieve", true},
	}
	for _, tc := range cases {
		if got := c.Misspelled(tc.token); got != tc.want {
			t.Errorf("Misspelled(%q): expected %v, got %v", tc.token, tc.want, got)
		}
	}
}

func TestWords(t *testing.T) {
	got := Words("The result, (obviously), is 42 -- x_1 stays.")
	// Numbers, identifiers, and punctuation-only tokens are dropped.
	want := []string{"the", "result", "obviously", "is", "stays"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCountMisspelled(t *testing.T) {
	if got := Default().CountMisspelled("We recieve seperate replies."); got != 2 {
		t.Errorf("expected 2 misspellings, got %d", got)
	}
}
