package ignore

import "testing"

func TestVCSDirsAlwaysSkipped(t *testing.T) {
	m := NewMatcher(nil)
	for _, path := range []string{".git/config", "sub/.git/HEAD", ".hg/store", ".svn/entries"} {
		if !m.Match(path) {
			t.Errorf("expected %q to be skipped", path)
		}
	}
	if m.Match("src/main.py") {
		t.Error("expected src/main.py to be kept")
	}
}

func TestDoubleStarPatterns(t *testing.T) {
	m := NewMatcher([]string{"**/__pycache__/**"})
	cases := []struct {
		path string
		want bool
	}{
		{"src/__pycache__/mod.pyc", true},
		{"__pycache__/mod.pyc", true},
		{"a/b/__pycache__", true},
		{"src/main.py", false},
		{"pycache/mod.py", false},
	}
	for _, c := range cases {
		if got := m.Match(c.path); got != c.want {
			t.Errorf("Match(%q): expected %v, got %v", c.path, c.want, got)
		}
	}
}

func TestBarePatternMatchesAnyComponent(t *testing.T) {
	m := NewMatcher([]string{"*.csv", "build/"})
	if !m.Match("data/results.csv") {
		t.Error("expected *.csv to match in any directory")
	}
	if !m.Match("build/out.py") {
		t.Error("expected build/ to match the build directory")
	}
	if m.Match("src/builder.py") {
		t.Error("expected builder.py to be kept")
	}
}

func TestAnchoredPattern(t *testing.T) {
	m := NewMatcher([]string{"docs/draft.md"})
	if !m.Match("docs/draft.md") {
		t.Error("expected exact path to match")
	}
	if m.Match("other/docs/draft.md") {
		t.Error("expected anchored pattern not to match nested path")
	}
}
