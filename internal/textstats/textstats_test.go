package textstats

import (
	"testing"

	"github.com/teachnology/codelytics/internal/spell"
)

func TestAnalyze(t *testing.T) {
	st := Analyze("This is a sentence. And another one!", spell.Default())
	if st.Words != 7 {
		t.Errorf("expected 7 words, got %d", st.Words)
	}
	if st.Chars != 36 {
		t.Errorf("expected 36 chars, got %d", st.Chars)
	}
	if st.Sentences != 2 {
		t.Errorf("expected 2 sentences, got %d", st.Sentences)
	}
	if st.NonASCII != 0 {
		t.Errorf("expected 0 non-ascii, got %d", st.NonASCII)
	}
}

func TestAnalyzeNonASCII(t *testing.T) {
	st := Analyze("naïve café", spell.Default())
	if st.NonASCII != 2 {
		t.Errorf("expected 2 non-ascii runes, got %d", st.NonASCII)
	}
	if st.Chars != 10 {
		t.Errorf("expected 10 chars, got %d", st.Chars)
	}
}

func TestAnalyzeMisspelled(t *testing.T) {
	st := Analyze("We recieve the data.", spell.Default())
	if st.Misspelled != 1 {
		t.Errorf("expected 1 misspelling, got %d", st.Misspelled)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	if st := Analyze("", spell.Default()); st != (UnitStats{}) {
		t.Errorf("expected zero stats for empty text, got %+v", st)
	}
}

func TestSentencesNeedTerminator(t *testing.T) {
	st := Analyze("lowercase fragment without punctuation", spell.Default())
	if st.Sentences != 0 {
		t.Errorf("expected 0 sentences, got %d", st.Sentences)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		comment string
		want    CommentKind
	}{
		{"needed for backwards compatibility", KindWhy},
		{"use a dict because lookups dominate", KindWhy},
		{"workaround for the driver timeout", KindWhy},
		{"loop over the remaining items", KindWhat},
		{"initialize the counters", KindWhat},
		{"x coordinate of the origin", KindNeither},
		{"", KindNeither},
		// A why marker wins even when the comment opens like a what.
		{"sort first, otherwise pairing breaks", KindWhy},
	}
	for _, c := range cases {
		if got := Classify(c.comment); got != c.want {
			t.Errorf("Classify(%q): expected %v, got %v", c.comment, c.want, got)
		}
	}
}
