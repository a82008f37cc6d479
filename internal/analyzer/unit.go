package analyzer

// FileKind classifies a discovered file. The set is closed: every file
// maps to exactly one kind and dispatch over kinds is exhaustive.
type FileKind string

const (
	KindPy       FileKind = "py"
	KindNotebook FileKind = "ipynb"
	KindMarkdown FileKind = "md"
	KindOther    FileKind = "other"
)

// FileUnit is one discovered file: its path relative to the project root
// and its kind. Validity is decided during extraction; unreadable or
// unparseable files stay in the file counts but contribute no samples.
type FileUnit struct {
	Path string
	Kind FileKind
}
