// Package analyzer walks one project directory, fans the discovered files
// out to extraction workers, and reduces their samples into a single flat
// ProjectRecord.
package analyzer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/teachnology/codelytics/internal/gitutil"
	"github.com/teachnology/codelytics/internal/ignore"
	"github.com/teachnology/codelytics/internal/names"
	"github.com/teachnology/codelytics/internal/notebook"
	"github.com/teachnology/codelytics/internal/pysrc"
	"github.com/teachnology/codelytics/internal/spell"
	"github.com/teachnology/codelytics/internal/textstats"
)

// Options configures an Analyzer run.
type Options struct {
	// Ignore holds extra exclusion patterns applied on top of the
	// built-in version-control exclusions.
	Ignore []string
	// Workers bounds the extraction fan-out. Zero means one worker per
	// CPU.
	Workers int
	// GitRef selects the ref whose commits are counted, HEAD by default.
	// "--all" counts commits on every branch.
	GitRef string
	// Logf receives warnings about files that were skipped or could not
	// be read. Nil discards them.
	Logf func(format string, args ...any)
}

// Analyzer computes the metrics record of one project directory.
type Analyzer struct {
	root    string
	matcher *ignore.Matcher
	workers int
	gitRef  string
	logf    func(string, ...any)
	checker *spell.Checker
}

// New creates an Analyzer for the given project root.
func New(root string, opts Options) *Analyzer {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Analyzer{
		root:    root,
		matcher: ignore.NewMatcher(opts.Ignore),
		workers: workers,
		gitRef:  opts.GitRef,
		logf:    logf,
		checker: spell.Default(),
	}
}

// Stats walks the project and returns its aggregated record. The only
// fatal condition is a root that does not exist or is not a directory;
// unreadable or malformed files are logged, kept in the file counts, and
// contribute no samples.
func (a *Analyzer) Stats(ctx context.Context) (*ProjectRecord, error) {
	info, err := os.Stat(a.root)
	if err != nil {
		return nil, fmt.Errorf("project root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", a.root)
	}

	units, err := a.collect()
	if err != nil {
		return nil, err
	}

	// Workers write only their own slot; the merge below is
	// single-threaded, so the reduction needs no locking.
	results := make([]*accumulator, len(units))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.analyzeFile(unit)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &accumulator{}
	for _, frag := range results {
		if frag != nil {
			total.merge(frag)
		}
	}
	return total.record(gitutil.Read(a.root, a.gitRef)), nil
}

// collect walks the tree and classifies every file that survives the
// exclusion rules. os.WalkDir visits entries in lexical order, so the
// unit list is stable across runs.
func (a *Analyzer) collect() ([]FileUnit, error) {
	var units []FileUnit
	err := filepath.WalkDir(a.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == a.root {
				return err
			}
			a.logf("walk %s: %v", path, err)
			return nil
		}
		rel, relErr := filepath.Rel(a.root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		if a.matcher.Match(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		units = append(units, FileUnit{Path: rel, Kind: classify(d.Name())})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk project: %w", err)
	}
	return units, nil
}

func classify(name string) FileKind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".py":
		return KindPy
	case ".ipynb":
		return KindNotebook
	case ".md":
		return KindMarkdown
	default:
		return KindOther
	}
}

// analyzeFile produces one file's accumulator fragment. Every file lands
// in the file counts; only readable, parseable python and notebook
// content produces samples. Markdown files are counted but their content
// is not analyzed; only notebook markdown cells are.
func (a *Analyzer) analyzeFile(unit FileUnit) *accumulator {
	acc := &accumulator{nFilesTotal: 1}
	switch unit.Kind {
	case KindPy:
		acc.nFilesPy = 1
	case KindNotebook:
		acc.nFilesIpynb = 1
	case KindMarkdown:
		acc.nFilesMd = 1
	}
	if unit.Kind != KindPy && unit.Kind != KindNotebook {
		return acc
	}

	data, err := os.ReadFile(filepath.Join(a.root, unit.Path))
	if err != nil {
		a.logf("read %s: %v", unit.Path, err)
		return acc
	}
	switch unit.Kind {
	case KindPy:
		a.analyzePython(acc, data, unit.Path)
	case KindNotebook:
		a.analyzeNotebook(acc, data, unit.Path)
	}
	return acc
}

// analyzePython extracts every metric family from one python unit, either
// a whole .py file or a single notebook code cell. Units with syntax
// errors contribute nothing beyond the file counts.
func (a *Analyzer) analyzePython(acc *accumulator, content []byte, path string) {
	src := pysrc.New(content)
	if !src.Valid() {
		a.logf("skipping %s: syntax errors", path)
		return
	}

	raw := src.Raw()
	acc.radonLoc += raw.LOC
	acc.radonLloc += raw.LLOC
	acc.radonSloc += raw.SLOC
	acc.radonComments += raw.Comments
	acc.radonMulti += raw.Multi
	acc.radonBlank += raw.Blank

	acc.lloc += src.LLOC()
	acc.nChar += src.NChar()
	acc.nFunctions += src.NFunctions()
	acc.nClasses += src.NClasses()
	acc.nImports += src.NImports()
	acc.nImportedModules += src.NImportedModules()

	acc.mccabe.add(src.Cyclomatic()...)
	acc.cognitive.add(src.Cognitive()...)
	for _, h := range src.Halstead() {
		acc.halVocabulary.add(h.Vocabulary)
		acc.halLength.add(h.Length)
		acc.halVolume.add(h.Volume)
		acc.halDifficulty.add(h.Difficulty)
		acc.halEffort.add(h.Effort)
	}

	for _, comment := range src.Comments() {
		st := textstats.Analyze(comment, a.checker)
		acc.commentsCount++
		acc.comWords.add(float64(st.Words))
		acc.comChars.add(float64(st.Chars))
		acc.comNonASCII.add(float64(st.NonASCII))
		acc.comSentences.add(float64(st.Sentences))
		acc.comMisspelled.add(float64(st.Misspelled))
		if textstats.Classify(comment) == textstats.KindWhy {
			acc.comWhy.add(1)
		} else {
			acc.comWhy.add(0)
		}
	}

	for _, doc := range src.Docstrings() {
		st := textstats.Analyze(doc, a.checker)
		acc.docstringsCount++
		acc.docWords.add(float64(st.Words))
		acc.docChars.add(float64(st.Chars))
		acc.docNonASCII.add(float64(st.NonASCII))
		acc.docSentences.add(float64(st.Sentences))
		acc.docMisspelled.add(float64(st.Misspelled))
	}

	set := names.NewSet(src.Names())
	acc.namesCount += set.Len()
	acc.nameChars.add(set.CharLengths()...)
	// Every valid unit contributes one ratio sample per flag; a unit
	// with zero names samples 0.0.
	r := set.Ratios()
	acc.ratioCamel.add(r.CamelCase)
	acc.ratioSnake.add(r.SnakeCase)
	acc.ratioPascal.add(r.PascalCase)
	acc.ratioPrivate.add(r.Private)
	acc.ratioNumber.add(r.EndswithNumber)
	acc.ratioSimple.add(r.Simple)
	acc.ratioASCII.add(r.ASCII)
}

// analyzeNotebook decomposes a notebook: each non-blank code cell is an
// independent python unit feeding the shared pools, markdown cells feed
// the markdown totals, raw cells only count toward the cell total.
func (a *Analyzer) analyzeNotebook(acc *accumulator, data []byte, path string) {
	nb, err := notebook.Read(data)
	if err != nil {
		a.logf("skipping %s: %v", path, err)
		return
	}

	acc.nCellsTotal += nb.NCells("")
	acc.nCellsCode += nb.NCells(notebook.CellCode)
	acc.nCellsMarkdown += nb.NCells(notebook.CellMarkdown)

	for _, cell := range nb.CellsOf(notebook.CellCode) {
		a.analyzePython(acc, []byte(cell.Source), path)
	}
	for _, cell := range nb.CellsOf(notebook.CellMarkdown) {
		st := textstats.Analyze(cell.Source, a.checker)
		acc.mdWords += st.Words
		acc.mdChars += st.Chars
		acc.mdSentences += st.Sentences
		acc.mdNonASCII += st.NonASCII
		acc.mdMisspelled += st.Misspelled
	}
}
