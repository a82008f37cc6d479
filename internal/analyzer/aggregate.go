package analyzer

import (
	"sort"

	"github.com/teachnology/codelytics/internal/gitutil"
)

// dist accumulates the samples of one distribution metric. Reduction
// sorts the samples first, so totals, means, and medians do not depend on
// the order files were processed in.
type dist struct {
	values []float64
}

func (d *dist) add(values ...float64) {
	d.values = append(d.values, values...)
}

func (d *dist) merge(other *dist) {
	d.values = append(d.values, other.values...)
}

// reduce returns (total, mean, median). An empty distribution reduces to
// all zeros, never NaN.
func (d *dist) reduce() (total, mean, median float64) {
	if len(d.values) == 0 {
		return 0, 0, 0
	}
	sorted := make([]float64, len(d.values))
	copy(sorted, d.values)
	sort.Float64s(sorted)

	for _, v := range sorted {
		total += v
	}
	mean = total / float64(len(sorted))

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		median = sorted[mid]
	} else {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}
	return total, mean, median
}

// meanOnly reduces a ratio distribution to its mean.
func (d *dist) meanOnly() float64 {
	_, mean, _ := d.reduce()
	return mean
}

// accumulator gathers one file's (or the whole project's) contribution.
// Workers fill one accumulator per file; the reducer merges them
// single-threaded, so no field is ever touched concurrently.
type accumulator struct {
	// Plain-sum counters.
	nFilesTotal, nFilesPy, nFilesIpynb, nFilesMd        int
	radonLoc, radonLloc, radonSloc                      int
	radonComments, radonMulti, radonBlank               int
	lloc, nChar                                         int
	nFunctions, nClasses, nImports, nImportedModules    int
	commentsCount, docstringsCount, namesCount          int
	nCellsTotal, nCellsCode, nCellsMarkdown             int
	mdWords, mdChars, mdSentences, mdNonASCII, mdMisspelled int

	// Distribution samples.
	mccabe, cognitive                                        dist
	halVocabulary, halLength, halVolume, halDifficulty, halEffort dist
	comWords, comChars, comNonASCII, comSentences            dist
	comMisspelled, comWhy                                    dist
	docWords, docChars, docNonASCII, docSentences, docMisspelled dist
	nameChars                                                dist

	// Per-unit ratio samples (reduced to their mean).
	ratioCamel, ratioSnake, ratioPascal, ratioPrivate dist
	ratioNumber, ratioSimple, ratioASCII              dist
}

// merge folds another accumulator into this one.
func (a *accumulator) merge(b *accumulator) {
	a.nFilesTotal += b.nFilesTotal
	a.nFilesPy += b.nFilesPy
	a.nFilesIpynb += b.nFilesIpynb
	a.nFilesMd += b.nFilesMd
	a.radonLoc += b.radonLoc
	a.radonLloc += b.radonLloc
	a.radonSloc += b.radonSloc
	a.radonComments += b.radonComments
	a.radonMulti += b.radonMulti
	a.radonBlank += b.radonBlank
	a.lloc += b.lloc
	a.nChar += b.nChar
	a.nFunctions += b.nFunctions
	a.nClasses += b.nClasses
	a.nImports += b.nImports
	a.nImportedModules += b.nImportedModules
	a.commentsCount += b.commentsCount
	a.docstringsCount += b.docstringsCount
	a.namesCount += b.namesCount
	a.nCellsTotal += b.nCellsTotal
	a.nCellsCode += b.nCellsCode
	a.nCellsMarkdown += b.nCellsMarkdown
	a.mdWords += b.mdWords
	a.mdChars += b.mdChars
	a.mdSentences += b.mdSentences
	a.mdNonASCII += b.mdNonASCII
	a.mdMisspelled += b.mdMisspelled

	a.mccabe.merge(&b.mccabe)
	a.cognitive.merge(&b.cognitive)
	a.halVocabulary.merge(&b.halVocabulary)
	a.halLength.merge(&b.halLength)
	a.halVolume.merge(&b.halVolume)
	a.halDifficulty.merge(&b.halDifficulty)
	a.halEffort.merge(&b.halEffort)
	a.comWords.merge(&b.comWords)
	a.comChars.merge(&b.comChars)
	a.comNonASCII.merge(&b.comNonASCII)
	a.comSentences.merge(&b.comSentences)
	a.comMisspelled.merge(&b.comMisspelled)
	a.comWhy.merge(&b.comWhy)
	a.docWords.merge(&b.docWords)
	a.docChars.merge(&b.docChars)
	a.docNonASCII.merge(&b.docNonASCII)
	a.docSentences.merge(&b.docSentences)
	a.docMisspelled.merge(&b.docMisspelled)
	a.nameChars.merge(&b.nameChars)
	a.ratioCamel.merge(&b.ratioCamel)
	a.ratioSnake.merge(&b.ratioSnake)
	a.ratioPascal.merge(&b.ratioPascal)
	a.ratioPrivate.merge(&b.ratioPrivate)
	a.ratioNumber.merge(&b.ratioNumber)
	a.ratioSimple.merge(&b.ratioSimple)
	a.ratioASCII.merge(&b.ratioASCII)
}

// record reduces the accumulated samples into the final ProjectRecord.
func (a *accumulator) record(repo gitutil.RepoInfo) *ProjectRecord {
	r := &ProjectRecord{
		IsRepo:   repo.IsRepo,
		NCommits: repo.NCommits,

		NFilesTotal: a.nFilesTotal,
		NFilesPy:    a.nFilesPy,
		NFilesIpynb: a.nFilesIpynb,
		NFilesMd:    a.nFilesMd,

		RadonLoc:      a.radonLoc,
		RadonLloc:     a.radonLloc,
		RadonSloc:     a.radonSloc,
		RadonComments: a.radonComments,
		RadonMulti:    a.radonMulti,
		RadonBlank:    a.radonBlank,

		Lloc:             a.lloc,
		NChar:            a.nChar,
		NFunctions:       a.nFunctions,
		NClasses:         a.nClasses,
		NImports:         a.nImports,
		NImportedModules: a.nImportedModules,

		CommentsCount:   a.commentsCount,
		DocstringsCount: a.docstringsCount,
		NamesCount:      a.namesCount,

		NCellsTotal:    a.nCellsTotal,
		NCellsCode:     a.nCellsCode,
		NCellsMarkdown: a.nCellsMarkdown,

		MarkdownWordsTotal:      a.mdWords,
		MarkdownCharsTotal:      a.mdChars,
		MarkdownSentencesTotal:  a.mdSentences,
		MarkdownNonASCIITotal:   a.mdNonASCII,
		MarkdownMisspelledTotal: a.mdMisspelled,
	}

	total, mean, median := a.mccabe.reduce()
	r.MccabeTotal, r.MccabeMean, r.MccabeMedian = int(total), mean, median

	total, mean, median = a.cognitive.reduce()
	r.CognitiveTotal, r.CognitiveMean, r.CognitiveMedian = int(total), mean, median

	r.HalsteadVocabularyTotal, r.HalsteadVocabularyMean, r.HalsteadVocabularyMedian = a.halVocabulary.reduce()
	r.HalsteadLengthTotal, r.HalsteadLengthMean, r.HalsteadLengthMedian = a.halLength.reduce()
	r.HalsteadVolumeTotal, r.HalsteadVolumeMean, r.HalsteadVolumeMedian = a.halVolume.reduce()
	r.HalsteadDifficultyTotal, r.HalsteadDifficultyMean, r.HalsteadDifficultyMedian = a.halDifficulty.reduce()
	r.HalsteadEffortTotal, r.HalsteadEffortMean, r.HalsteadEffortMedian = a.halEffort.reduce()

	total, mean, median = a.comWords.reduce()
	r.CommentsWordsTotal, r.CommentsWordsMean, r.CommentsWordsMedian = int(total), mean, median
	total, mean, median = a.comChars.reduce()
	r.CommentsCharsTotal, r.CommentsCharsMean, r.CommentsCharsMedian = int(total), mean, median
	total, mean, median = a.comNonASCII.reduce()
	r.CommentsNonASCIITotal, r.CommentsNonASCIIMean, r.CommentsNonASCIIMedian = int(total), mean, median
	total, mean, median = a.comSentences.reduce()
	r.CommentsSentencesTotal, r.CommentsSentencesMean, r.CommentsSentencesMedian = int(total), mean, median
	total, mean, median = a.comMisspelled.reduce()
	r.CommentsMisspelledTotal, r.CommentsMisspelledMean, r.CommentsMisspelledMedian = int(total), mean, median
	total, mean, median = a.comWhy.reduce()
	r.CommentsWhyOrWhatTotal, r.CommentsWhyOrWhatMean, r.CommentsWhyOrWhatMedian = int(total), mean, median

	total, mean, median = a.docWords.reduce()
	r.DocstringsWordsTotal, r.DocstringsWordsMean, r.DocstringsWordsMedian = int(total), mean, median
	total, mean, median = a.docChars.reduce()
	r.DocstringsCharsTotal, r.DocstringsCharsMean, r.DocstringsCharsMedian = int(total), mean, median
	total, mean, median = a.docNonASCII.reduce()
	r.DocstringsNonASCIITotal, r.DocstringsNonASCIIMean, r.DocstringsNonASCIIMedian = int(total), mean, median
	total, mean, median = a.docSentences.reduce()
	r.DocstringsSentencesTotal, r.DocstringsSentencesMean, r.DocstringsSentencesMedian = int(total), mean, median
	total, mean, median = a.docMisspelled.reduce()
	r.DocstringsMisspelledTotal, r.DocstringsMisspelledMean, r.DocstringsMisspelledMedian = int(total), mean, median

	total, mean, median = a.nameChars.reduce()
	r.NamesCharsTotal, r.NamesCharsMean, r.NamesCharsMedian = int(total), mean, median

	r.NamesCamelCaseRatio = a.ratioCamel.meanOnly()
	r.NamesSnakeCaseRatio = a.ratioSnake.meanOnly()
	r.NamesPascalCaseRatio = a.ratioPascal.meanOnly()
	r.NamesPrivateRatio = a.ratioPrivate.meanOnly()
	r.NamesEndswithNumberRatio = a.ratioNumber.meanOnly()
	r.NamesSimpleRatio = a.ratioSimple.meanOnly()
	r.NamesASCIIRatio = a.ratioASCII.meanOnly()

	return r
}
