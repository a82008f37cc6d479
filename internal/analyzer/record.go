package analyzer

// ProjectRecord is the flat output record of one analyzed directory. The
// schema is fixed: every field is always present, zero-filled when the
// underlying data is absent, so records from different projects align
// column-for-column in bulk comparisons.
type ProjectRecord struct {
	// Repository metadata.
	IsRepo   bool `json:"is_repo"`
	NCommits int  `json:"n_commits"`

	// File counts.
	NFilesTotal int `json:"n_files_total"`
	NFilesPy    int `json:"n_files_py"`
	NFilesIpynb int `json:"n_files_ipynb"`
	NFilesMd    int `json:"n_files_md"`

	// Raw line categories from the structural collaborator.
	RadonLoc      int `json:"radon_loc"`
	RadonLloc     int `json:"radon_lloc"`
	RadonSloc     int `json:"radon_sloc"`
	RadonComments int `json:"radon_comments"`
	RadonMulti    int `json:"radon_multi"`
	RadonBlank    int `json:"radon_blank"`

	// The engine's own logical-line count (docstrings excluded).
	Lloc int `json:"lloc"`

	// Basic code metrics.
	NChar            int `json:"n_char"`
	NFunctions       int `json:"n_functions"`
	NClasses         int `json:"n_classes"`
	NImports         int `json:"n_imports"`
	NImportedModules int `json:"n_imported_modules"`

	// Cyclomatic complexity over per-function samples.
	MccabeTotal  int     `json:"mccabe_total"`
	MccabeMean   float64 `json:"mccabe_mean"`
	MccabeMedian float64 `json:"mccabe_median"`

	// Cognitive complexity over per-function samples.
	CognitiveTotal  int     `json:"cognitive_total"`
	CognitiveMean   float64 `json:"cognitive_mean"`
	CognitiveMedian float64 `json:"cognitive_median"`

	// Halstead metrics over per-function samples.
	HalsteadVocabularyTotal  float64 `json:"halstead_vocabulary_total"`
	HalsteadVocabularyMean   float64 `json:"halstead_vocabulary_mean"`
	HalsteadVocabularyMedian float64 `json:"halstead_vocabulary_median"`
	HalsteadLengthTotal      float64 `json:"halstead_length_total"`
	HalsteadLengthMean       float64 `json:"halstead_length_mean"`
	HalsteadLengthMedian     float64 `json:"halstead_length_median"`
	HalsteadVolumeTotal      float64 `json:"halstead_volume_total"`
	HalsteadVolumeMean       float64 `json:"halstead_volume_mean"`
	HalsteadVolumeMedian     float64 `json:"halstead_volume_median"`
	HalsteadDifficultyTotal  float64 `json:"halstead_difficulty_total"`
	HalsteadDifficultyMean   float64 `json:"halstead_difficulty_mean"`
	HalsteadDifficultyMedian float64 `json:"halstead_difficulty_median"`
	HalsteadEffortTotal      float64 `json:"halstead_effort_total"`
	HalsteadEffortMean       float64 `json:"halstead_effort_mean"`
	HalsteadEffortMedian     float64 `json:"halstead_effort_median"`

	// Comment analysis over per-comment samples.
	CommentsCount            int     `json:"comments_count"`
	CommentsWordsTotal       int     `json:"comments_words_total"`
	CommentsWordsMean        float64 `json:"comments_words_mean"`
	CommentsWordsMedian      float64 `json:"comments_words_median"`
	CommentsCharsTotal       int     `json:"comments_chars_total"`
	CommentsCharsMean        float64 `json:"comments_chars_mean"`
	CommentsCharsMedian      float64 `json:"comments_chars_median"`
	CommentsNonASCIITotal    int     `json:"comments_non_ascii_total"`
	CommentsNonASCIIMean     float64 `json:"comments_non_ascii_mean"`
	CommentsNonASCIIMedian   float64 `json:"comments_non_ascii_median"`
	CommentsSentencesTotal   int     `json:"comments_sentences_total"`
	CommentsSentencesMean    float64 `json:"comments_sentences_mean"`
	CommentsSentencesMedian  float64 `json:"comments_sentences_median"`
	CommentsMisspelledTotal  int     `json:"comments_misspelled_total"`
	CommentsMisspelledMean   float64 `json:"comments_misspelled_mean"`
	CommentsMisspelledMedian float64 `json:"comments_misspelled_median"`
	CommentsWhyOrWhatTotal   int     `json:"comments_why_or_what_total"`
	CommentsWhyOrWhatMean    float64 `json:"comments_why_or_what_mean"`
	CommentsWhyOrWhatMedian  float64 `json:"comments_why_or_what_median"`

	// Docstring analysis over per-docstring samples.
	DocstringsCount            int     `json:"docstrings_count"`
	DocstringsWordsTotal       int     `json:"docstrings_words_total"`
	DocstringsWordsMean        float64 `json:"docstrings_words_mean"`
	DocstringsWordsMedian      float64 `json:"docstrings_words_median"`
	DocstringsCharsTotal       int     `json:"docstrings_chars_total"`
	DocstringsCharsMean        float64 `json:"docstrings_chars_mean"`
	DocstringsCharsMedian      float64 `json:"docstrings_chars_median"`
	DocstringsNonASCIITotal    int     `json:"docstrings_non_ascii_total"`
	DocstringsNonASCIIMean     float64 `json:"docstrings_non_ascii_mean"`
	DocstringsNonASCIIMedian   float64 `json:"docstrings_non_ascii_median"`
	DocstringsSentencesTotal   int     `json:"docstrings_sentences_total"`
	DocstringsSentencesMean    float64 `json:"docstrings_sentences_mean"`
	DocstringsSentencesMedian  float64 `json:"docstrings_sentences_median"`
	DocstringsMisspelledTotal  int     `json:"docstrings_misspelled_total"`
	DocstringsMisspelledMean   float64 `json:"docstrings_misspelled_mean"`
	DocstringsMisspelledMedian float64 `json:"docstrings_misspelled_median"`

	// Identifier analysis. Ratio fields are means of per-file ratio
	// samples, never global sums divided.
	NamesCount               int     `json:"names_count"`
	NamesCharsTotal          int     `json:"names_chars_total"`
	NamesCharsMean           float64 `json:"names_chars_mean"`
	NamesCharsMedian         float64 `json:"names_chars_median"`
	NamesCamelCaseRatio      float64 `json:"names_camel_case_ratio"`
	NamesSnakeCaseRatio      float64 `json:"names_snake_case_ratio"`
	NamesPascalCaseRatio     float64 `json:"names_pascal_case_ratio"`
	NamesPrivateRatio        float64 `json:"names_private_ratio"`
	NamesEndswithNumberRatio float64 `json:"names_endswith_number_ratio"`
	NamesSimpleRatio         float64 `json:"names_simple_ratio"`
	NamesASCIIRatio          float64 `json:"names_ascii_ratio"`

	// Notebook structure.
	NCellsTotal    int `json:"n_cells_total"`
	NCellsCode     int `json:"n_cells_code"`
	NCellsMarkdown int `json:"n_cells_markdown"`

	// Markdown cell analysis (totals only).
	MarkdownWordsTotal      int `json:"markdown_words_total"`
	MarkdownCharsTotal      int `json:"markdown_chars_total"`
	MarkdownSentencesTotal  int `json:"markdown_sentences_total"`
	MarkdownNonASCIITotal   int `json:"markdown_non_ascii_total"`
	MarkdownMisspelledTotal int `json:"markdown_misspelled_total"`
}

// Field is one named scalar of the record, used for ordered rendering.
type Field struct {
	Name  string
	Value any
}

// Fields returns the record as an ordered field list. The order is part
// of the output contract and identical across runs and projects.
func (r *ProjectRecord) Fields() []Field {
	return []Field{
		{"is_repo", r.IsRepo},
		{"n_commits", r.NCommits},
		{"n_files_total", r.NFilesTotal},
		{"n_files_py", r.NFilesPy},
		{"n_files_ipynb", r.NFilesIpynb},
		{"n_files_md", r.NFilesMd},
		{"radon_loc", r.RadonLoc},
		{"radon_lloc", r.RadonLloc},
		{"radon_sloc", r.RadonSloc},
		{"radon_comments", r.RadonComments},
		{"radon_multi", r.RadonMulti},
		{"radon_blank", r.RadonBlank},
		{"lloc", r.Lloc},
		{"n_char", r.NChar},
		{"n_functions", r.NFunctions},
		{"n_classes", r.NClasses},
		{"n_imports", r.NImports},
		{"n_imported_modules", r.NImportedModules},
		{"mccabe_total", r.MccabeTotal},
		{"mccabe_mean", r.MccabeMean},
		{"mccabe_median", r.MccabeMedian},
		{"cognitive_total", r.CognitiveTotal},
		{"cognitive_mean", r.CognitiveMean},
		{"cognitive_median", r.CognitiveMedian},
		{"halstead_vocabulary_total", r.HalsteadVocabularyTotal},
		{"halstead_vocabulary_mean", r.HalsteadVocabularyMean},
		{"halstead_vocabulary_median", r.HalsteadVocabularyMedian},
		{"halstead_length_total", r.HalsteadLengthTotal},
		{"halstead_length_mean", r.HalsteadLengthMean},
		{"halstead_length_median", r.HalsteadLengthMedian},
		{"halstead_volume_total", r.HalsteadVolumeTotal},
		{"halstead_volume_mean", r.HalsteadVolumeMean},
		{"halstead_volume_median", r.HalsteadVolumeMedian},
		{"halstead_difficulty_total", r.HalsteadDifficultyTotal},
		{"halstead_difficulty_mean", r.HalsteadDifficultyMean},
		{"halstead_difficulty_median", r.HalsteadDifficultyMedian},
		{"halstead_effort_total", r.HalsteadEffortTotal},
		{"halstead_effort_mean", r.HalsteadEffortMean},
		{"halstead_effort_median", r.HalsteadEffortMedian},
		{"comments_count", r.CommentsCount},
		{"comments_words_total", r.CommentsWordsTotal},
		{"comments_words_mean", r.CommentsWordsMean},
		{"comments_words_median", r.CommentsWordsMedian},
		{"comments_chars_total", r.CommentsCharsTotal},
		{"comments_chars_mean", r.CommentsCharsMean},
		{"comments_chars_median", r.CommentsCharsMedian},
		{"comments_non_ascii_total", r.CommentsNonASCIITotal},
		{"comments_non_ascii_mean", r.CommentsNonASCIIMean},
		{"comments_non_ascii_median", r.CommentsNonASCIIMedian},
		{"comments_sentences_total", r.CommentsSentencesTotal},
		{"comments_sentences_mean", r.CommentsSentencesMean},
		{"comments_sentences_median", r.CommentsSentencesMedian},
		{"comments_misspelled_total", r.CommentsMisspelledTotal},
		{"comments_misspelled_mean", r.CommentsMisspelledMean},
		{"comments_misspelled_median", r.CommentsMisspelledMedian},
		{"comments_why_or_what_total", r.CommentsWhyOrWhatTotal},
		{"comments_why_or_what_mean", r.CommentsWhyOrWhatMean},
		{"comments_why_or_what_median", r.CommentsWhyOrWhatMedian},
		{"docstrings_count", r.DocstringsCount},
		{"docstrings_words_total", r.DocstringsWordsTotal},
		{"docstrings_words_mean", r.DocstringsWordsMean},
		{"docstrings_words_median", r.DocstringsWordsMedian},
		{"docstrings_chars_total", r.DocstringsCharsTotal},
		{"docstrings_chars_mean", r.DocstringsCharsMean},
		{"docstrings_chars_median", r.DocstringsCharsMedian},
		{"docstrings_non_ascii_total", r.DocstringsNonASCIITotal},
		{"docstrings_non_ascii_mean", r.DocstringsNonASCIIMean},
		{"docstrings_non_ascii_median", r.DocstringsNonASCIIMedian},
		{"docstrings_sentences_total", r.DocstringsSentencesTotal},
		{"docstrings_sentences_mean", r.DocstringsSentencesMean},
		{"docstrings_sentences_median", r.DocstringsSentencesMedian},
		{"docstrings_misspelled_total", r.DocstringsMisspelledTotal},
		{"docstrings_misspelled_mean", r.DocstringsMisspelledMean},
		{"docstrings_misspelled_median", r.DocstringsMisspelledMedian},
		{"names_count", r.NamesCount},
		{"names_chars_total", r.NamesCharsTotal},
		{"names_chars_mean", r.NamesCharsMean},
		{"names_chars_median", r.NamesCharsMedian},
		{"names_camel_case_ratio", r.NamesCamelCaseRatio},
		{"names_snake_case_ratio", r.NamesSnakeCaseRatio},
		{"names_pascal_case_ratio", r.NamesPascalCaseRatio},
		{"names_private_ratio", r.NamesPrivateRatio},
		{"names_endswith_number_ratio", r.NamesEndswithNumberRatio},
		{"names_simple_ratio", r.NamesSimpleRatio},
		{"names_ascii_ratio", r.NamesASCIIRatio},
		{"n_cells_total", r.NCellsTotal},
		{"n_cells_code", r.NCellsCode},
		{"n_cells_markdown", r.NCellsMarkdown},
		{"markdown_words_total", r.MarkdownWordsTotal},
		{"markdown_chars_total", r.MarkdownCharsTotal},
		{"markdown_sentences_total", r.MarkdownSentencesTotal},
		{"markdown_non_ascii_total", r.MarkdownNonASCIITotal},
		{"markdown_misspelled_total", r.MarkdownMisspelledTotal},
	}
}
