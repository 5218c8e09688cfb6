package domain

import "time"

// Document is one text of the corpus. Content is never modified after reading.
type Document struct {
	Filename string
	Path     string
	Content  string
	ModTime  time.Time
}

// DocumentStatistics holds the lexical figures of one document.
// UniqueWordCount <= WordCount; TTR = UniqueWordCount / WordCount rounded to 3 digits.
type DocumentStatistics struct {
	Filename        string  `json:"filename"`
	WordCount       int     `json:"word_count"`
	UniqueWordCount int     `json:"words_ucount"`
	LineCount       int     `json:"lines_count"`
	TTR             float64 `json:"ttr_count"`
}

// WordFrequency is one entry of a ranked frequency table.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Metadata holds optional bibliographic attributes keyed by filename.
// Empty fields are treated as absent.
type Metadata struct {
	Filename string
	Title    string
	Author   string
	Year     string
}

// DocumentError records a per-document failure that did not abort the batch.
type DocumentError struct {
	Filename string
	Err      error
}

func (e DocumentError) Error() string {
	return e.Filename + ": " + e.Err.Error()
}

func (e DocumentError) Unwrap() error {
	return e.Err
}

// AnalysisResult is the output of a corpus scan.
type AnalysisResult struct {
	Documents  []DocumentStatistics
	MostCommon []WordFrequency
	Failures   []DocumentError
}

// CorpusReport is the aggregate view the report is rendered from.
type CorpusReport struct {
	TotalFiles  int
	TotalWords  int
	TotalUnique int
	AvgTTR      float64
	MaxTTR      DocumentStatistics
	MinTTR      DocumentStatistics
}

// Run is one recorded corpus analysis.
type Run struct {
	ID         string               `json:"id"`
	StartedAt  time.Time            `json:"started_at"`
	Folder     string               `json:"folder"`
	Documents  []DocumentStatistics `json:"documents"`
	MostCommon []WordFrequency      `json:"most_common"`
	Failures   []string             `json:"failures,omitempty"`
}

// CachedStats is a statistics record remembered for a document content hash.
type CachedStats struct {
	Path  string             `json:"path"`
	Hash  string             `json:"hash"`
	Stats DocumentStatistics `json:"stats"`
}
