package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 5, cfg.Analysis.TopN)
	assert.True(t, cfg.Analysis.Cleaned)
	assert.True(t, cfg.Analysis.StripPunctuation)
	assert.True(t, cfg.Analysis.StripStopwords)
	assert.Equal(t, ".txt", cfg.Corpus.Extension)
	assert.Equal(t, "utf-8", cfg.Corpus.Encoding)
	assert.Equal(t, EmptyZero, cfg.Analysis.EmptyDocuments)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "corpus", cfg.Corpus.Folder)
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lexstat.yaml")

	content := `
corpus:
  folder: texts
  encoding: windows-1251
analysis:
  top_n: 10
  strip_stopwords: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "texts", cfg.Corpus.Folder)
	assert.Equal(t, "windows-1251", cfg.Corpus.Encoding)
	assert.Equal(t, 10, cfg.Analysis.TopN)
	assert.False(t, cfg.Analysis.StripStopwords)
	// untouched keys keep defaults
	assert.True(t, cfg.Analysis.StripPunctuation)
}

func TestLoad_ValidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "lexstat.toml")

	content := `
[analysis]
top_n = 3
empty_documents = "skip"

[output]
top_words_file = "top.txt"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Analysis.TopN)
	assert.Equal(t, EmptySkip, cfg.Analysis.EmptyDocuments)
	assert.Equal(t, filepath.Join("/p", "results", "top.txt"), cfg.TopWordsPath("/p"))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero top", "analysis:\n  top_n: 0\n"},
		{"bad encoding", "corpus:\n  encoding: latin-9\n"},
		{"bad policy", "analysis:\n  empty_documents: abort\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lexstat.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".lexstat"), 0755))
	configPath := filepath.Join(tmpDir, ".lexstat", "config.yaml")

	content := `
output:
  results_dir: out
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadFromDir(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.Output.ResultsDir)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexstat.yaml")
	cfg := DefaultConfig()
	cfg.Analysis.TopN = 7
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Analysis.TopN)
}

func TestPaths(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, filepath.Join("/home/user", "results", "statistics.csv"), cfg.StatisticsPath("/home/user"))
	assert.Equal(t, filepath.Join("/home/user", "results", "report.txt"), cfg.ReportPath("/home/user"))
	assert.Equal(t, filepath.Join("/home/user", "data", "metadata.csv"), cfg.MetadataPath("/home/user"))
	assert.Equal(t, filepath.Join("/home/user", ".lexstat", "history.db"), cfg.HistoryDBPath("/home/user"))
	assert.Equal(t, "", cfg.TopWordsPath("/home/user"))

	cfg.Corpus.Folder = "/abs/corpus"
	assert.Equal(t, "/abs/corpus", cfg.CorpusPath("/home/user"))
}

func TestYAML(t *testing.T) {
	data, err := DefaultConfig().YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "top_n: 5")
	assert.Contains(t, string(data), "empty_documents: zero")
}
