package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexstat/internal/domain"
)

func twoDocs() []domain.DocumentStatistics {
	return []domain.DocumentStatistics{
		{Filename: "doc1.txt", WordCount: 10, UniqueWordCount: 5, LineCount: 2, TTR: 0.5},
		{Filename: "doc2.txt", WordCount: 20, UniqueWordCount: 16, LineCount: 3, TTR: 0.8},
	}
}

func TestSummarize(t *testing.T) {
	summary, ok := Summarize(twoDocs())
	require.True(t, ok)

	assert.Equal(t, 2, summary.TotalFiles)
	assert.Equal(t, 30, summary.TotalWords)
	assert.Equal(t, 21, summary.TotalUnique)
	assert.InDelta(t, 0.65, summary.AvgTTR, 1e-9)
	assert.Equal(t, "doc2.txt", summary.MaxTTR.Filename)
	assert.Equal(t, "doc1.txt", summary.MinTTR.Filename)
}

func TestSummarize_TiesFirstWins(t *testing.T) {
	summary, ok := Summarize([]domain.DocumentStatistics{
		{Filename: "a", TTR: 0.5},
		{Filename: "b", TTR: 0.5},
	})
	require.True(t, ok)
	assert.Equal(t, "a", summary.MaxTTR.Filename)
	assert.Equal(t, "a", summary.MinTTR.Filename)
}

func TestDiversityLevel(t *testing.T) {
	assert.Equal(t, DiversityHigh, DiversityLevel(0.65))
	assert.Equal(t, DiversityMedium, DiversityLevel(0.6))
	assert.Equal(t, DiversityMedium, DiversityLevel(0.41))
	assert.Equal(t, DiversityLow, DiversityLevel(0.4))
	assert.Equal(t, DiversityLow, DiversityLevel(0))
}

func TestMetadataIndex_LastWriteWins(t *testing.T) {
	index := MetadataIndex([]domain.Metadata{
		{Filename: "a.txt", Title: "Первое"},
		{Title: "без имени"},
		{Filename: "a.txt", Title: "Второе"},
	})
	assert.Len(t, index, 1)
	assert.Equal(t, "Второе", index["a.txt"].Title)
}

func TestBuildReport_Empty(t *testing.T) {
	assert.Equal(t, NoDataMessage, BuildReport(nil, nil))
	assert.Equal(t, NoDataMessage, BuildReport([]domain.DocumentStatistics{}, []domain.Metadata{{Filename: "x"}}))
}

func TestBuildReport(t *testing.T) {
	metadata := []domain.Metadata{
		{Filename: "doc1.txt", Title: "Зимнее утро", Author: "А. С. Пушкин", Year: "1829"},
		{Filename: "other.txt", Title: "Не используется"},
	}

	report := BuildReport(twoDocs(), metadata)

	assert.True(t, strings.HasPrefix(report, strings.Repeat("=", 70)+"\n📊 ОТЧЁТ ПО АНАЛИЗУ КОРПУСА ТЕКСТОВ"))
	assert.Contains(t, report, "  Всего текстов в корпусе: 2\n")
	assert.Contains(t, report, "  Всего слов: 30\n")
	assert.Contains(t, report, "  Всего уникальных слов: 21\n")
	assert.Contains(t, report, "  Средний Type-Token Ratio (TTR): 0.65\n")

	assert.Contains(t, report, "\n1. doc1.txt\n   Название: Зимнее утро\n   Автор: А. С. Пушкин\n   Год: 1829\n   Слов: 10\n   Уникальных слов: 5\n   TTR: 0.500")
	assert.Contains(t, report, "\n2. doc2.txt\n   Название: Неизвестно\n   Автор: Неизвестен\n   Год: N/A\n   Слов: 20\n   Уникальных слов: 16\n   TTR: 0.800")
	assert.NotContains(t, report, "Не используется")

	assert.Contains(t, report, "   • Максимальное разнообразие: doc2.txt (TTR = 0.800)")
	assert.Contains(t, report, "   • Минимальное разнообразие: doc1.txt (TTR = 0.500)")
	assert.Contains(t, report, "составляет 0.65, что указывает на высокое лексическое разнообразие текстов.")
	assert.True(t, strings.HasSuffix(report, "   • Всего в корпусе проанализировано 30 слов и найдено 21 уникальных слов."))
}

func TestBuildReport_MissingMetadataForDocument(t *testing.T) {
	results := []domain.DocumentStatistics{{Filename: "doc3.txt", WordCount: 4, UniqueWordCount: 2, TTR: 0.5}}
	report := BuildReport(results, []domain.Metadata{{Filename: "doc1.txt", Title: "x"}})

	assert.Contains(t, report, "1. doc3.txt\n   Название: Неизвестно\n   Автор: Неизвестен\n   Год: N/A")
	assert.Contains(t, report, "Средний TTR всего корпуса составляет 0.5, что указывает на среднее")
}

func TestBuildReport_Deterministic(t *testing.T) {
	assert.Equal(t, BuildReport(twoDocs(), nil), BuildReport(twoDocs(), nil))
}

func TestBuildReport_UnnamedRow(t *testing.T) {
	report := BuildReport([]domain.DocumentStatistics{{WordCount: 1, UniqueWordCount: 1, TTR: 1}}, nil)
	assert.Contains(t, report, "1. Файл_1\n")
	assert.Contains(t, report, "составляет 1.0, что указывает на высокое")
}
