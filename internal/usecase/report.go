package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"lexstat/internal/adapter/analyzer"
	"lexstat/internal/domain"
)

// NoDataMessage is returned by BuildReport instead of a report when there are no results.
const NoDataMessage = "Ошибка: Нет данных для генерации отчета."

const (
	unknownTitle  = "Неизвестно"
	unknownAuthor = "Неизвестен"
	notAvailable  = "N/A"
)

var (
	heavyRule = strings.Repeat("=", 70)
	lightRule = strings.Repeat("-", 70)
)

// Diversity bands of the average TTR.
const (
	DiversityHigh   = "high"
	DiversityMedium = "medium"
	DiversityLow    = "low"
)

var diversityWords = map[string]string{
	DiversityHigh:   "высокое",
	DiversityMedium: "среднее",
	DiversityLow:    "низкое",
}

// DiversityLevel classifies an average TTR: above 0.6 is high, above 0.4 medium.
func DiversityLevel(avgTTR float64) string {
	switch {
	case avgTTR > 0.6:
		return DiversityHigh
	case avgTTR > 0.4:
		return DiversityMedium
	default:
		return DiversityLow
	}
}

// Summarize computes corpus totals and the TTR extremes. The first document
// wins ties. ok is false when results is empty.
func Summarize(results []domain.DocumentStatistics) (summary domain.CorpusReport, ok bool) {
	if len(results) == 0 {
		return summary, false
	}

	summary.TotalFiles = len(results)
	summary.MaxTTR = results[0]
	summary.MinTTR = results[0]

	var ttrSum float64
	for _, r := range results {
		summary.TotalWords += r.WordCount
		summary.TotalUnique += r.UniqueWordCount
		ttrSum += r.TTR
		if r.TTR > summary.MaxTTR.TTR {
			summary.MaxTTR = r
		}
		if r.TTR < summary.MinTTR.TTR {
			summary.MinTTR = r
		}
	}
	summary.AvgTTR = ttrSum / float64(summary.TotalFiles)

	return summary, true
}

// MetadataIndex maps filenames to metadata. Records without a filename are
// skipped and later records replace earlier ones.
func MetadataIndex(metadata []domain.Metadata) map[string]domain.Metadata {
	index := make(map[string]domain.Metadata, len(metadata))
	for _, m := range metadata {
		if m.Filename == "" {
			continue
		}
		index[m.Filename] = m
	}
	return index
}

// BuildReport renders the corpus report joining results with metadata by
// filename. With no results it returns NoDataMessage.
func BuildReport(results []domain.DocumentStatistics, metadata []domain.Metadata) string {
	summary, ok := Summarize(results)
	if !ok {
		return NoDataMessage
	}
	index := MetadataIndex(metadata)

	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add(heavyRule)
	add("📊 ОТЧЁТ ПО АНАЛИЗУ КОРПУСА ТЕКСТОВ")
	add(heavyRule)

	add("\n📈 ОБЩАЯ СТАТИСТИКА:")
	add(lightRule)
	add("  Всего текстов в корпусе: %d", summary.TotalFiles)
	add("  Всего слов: %d", summary.TotalWords)
	add("  Всего уникальных слов: %d", summary.TotalUnique)
	add("  Средний Type-Token Ratio (TTR): %s", formatRounded(summary.AvgTTR))

	add("\n📄 ДЕТАЛЬНАЯ СТАТИСТИКА ПО ФАЙЛАМ:")
	add(lightRule)

	for i, r := range results {
		name := r.Filename
		if name == "" {
			name = fmt.Sprintf("Файл_%d", i+1)
		}
		meta := index[r.Filename]

		add("\n%d. %s", i+1, name)
		add("   Название: %s", orDefault(meta.Title, unknownTitle))
		add("   Автор: %s", orDefault(meta.Author, unknownAuthor))
		add("   Год: %s", orDefault(meta.Year, notAvailable))
		add("   Слов: %d", r.WordCount)
		add("   Уникальных слов: %d", r.UniqueWordCount)
		add("   TTR: %.3f", r.TTR)
	}

	add("\n" + heavyRule)
	add("📌 ВЫВОДЫ И ИНТЕРПРЕТАЦИЯ:")
	add(heavyRule)

	add("\n1. Лексическое разнообразие:")
	add("   • Максимальное разнообразие: %s (TTR = %.3f)", orDefault(summary.MaxTTR.Filename, notAvailable), summary.MaxTTR.TTR)
	add("   • Минимальное разнообразие: %s (TTR = %.3f)", orDefault(summary.MinTTR.Filename, notAvailable), summary.MinTTR.TTR)

	add("\n2. Общие наблюдения:")
	add("   • Средний TTR всего корпуса составляет %s, что указывает на %s лексическое разнообразие текстов.",
		formatRounded(summary.AvgTTR), diversityWords[DiversityLevel(summary.AvgTTR)])
	add("   • Всего в корпусе проанализировано %d слов и найдено %d уникальных слов.",
		summary.TotalWords, summary.TotalUnique)

	return strings.Join(lines, "\n")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// formatRounded renders v rounded to 3 digits in shortest form, e.g. 0.65 or 1.0.
func formatRounded(v float64) string {
	s := strconv.FormatFloat(analyzer.Round3(v), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
