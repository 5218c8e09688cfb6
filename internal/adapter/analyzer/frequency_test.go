package analyzer

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lexstat/internal/domain"
)

func TestMostCommon_NoCleaning(t *testing.T) {
	got := MostCommon("a a b b b c", RankOptions{N: 2})
	assert.Equal(t, []domain.WordFrequency{{Word: "b", Count: 3}, {Word: "a", Count: 2}}, got)
}

func TestMostCommon_TiesKeepFirstSeenOrder(t *testing.T) {
	got := MostCommon("дом лес река лес дом небо", RankOptions{N: 10})
	assert.Equal(t, []domain.WordFrequency{
		{Word: "дом", Count: 2},
		{Word: "лес", Count: 2},
		{Word: "река", Count: 1},
		{Word: "небо", Count: 1},
	}, got)
}

func TestMostCommon_Defaults(t *testing.T) {
	text := "Кот и кот, и собака! В доме кот. 123 123"
	got := MostCommon(text, DefaultRankOptions())
	assert.Equal(t, []domain.WordFrequency{
		{Word: "кот", Count: 3},
		{Word: "собака", Count: 1},
		{Word: "доме", Count: 1},
	}, got)
}

func TestMostCommon_StopwordFilterWithoutCleaning(t *testing.T) {
	opts := RankOptions{N: 5, CleanOptions: CleanOptions{StripStopwords: true}}
	got := MostCommon("и И кот, кот, x", opts)
	// punctuation is kept because cleaning is off; "и" and "x" are filtered here
	assert.Equal(t, []domain.WordFrequency{{Word: "кот,", Count: 2}}, got)
}

func TestMostCommon_Lowercases(t *testing.T) {
	got := MostCommon("Мир мир МИР", RankOptions{N: 1})
	assert.Equal(t, []domain.WordFrequency{{Word: "мир", Count: 3}}, got)
}

func TestMostCommon_NonPositiveN(t *testing.T) {
	assert.Empty(t, MostCommon("кот кот", RankOptions{N: 0}))
}

func TestMostCommon_Properties(t *testing.T) {
	vocab := []string{"кот", "собака", "дом", "мир", "и", "в", "лес", "река", "небо", "x"}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		words := make([]string, 1+rng.Intn(50))
		for j := range words {
			words[j] = vocab[rng.Intn(len(vocab))]
		}
		text := strings.Join(words, " ")
		n := 1 + rng.Intn(6)

		got := MostCommon(text, RankOptions{N: n, Cleaned: true, CleanOptions: DefaultCleanOptions()})

		distinct := make(map[string]struct{})
		for _, w := range Tokens(Clean(text, DefaultCleanOptions())) {
			distinct[strings.ToLower(w)] = struct{}{}
		}

		assert.LessOrEqual(t, len(got), n)
		assert.LessOrEqual(t, len(got), len(distinct))
		for k := 1; k < len(got); k++ {
			assert.GreaterOrEqual(t, got[k-1].Count, got[k].Count)
		}
	}
}
