package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const validChapter = `{
	"id": "ch-01",
	"number": 1,
	"title": "Cuando yo tenía seis años",
	"words": [
		{"lemma": "tener", "translation": "to have", "part_of_speech": "verb", "occurrences": 42},
		{"lemma": "selva", "translation": "jungle", "occurrences": 3}
	]
}`

func TestParse_Valid(t *testing.T) {
	ch, err := Parse([]byte(validChapter))
	require.NoError(t, err)
	require.Equal(t, "ch-01", ch.ID)
	require.Equal(t, 1, ch.Number)
	require.Len(t, ch.Words, 2)
	require.Equal(t, "tener", ch.Words[0].Lemma)
	require.Equal(t, 42, ch.Words[0].Occurrences)
}

func TestParse_RejectsMissingLemma(t *testing.T) {
	_, err := Parse([]byte(`{
		"id": "ch-01", "number": 1,
		"words": [{"translation": "to have"}]
	}`))
	require.Error(t, err)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`{
		"id": "ch-01", "number": 1, "publisher": "x",
		"words": [{"lemma": "tener", "translation": "to have"}]
	}`))
	require.Error(t, err)
}

func TestParse_RejectsEmptyWords(t *testing.T) {
	_, err := Parse([]byte(`{"id": "ch-01", "number": 1, "words": []}`))
	require.Error(t, err)
}

func TestParse_RejectsDuplicateLemma(t *testing.T) {
	_, err := Parse([]byte(`{
		"id": "ch-01", "number": 1,
		"words": [
			{"lemma": "tener", "translation": "to have"},
			{"lemma": "tener", "translation": "to hold"}
		]
	}`))
	require.ErrorContains(t, err, "duplicate lemma")
}

func TestParse_RejectsNonJSON(t *testing.T) {
	_, err := Parse([]byte("chapter one: tener"))
	require.Error(t, err)
}

func TestParse_RejectsZeroChapterNumber(t *testing.T) {
	_, err := Parse([]byte(`{
		"id": "ch-00", "number": 0,
		"words": [{"lemma": "tener", "translation": "to have"}]
	}`))
	require.Error(t, err)
}
