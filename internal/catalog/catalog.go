// Package catalog loads vocabulary chapter files into the store after
// validating them against an embedded JSON Schema.
package catalog

// Chapter is one imported unit of source text: a chapter of the book with
// the lemmas that occur in it.
type Chapter struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	Words  []Word `json:"words"`
}

// Word is a catalog entry: a lemma with its translation and corpus stats.
type Word struct {
	Lemma        string `json:"lemma"`
	Translation  string `json:"translation"`
	PartOfSpeech string `json:"part_of_speech,omitempty"`
	// Occurrences is how often the lemma appears in the whole corpus.
	Occurrences int `json:"occurrences"`
}
