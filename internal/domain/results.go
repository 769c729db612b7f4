package domain

// The types below double as the declared output shapes of generator
// requests. `validate` tags mark required fields; decoding fails closed
// when any of them is missing.

// DictionaryResult is a single JA↔ZH dictionary entry.
type DictionaryResult struct {
	Word     string              `json:"word"     validate:"required"`
	Pinyin   string              `json:"pinyin"   validate:"required"`
	Zhuyin   string              `json:"zhuyin"   validate:"required"`
	Meaning  string              `json:"meaning"  validate:"required"`
	Examples []DictionaryExample `json:"examples" validate:"required,dive"`
}

// DictionaryExample is an example sentence with its translation.
type DictionaryExample struct {
	Sentence    string `json:"sentence"    validate:"required"`
	Translation string `json:"translation" validate:"required"`
}

// SemanticResult explains nuance differences for a word or phrase.
type SemanticResult struct {
	Explanation string   `json:"explanation" validate:"required"`
	Differences string   `json:"differences" validate:"required"`
	Examples    []string `json:"examples"    validate:"required"`
}

// SentenceAnalysis is the structured grammar check of a learner sentence.
type SentenceAnalysis struct {
	IsValid       *bool           `json:"isValid"       validate:"required"`
	Correction    *string         `json:"correction,omitempty"`
	Meaning       string          `json:"meaning"       validate:"required"`
	Pronunciation string          `json:"pronunciation" validate:"required"`
	Breakdown     []WordBreakdown `json:"breakdown"     validate:"required,dive"`
	Explanation   string          `json:"explanation"   validate:"required"`
}

// WordBreakdown is one word of an analysed sentence.
type WordBreakdown struct {
	Word     string `json:"word"     validate:"required"`
	Bopomofo string `json:"bopomofo"`
	Meaning  string `json:"meaning"`
}

// Hint is a suggested next utterance in a conversation.
type Hint struct {
	Chinese  string `json:"chinese"  validate:"required"`
	Japanese string `json:"japanese" validate:"required"`
}

// HintSet is the generator reply for a hint request.
type HintSet struct {
	Hints []Hint `json:"hints" validate:"required,min=1,dive"`
}

// GeneratedWord is one raw item of a vocabulary generation reply.
type GeneratedWord struct {
	Chinese  string `json:"chinese"  validate:"required"`
	Pinyin   string `json:"pinyin"   validate:"required"`
	Zhuyin   string `json:"zhuyin"   validate:"required"`
	Japanese string `json:"japanese" validate:"required"`
	Category string `json:"category"`
}

// GeneratedWordList is the generator reply for a vocabulary request.
type GeneratedWordList struct {
	Words []GeneratedWord `json:"words" validate:"required,min=1,dive"`
}

// NewsDigest is a web-grounded weekly news summary.
type NewsDigest struct {
	Content string       `json:"content"`
	Sources []NewsSource `json:"sources"`
}

// NewsSource is a citation attached to a grounded generation.
type NewsSource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
