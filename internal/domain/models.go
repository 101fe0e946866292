package domain

import "time"

// Role identifies the author of a conversation message. The backend only
// distinguishes the learner from the assistant; each provider adapter maps
// these two roles onto its own wire vocabulary.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single turn in a practice conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// GenerationParams are optional overrides for a generation request.
// Providers apply their own defaults for absent fields.
type GenerationParams struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"max_output_tokens,omitempty"`
}

// Default generation parameters; a provider uses these when the caller
// supplies no override.
const (
	DefaultTemperature     = 0.8
	DefaultMaxOutputTokens = 2048
)

// EffectiveTemperature returns the caller's temperature override or the
// default when params are absent or unset.
func (p *GenerationParams) EffectiveTemperature() float64 {
	if p == nil || p.Temperature == 0 {
		return DefaultTemperature
	}
	return p.Temperature
}

// EffectiveMaxOutputTokens returns the caller's token limit override or the
// default when params are absent or unset.
func (p *GenerationParams) EffectiveMaxOutputTokens() int {
	if p == nil || p.MaxOutputTokens == 0 {
		return DefaultMaxOutputTokens
	}
	return p.MaxOutputTokens
}

// GenerationRequest carries one prompt plus conversation history through a
// dispatch attempt. It is immutable once constructed; a fallback attempt
// reuses the same request against a different provider.
type GenerationRequest struct {
	Prompt  string
	History []Message
	Params  *GenerationParams
}

// Timing is the per-call latency breakdown reported back to workflows.
type Timing struct {
	APICall time.Duration `json:"api_call_time"`
	Total   time.Duration `json:"total_response_time"`
}

// GenerationResult is the outcome of a successful provider call.
type GenerationResult struct {
	Text   string
	Timing Timing
}

// CEFRLevel is a Common European Framework language proficiency level.
type CEFRLevel string

const (
	LevelA1 CEFRLevel = "A1"
	LevelA2 CEFRLevel = "A2"
	LevelB1 CEFRLevel = "B1"
	LevelB2 CEFRLevel = "B2"
	LevelC1 CEFRLevel = "C1"
	LevelC2 CEFRLevel = "C2"
)

// Valid reports whether the level is one of the six CEFR levels.
func (l CEFRLevel) Valid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

// DictionaryEntry is a Swedish-to-English dictionary record. The backend
// treats the dictionary as read-only reference data.
type DictionaryEntry struct {
	ID                 int64     `json:"id"`
	SwedishWord        string    `json:"swedish_word"`
	WordClass          string    `json:"word_class,omitempty"`
	EnglishDef         string    `json:"english_def"`
	SwedishLemma       string    `json:"swedish_lemma,omitempty"`
	EnglishLemma       string    `json:"english_lemma,omitempty"`
	SwedishDefinition  string    `json:"swedish_definition,omitempty"`
	EnglishDefinition  string    `json:"english_definition,omitempty"`
	SwedishExplanation string    `json:"swedish_explanation,omitempty"`
	EnglishExplanation string    `json:"english_explanation,omitempty"`
	GrammarNotes       string    `json:"grammar_notes,omitempty"`
	Antonyms           string    `json:"antonyms,omitempty"`
	Examples           []Example `json:"examples"`
	Idioms             []Idiom   `json:"idioms"`
}

// Example is an example sentence attached to a dictionary entry.
type Example struct {
	SwedishSentence string `json:"swedish_sentence"`
	EnglishSentence string `json:"english_sentence"`
}

// Idiom is an idiomatic expression attached to a dictionary entry.
type Idiom struct {
	SwedishIdiom string `json:"swedish_idiom"`
	EnglishIdiom string `json:"english_idiom"`
}

// ExampleHit is an example sentence matched by a free-text search,
// annotated with the headword it belongs to.
type ExampleHit struct {
	SwedishSentence string `json:"swedish_sentence"`
	EnglishSentence string `json:"english_sentence"`
	ParentWord      string `json:"parent_word"`
}

// User is a registered learner account.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// WordbookEntry is a word saved to a user's personal wordbook.
type WordbookEntry struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Word       string    `json:"word"`
	Definition string    `json:"definition"`
	CreatedAt  time.Time `json:"created_at"`
}

// WordReport is the structured learning report generated for a single word.
type WordReport struct {
	Definition       string   `json:"definition"`
	PartOfSpeech     string   `json:"part_of_speech"`
	IPA              string   `json:"ipa,omitempty"`
	Inflections      string   `json:"inflections"`
	ExampleSentences []string `json:"example_sentences"`
	Synonyms         []string `json:"synonyms,omitempty"`
	Antonyms         []string `json:"antonyms,omitempty"`
}
