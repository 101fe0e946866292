package domain

import "context"

// Provider represents one LLM backend. Each implementation knows how to
// format a request and extract a response for its own provider; the
// dispatcher never branches on provider identity.
type Provider interface {
	// Generate sends one request and returns the generated text with a
	// timing breakdown. The history it receives is already filtered of
	// blank messages.
	Generate(ctx context.Context, req *GenerationRequest) (*GenerationResult, error)

	// Name returns the provider identifier for logging.
	Name() string
}

// Lemmatizer normalizes a word or phrase into its dictionary base form for
// a given language. Implementations are deterministic and pure; a degraded
// implementation returns the lowercased input unchanged.
type Lemmatizer interface {
	Lemmatize(ctx context.Context, text string, lang string) string
}

// DictionaryStore is the queryable dictionary collection consumed by the
// search service. Implementations apply the prefix predicates and the
// priority ordering; the service owns normalization and pagination math.
type DictionaryStore interface {
	// CountMatches returns the total number of entries matching the terms.
	CountMatches(ctx context.Context, terms SearchTerms) (int, error)

	// ListMatches returns one page of matching entries ordered by
	// (priority ASC, swedish_word ASC), with examples and idioms loaded.
	ListMatches(ctx context.Context, terms SearchTerms, limit, offset int) ([]DictionaryEntry, error)

	// SearchExamples returns example sentences containing the term as a
	// substring in either language, annotated with their headword.
	SearchExamples(ctx context.Context, term string, limit int) ([]ExampleHit, error)
}

// SearchTerms are the derived predicates for one dictionary search: the
// normalized literal query plus a lemma per supported language.
type SearchTerms struct {
	Literal      string
	SwedishLemma string
	EnglishLemma string
}

// UserStore persists learner accounts.
type UserStore interface {
	Create(ctx context.Context, username, passwordHash string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// WordbookStore persists per-user saved words.
type WordbookStore interface {
	ListByUser(ctx context.Context, userID int64) ([]WordbookEntry, error)
	Add(ctx context.Context, userID int64, word, definition string) (*WordbookEntry, error)
	GetByID(ctx context.Context, id int64) (*WordbookEntry, error)
	Delete(ctx context.Context, id int64) error
}
