// Package dictionary implements the read-only dictionary store backed by
// PostgreSQL. Matching is prefix-only on the word and definition columns
// plus the precomputed lemma columns; ranking is a three-tier CASE.
package dictionary

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tala-app/backend/internal/adapter/postgres"
	"github.com/tala-app/backend/internal/domain"
)

// Repo provides dictionary lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dictionary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// matchConditions builds the OR of the four prefix predicates. Lemma
// predicates are skipped when the corresponding lemma is empty.
func matchConditions(terms domain.SearchTerms) sq.Or {
	conds := sq.Or{
		sq.Like{"lower(swedish_word)": terms.Literal + "%"},
		sq.Like{"lower(english_def)": terms.Literal + "%"},
	}
	if terms.SwedishLemma != "" {
		conds = append(conds, sq.Like{"swedish_lemma": terms.SwedishLemma + "%"})
	}
	if terms.EnglishLemma != "" {
		conds = append(conds, sq.Like{"english_lemma": terms.EnglishLemma + "%"})
	}
	return conds
}

// countQuery builds the total-match count statement.
func countQuery(terms domain.SearchTerms) sq.SelectBuilder {
	return postgres.Builder.
		Select("COUNT(*)").
		From("dictionary").
		Where(matchConditions(terms))
}

// listQuery builds one page of ranked matches. Exact headword matches rank
// first, exact lemma matches second, remaining prefix matches last. Ties
// within a tier are broken alphabetically by headword.
func listQuery(terms domain.SearchTerms, limit, offset int) sq.SelectBuilder {
	return postgres.Builder.
		Select(
			"id", "swedish_word", "word_class", "english_def",
			"swedish_lemma", "english_lemma",
			"swedish_definition", "english_definition",
			"swedish_explanation", "english_explanation",
			"grammar_notes", "antonyms",
		).
		Column(sq.Expr(
			"CASE WHEN lower(swedish_word) = ? THEN 1 WHEN swedish_lemma = ? THEN 2 ELSE 3 END AS priority",
			terms.Literal, terms.SwedishLemma,
		)).
		From("dictionary").
		Where(matchConditions(terms)).
		OrderBy("priority ASC", "swedish_word ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
}

// CountMatches returns the total number of entries matching the terms.
func (r *Repo) CountMatches(ctx context.Context, terms domain.SearchTerms) (int, error) {
	query, args, err := countQuery(terms).ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "dictionary count")
	}

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "dictionary count")
	}
	return total, nil
}

// ListMatches returns one page of ranked matches with examples and idioms
// attached.
func (r *Repo) ListMatches(ctx context.Context, terms domain.SearchTerms, limit, offset int) ([]domain.DictionaryEntry, error) {
	query, args, err := listQuery(terms, limit, offset).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "dictionary list")
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "dictionary list")
	}
	defer rows.Close()

	var entries []domain.DictionaryEntry
	for rows.Next() {
		var (
			e        domain.DictionaryEntry
			priority int

			wordClass, svLemma, enLemma  pgtype.Text
			svDef, enDef, svExpl, enExpl pgtype.Text
			grammarNotes, antonyms       pgtype.Text
		)
		if err := rows.Scan(
			&e.ID, &e.SwedishWord, &wordClass, &e.EnglishDef,
			&svLemma, &enLemma,
			&svDef, &enDef,
			&svExpl, &enExpl,
			&grammarNotes, &antonyms,
			&priority,
		); err != nil {
			return nil, postgres.MapError(err, "dictionary list")
		}
		e.WordClass = wordClass.String
		e.SwedishLemma = svLemma.String
		e.EnglishLemma = enLemma.String
		e.SwedishDefinition = svDef.String
		e.EnglishDefinition = enDef.String
		e.SwedishExplanation = svExpl.String
		e.EnglishExplanation = enExpl.String
		e.GrammarNotes = grammarNotes.String
		e.Antonyms = antonyms.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "dictionary list")
	}

	if err := r.attachRelated(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// attachRelated loads examples and idioms for all entries in one query per
// table.
func (r *Repo) attachRelated(ctx context.Context, entries []domain.DictionaryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	ids := make([]int64, len(entries))
	byID := make(map[int64]*domain.DictionaryEntry, len(entries))
	for i := range entries {
		ids[i] = entries[i].ID
		byID[entries[i].ID] = &entries[i]
	}

	query, args, err := postgres.Builder.
		Select("dictionary_id", "swedish_sentence", "english_sentence").
		From("examples").
		Where(sq.Eq{"dictionary_id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "dictionary examples")
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "dictionary examples")
	}
	for rows.Next() {
		var (
			parentID int64
			ex       domain.Example
		)
		if err := rows.Scan(&parentID, &ex.SwedishSentence, &ex.EnglishSentence); err != nil {
			rows.Close()
			return postgres.MapError(err, "dictionary examples")
		}
		if e, ok := byID[parentID]; ok {
			e.Examples = append(e.Examples, ex)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return postgres.MapError(err, "dictionary examples")
	}

	query, args, err = postgres.Builder.
		Select("dictionary_id", "swedish_idiom", "english_idiom").
		From("idioms").
		Where(sq.Eq{"dictionary_id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "dictionary idioms")
	}
	rows, err = r.pool.Query(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "dictionary idioms")
	}
	defer rows.Close()
	for rows.Next() {
		var (
			parentID int64
			id       domain.Idiom
		)
		if err := rows.Scan(&parentID, &id.SwedishIdiom, &id.EnglishIdiom); err != nil {
			return postgres.MapError(err, "dictionary idioms")
		}
		if e, ok := byID[parentID]; ok {
			e.Idioms = append(e.Idioms, id)
		}
	}
	return postgres.MapError(rows.Err(), "dictionary idioms")
}

// exampleQuery builds the example-sentence substring search. Sentences
// start capitalized while the term arrives lowercased, so matching is
// case-insensitive.
func exampleQuery(term string, limit int) sq.SelectBuilder {
	return postgres.Builder.
		Select("e.swedish_sentence", "e.english_sentence", "d.swedish_word").
		From("examples e").
		Join("dictionary d ON d.id = e.dictionary_id").
		Where(sq.Or{
			sq.ILike{"e.swedish_sentence": "%" + term + "%"},
			sq.ILike{"e.english_sentence": "%" + term + "%"},
		}).
		Limit(uint64(limit))
}

// SearchExamples returns example sentences containing the term as a
// substring in either language, annotated with their headword.
func (r *Repo) SearchExamples(ctx context.Context, term string, limit int) ([]domain.ExampleHit, error) {
	query, args, err := exampleQuery(term, limit).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "example search")
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "example search")
	}
	defer rows.Close()

	var hits []domain.ExampleHit
	for rows.Next() {
		var h domain.ExampleHit
		if err := rows.Scan(&h.SwedishSentence, &h.EnglishSentence, &h.ParentWord); err != nil {
			return nil, postgres.MapError(err, "example search")
		}
		hits = append(hits, h)
	}
	return hits, postgres.MapError(rows.Err(), "example search")
}
