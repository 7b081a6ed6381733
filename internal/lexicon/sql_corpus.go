package lexicon

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const linkSimilar = "similar"

type synsetRow struct {
	ID         int64  `db:"synsetid"`
	Name       string `db:"name"`
	POS        string `db:"pos"`
	Definition string `db:"definition"`
}

type similarRow struct {
	SourceID int64  `db:"source_id"`
	Name     string `db:"name"`
}

// SQLCorpus reads synsets from a WordNet SQL database with the tables
// synsets(synsetid, name, pos, definition), senses(synsetid, lang, lemma, sensenum)
// and semlinks(synset1id, synset2id, link).
type SQLCorpus struct {
	db *sqlx.DB
}

func NewSQLCorpus(db *sqlx.DB) *SQLCorpus {
	return &SQLCorpus{db: db}
}

func (c *SQLCorpus) Synsets(ctx context.Context, lemma string, lang string) ([]Synset, error) {
	var rows []synsetRow
	if err := c.db.SelectContext(ctx, &rows,
		`SELECT s.synsetid, s.name, s.pos, s.definition
		FROM senses se JOIN synsets s ON s.synsetid = se.synsetid
		WHERE se.lang = ? AND se.lemma = ?
		ORDER BY se.sensenum, s.synsetid`,
		lang, lemma,
	); err != nil {
		return nil, fmt.Errorf("db.SelectContext(synsets) > %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	similar, err := c.similarTo(ctx, ids)
	if err != nil {
		return nil, err
	}

	synsets := make([]Synset, 0, len(rows))
	for _, row := range rows {
		synsets = append(synsets, Synset{
			Name:       row.Name,
			POS:        row.POS,
			Definition: row.Definition,
			Lemmas:     map[string][]string{lang: {lemma}},
			SimilarTo:  similar[row.ID],
		})
	}
	return synsets, nil
}

func (c *SQLCorpus) similarTo(ctx context.Context, ids []int64) (map[int64][]string, error) {
	query, args, err := sqlx.In(
		`SELECT l.synset1id AS source_id, t.name AS name
		FROM semlinks l JOIN synsets t ON t.synsetid = l.synset2id
		WHERE l.link = ? AND l.synset1id IN (?)
		ORDER BY l.synset1id, t.synsetid`,
		linkSimilar, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlx.In > %w", err)
	}

	var rows []similarRow
	if err := c.db.SelectContext(ctx, &rows, c.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(semlinks) > %w", err)
	}

	result := make(map[int64][]string, len(ids))
	for _, row := range rows {
		result[row.SourceID] = append(result[row.SourceID], row.Name)
	}
	return result, nil
}
