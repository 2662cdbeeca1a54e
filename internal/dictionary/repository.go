package dictionary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/artikel/internal/declension"
)

//go:generate mockgen -source=repository.go -destination=../mocks/dictionary/mock_repository.go -package=mock_dictionary Repository

// Repository stores user dictionaries remotely.
type Repository interface {
	Create(ctx context.Context, d *Dictionary) error
	FindByID(ctx context.Context, id string) (*Dictionary, error)
	Update(ctx context.Context, id string, update Update) error
}

// Update is a partial update of a user dictionary. Nil fields are left unchanged.
// A non-nil Words replaces every stored word of the dictionary.
type Update struct {
	Name     *string
	IsPublic *bool
	Words    []Word
}

type dictionaryRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	IsPublic  bool      `db:"is_public"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type wordRow struct {
	Noun                string         `db:"noun"`
	Article             string         `db:"article"`
	AlternativeArticles sql.NullString `db:"alternative_articles"`
	TranslationEN       string         `db:"translation_en"`
	TranslationRU       string         `db:"translation_ru"`
	TranslationUK       string         `db:"translation_uk"`
	ExampleSentence     string         `db:"example_sentence"`
	Level               string         `db:"level"`
	Topic               string         `db:"topic"`
	AudioURL            string         `db:"audio_url"`
	Genitive            string         `db:"genitive"`
}

var wordColumns = []string{
	"dictionary_id", "position", "noun", "article", "alternative_articles",
	"translation_en", "translation_ru", "translation_uk",
	"example_sentence", "level", "topic", "audio_url", "genitive",
}

func toWordRow(w Word) (wordRow, error) {
	row := wordRow{
		Noun:            w.Noun,
		Article:         string(w.Article),
		TranslationEN:   w.Translations[LanguageEnglish],
		TranslationRU:   w.Translations[LanguageRussian],
		TranslationUK:   w.Translations[LanguageUkrainian],
		ExampleSentence: w.ExampleSentence,
		Level:           w.Level,
		Topic:           w.Topic,
		AudioURL:        w.AudioURL,
		Genitive:        w.Genitive,
	}
	if len(w.AlternativeArticles) > 0 {
		encoded, err := json.Marshal(w.AlternativeArticles)
		if err != nil {
			return wordRow{}, fmt.Errorf("json.Marshal(alternative_articles) > %w", err)
		}
		row.AlternativeArticles = sql.NullString{String: string(encoded), Valid: true}
	}
	return row, nil
}

func (row wordRow) toWord() (Word, error) {
	w := Word{
		Noun:            row.Noun,
		Article:         declension.Article(row.Article),
		ExampleSentence: row.ExampleSentence,
		Level:           row.Level,
		Topic:           row.Topic,
		AudioURL:        row.AudioURL,
		Genitive:        row.Genitive,
	}
	if row.AlternativeArticles.Valid && row.AlternativeArticles.String != "" {
		if err := json.Unmarshal([]byte(row.AlternativeArticles.String), &w.AlternativeArticles); err != nil {
			return Word{}, fmt.Errorf("json.Unmarshal(alternative_articles) > %w", err)
		}
	}
	for language, translation := range map[string]string{
		LanguageEnglish:   row.TranslationEN,
		LanguageRussian:   row.TranslationRU,
		LanguageUkrainian: row.TranslationUK,
	} {
		if translation == "" {
			continue
		}
		if w.Translations == nil {
			w.Translations = make(map[string]string)
		}
		w.Translations[language] = translation
	}
	return w, nil
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{
		db: db,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Create assigns an id and creation time and stores the dictionary with its words.
func (r *DBRepository) Create(ctx context.Context, d *Dictionary) error {
	if err := d.Validate(); err != nil {
		return err
	}

	now := r.now()
	id := uuid.NewString()

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO user_dictionaries (id, name, is_public, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			id, d.Name, d.IsPublic, now, now); err != nil {
			return fmt.Errorf("tx.ExecContext(insert user_dictionary) > %w", err)
		}
		return insertWords(ctx, tx, id, d.Words)
	})
	if err != nil {
		return err
	}

	d.ID = id
	d.CreatedAt = now
	d.UpdatedAt = now
	return nil
}

// FindByID returns the dictionary with its words in their stored order, or ErrNotFound.
func (r *DBRepository) FindByID(ctx context.Context, id string) (*Dictionary, error) {
	var row dictionaryRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, name, is_public, created_at, updated_at FROM user_dictionaries WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(user_dictionary) > %w", err)
	}

	var rows []wordRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT noun, article, alternative_articles, translation_en, translation_ru, translation_uk,
		example_sentence, level, topic, audio_url, genitive
		FROM user_dictionary_words WHERE dictionary_id = ? ORDER BY position`, id); err != nil {
		return nil, fmt.Errorf("db.SelectContext(user_dictionary_words) > %w", err)
	}

	words := make([]Word, 0, len(rows))
	for _, wr := range rows {
		w, err := wr.toWord()
		if err != nil {
			return nil, fmt.Errorf("word %s > %w", wr.Noun, err)
		}
		words = append(words, w)
	}

	return &Dictionary{
		ID:        row.ID,
		Name:      row.Name,
		IsPublic:  row.IsPublic,
		Words:     words,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// Update applies a partial update. Replacing words deletes every previous word first.
func (r *DBRepository) Update(ctx context.Context, id string, update Update) error {
	if update.Name != nil && *update.Name == "" {
		return ErrEmptyName
	}
	if update.Words != nil {
		if err := ValidateWords(update.Words); err != nil {
			return err
		}
	}

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		var found string
		err := tx.GetContext(ctx, &found, "SELECT id FROM user_dictionaries WHERE id = ? FOR UPDATE", id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("tx.GetContext(user_dictionary) > %w", err)
		}

		builder := sq.Update("user_dictionaries")
		if update.Name != nil {
			builder = builder.Set("name", *update.Name)
		}
		if update.IsPublic != nil {
			builder = builder.Set("is_public", *update.IsPublic)
		}
		query, args, err := builder.
			Set("updated_at", r.now()).
			Where(sq.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("builder.ToSql(update user_dictionary) > %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("tx.ExecContext(update user_dictionary) > %w", err)
		}

		if update.Words == nil {
			return nil
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM user_dictionary_words WHERE dictionary_id = ?", id); err != nil {
			return fmt.Errorf("tx.ExecContext(delete user_dictionary_words) > %w", err)
		}
		return insertWords(ctx, tx, id, update.Words)
	})
}

func insertWords(ctx context.Context, tx *sqlx.Tx, dictionaryID string, words []Word) error {
	builder := sq.Insert("user_dictionary_words").Columns(wordColumns...)
	for i, w := range words {
		row, err := toWordRow(w)
		if err != nil {
			return fmt.Errorf("word %s > %w", w.Noun, err)
		}
		builder = builder.Values(
			dictionaryID, i, row.Noun, row.Article, row.AlternativeArticles,
			row.TranslationEN, row.TranslationRU, row.TranslationUK,
			row.ExampleSentence, row.Level, row.Topic, row.AudioURL, row.Genitive,
		)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("builder.ToSql(insert user_dictionary_words) > %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("tx.ExecContext(insert user_dictionary_words) > %w", err)
	}
	return nil
}

func (r *DBRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
