package training

import (
	"context"

	"github.com/at-ishikawa/artikel/internal/dictionary"
)

//go:generate mockgen -source=store.go -destination=../mocks/training/mock_store.go -package=mock_training

// SettingsStore persists training settings on the client.
type SettingsStore interface {
	Load() (Settings, error)
	Save(settings Settings) error
}

// DictionaryStore persists user dictionaries on the client.
type DictionaryStore interface {
	Load(ctx context.Context) ([]dictionary.Dictionary, error)
	Save(ctx context.Context, dictionaries []dictionary.Dictionary) error
}
