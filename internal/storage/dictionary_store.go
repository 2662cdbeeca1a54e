package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/at-ishikawa/artikel/internal/dictionary"
)

const userDictionariesKey = "user_dictionaries"

// DictionaryStore keeps the user dictionaries as one JSON document in a KVStore.
type DictionaryStore struct {
	kv *KVStore
}

func NewDictionaryStore(kv *KVStore) *DictionaryStore {
	return &DictionaryStore{kv: kv}
}

// Load returns the stored user dictionaries. Nothing stored yet is not an error.
func (s *DictionaryStore) Load(ctx context.Context) ([]dictionary.Dictionary, error) {
	value, err := s.kv.Get(ctx, userDictionariesKey)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var dictionaries []dictionary.Dictionary
	if err := json.Unmarshal([]byte(value), &dictionaries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", userDictionariesKey, err)
	}
	return dictionaries, nil
}

func (s *DictionaryStore) Save(ctx context.Context, dictionaries []dictionary.Dictionary) error {
	if dictionaries == nil {
		dictionaries = []dictionary.Dictionary{}
	}
	value, err := json.Marshal(dictionaries)
	if err != nil {
		return fmt.Errorf("json.Marshal(%s) > %w", userDictionariesKey, err)
	}
	return s.kv.Set(ctx, userDictionariesKey, string(value))
}
