package training

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/artikel/internal/dictionary"
	"github.com/at-ishikawa/artikel/internal/statistics"
)

// Workspace hosts a session together with the settings and user dictionaries it draws from.
// The word pool is recomputed on every change. Storage failures are logged and the
// workspace keeps working on its in-memory state.
type Workspace struct {
	mu               sync.Mutex
	reloadMu         sync.Mutex
	builder          *dictionary.PoolBuilder
	settingsStore    SettingsStore
	dictionaryStore  DictionaryStore
	settings         Settings
	userDictionaries []dictionary.Dictionary
	stats            statistics.SessionStatistics
	session          *Session
	now              func() time.Time
}

// NewWorkspace loads persisted settings and user dictionaries and starts a session.
func NewWorkspace(
	ctx context.Context,
	builder *dictionary.PoolBuilder,
	settingsStore SettingsStore,
	dictionaryStore DictionaryStore,
	opts Options,
) *Workspace {
	w := &Workspace{
		builder:         builder,
		settingsStore:   settingsStore,
		dictionaryStore: dictionaryStore,
		settings:        DefaultSettings(),
		now:             time.Now,
	}

	if settings, err := settingsStore.Load(); err != nil {
		slog.Default().Warn("failed to load settings, using defaults", slog.Any("error", err))
	} else {
		w.settings = settings.Normalize()
	}
	if dictionaries, err := dictionaryStore.Load(ctx); err != nil {
		slog.Default().Warn("failed to load user dictionaries", slog.Any("error", err))
	} else {
		w.userDictionaries = dictionaries
	}

	settings, pool := w.resolveLocked()
	w.session = NewSession(settings, pool, opts)
	return w
}

func (w *Workspace) Session() *Session {
	return w.session
}

func (w *Workspace) Settings() Settings {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.settings
}

// UpdateSettings applies and persists new settings and reloads the session.
func (w *Workspace) UpdateSettings(settings Settings) {
	w.mu.Lock()
	w.settings = settings.Normalize()
	w.saveSettingsLocked()
	w.mu.Unlock()

	w.reload()
}

// reload pushes the latest settings and pool to the session.
// Reloads are serialized and each one resolves the state current at the time it runs,
// so the last reload to finish always reflects the last mutation.
func (w *Workspace) reload() {
	w.reloadMu.Lock()
	defer w.reloadMu.Unlock()

	w.mu.Lock()
	settings, pool := w.resolveLocked()
	w.mu.Unlock()

	w.session.Reload(settings, pool)
}

// ResetSettings restores the default settings.
func (w *Workspace) ResetSettings() {
	w.UpdateSettings(DefaultSettings())
}

// Dictionaries returns the built-in dictionaries followed by the user dictionaries.
// Enabled reflects whether a dictionary contributes to the pool.
func (w *Workspace) Dictionaries() []dictionary.Dictionary {
	w.mu.Lock()
	defer w.mu.Unlock()

	var result []dictionary.Dictionary
	for _, d := range w.builder.Builtin() {
		d.Enabled = slices.Contains(w.settings.EnabledDictionaries, d.ID)
		result = append(result, d)
	}
	for _, d := range w.userDictionaries {
		d.Enabled = d.Enabled && slices.Contains(w.settings.EnabledDictionaries, d.ID)
		result = append(result, d)
	}
	return result
}

// Dictionary returns a built-in or user dictionary by id.
func (w *Workspace) Dictionary(id string) (dictionary.Dictionary, error) {
	for _, d := range w.Dictionaries() {
		if d.ID == id {
			return d, nil
		}
	}
	return dictionary.Dictionary{}, dictionary.ErrNotFound
}

// SaveDictionary stores a user dictionary. A dictionary without an id is created and enabled;
// one with an id replaces the stored dictionary with that id.
func (w *Workspace) SaveDictionary(ctx context.Context, d dictionary.Dictionary) (dictionary.Dictionary, error) {
	if err := d.Validate(); err != nil {
		return dictionary.Dictionary{}, err
	}

	w.mu.Lock()
	if w.isBuiltinLocked(d.ID) {
		w.mu.Unlock()
		return dictionary.Dictionary{}, dictionary.ErrReadOnly
	}

	now := w.now()
	d.Builtin = false
	if d.ID == "" {
		d.ID = uuid.NewString()
		d.Enabled = true
		d.CreatedAt = now
		d.UpdatedAt = now
		w.userDictionaries = append(w.userDictionaries, d)
		w.settings.EnabledDictionaries = append(w.settings.EnabledDictionaries, d.ID)
		w.saveSettingsLocked()
	} else {
		i := w.userIndexLocked(d.ID)
		if i < 0 {
			// Dictionaries pulled from the server keep their remote id.
			d.CreatedAt = now
			d.UpdatedAt = now
			w.userDictionaries = append(w.userDictionaries, d)
		} else {
			d.CreatedAt = w.userDictionaries[i].CreatedAt
			d.UpdatedAt = now
			w.userDictionaries[i] = d
		}
	}
	w.saveDictionariesLocked(ctx)
	w.mu.Unlock()

	w.reload()
	return d, nil
}

// SetDictionaryEnabled switches a dictionary on or off.
func (w *Workspace) SetDictionaryEnabled(ctx context.Context, id string, enabled bool) error {
	w.mu.Lock()
	builtin := w.isBuiltinLocked(id)
	i := w.userIndexLocked(id)
	if !builtin && i < 0 {
		w.mu.Unlock()
		return dictionary.ErrNotFound
	}

	ids := slices.DeleteFunc(slices.Clone(w.settings.EnabledDictionaries), func(s string) bool {
		return s == id
	})
	if enabled {
		ids = append(ids, id)
	}
	w.settings.EnabledDictionaries = ids
	if i >= 0 {
		w.userDictionaries[i].Enabled = enabled
		w.saveDictionariesLocked(ctx)
	}
	w.saveSettingsLocked()
	w.mu.Unlock()

	w.reload()
	return nil
}

// DeleteDictionary removes a user dictionary.
func (w *Workspace) DeleteDictionary(ctx context.Context, id string) error {
	w.mu.Lock()
	if w.isBuiltinLocked(id) {
		w.mu.Unlock()
		return dictionary.ErrReadOnly
	}
	i := w.userIndexLocked(id)
	if i < 0 {
		w.mu.Unlock()
		return dictionary.ErrNotFound
	}

	w.userDictionaries = slices.Delete(w.userDictionaries, i, i+1)
	w.settings.EnabledDictionaries = slices.DeleteFunc(w.settings.EnabledDictionaries, func(s string) bool {
		return s == id
	})
	w.saveDictionariesLocked(ctx)
	w.saveSettingsLocked()
	w.mu.Unlock()

	w.reload()
	return nil
}

func (w *Workspace) Snapshot() Snapshot {
	return w.session.Snapshot()
}

func (w *Workspace) UpdateInput(text string) {
	w.session.UpdateInput(text)
}

// Submit grades the current input and records scored outcomes.
func (w *Workspace) Submit(source SubmitSource) (correct bool, scored bool) {
	correct, scored = w.session.Submit(source)
	if !scored {
		return correct, scored
	}

	w.mu.Lock()
	w.stats = w.stats.Record(correct)
	w.mu.Unlock()
	return correct, scored
}

func (w *Workspace) Statistics() statistics.SessionStatistics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Topics returns every topic across built-in and user dictionaries.
func (w *Workspace) Topics() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.builder.Topics(w.userDictionaries)
}

// TopicCounts returns the number of words per topic in the enabled dictionaries.
func (w *Workspace) TopicCounts() map[string]int {
	w.mu.Lock()
	defer w.mu.Unlock()
	ids := w.builder.EffectiveEnabledIDs(w.settings.EnabledDictionaries, w.userDictionaries)
	return w.builder.TopicCounts(ids, w.userDictionaries)
}

// TopicProgress returns the share of learned words per topic.
// With a topic filter only the selected topics are reported.
func (w *Workspace) TopicProgress() []statistics.TopicProgress {
	w.mu.Lock()
	ids := w.builder.EffectiveEnabledIDs(w.settings.EnabledDictionaries, w.userDictionaries)
	var counts map[string]int
	if len(w.settings.Topics) == 0 {
		counts = w.builder.TopicCounts(ids, w.userDictionaries)
	} else {
		counts = make(map[string]int)
		for _, word := range w.builder.TopicPool(ids, w.settings.Topics, w.userDictionaries) {
			counts[word.Topic]++
		}
	}
	w.mu.Unlock()

	return statistics.CalculateTopicProgress(w.session.Learned(), counts)
}

// Close stops the session timers.
func (w *Workspace) Close() {
	w.session.Close()
}

// resolveLocked computes the pool, falling back to the default dictionaries
// when the enabled ones contain no words.
func (w *Workspace) resolveLocked() (Settings, []dictionary.Word) {
	ids := w.builder.EffectiveEnabledIDs(w.settings.EnabledDictionaries, w.userDictionaries)
	if !slices.Equal(ids, w.settings.EnabledDictionaries) {
		slog.Default().Info("enabled dictionaries have no words, falling back to defaults",
			slog.Any("enabled", w.settings.EnabledDictionaries),
			slog.Any("fallback", ids),
		)
		w.settings.EnabledDictionaries = ids
		w.saveSettingsLocked()
	}
	return w.settings, w.builder.Pool(ids, w.settings.Topics, w.userDictionaries)
}

func (w *Workspace) saveSettingsLocked() {
	if err := w.settingsStore.Save(w.settings); err != nil {
		slog.Default().Warn("failed to save settings", slog.Any("error", err))
	}
}

func (w *Workspace) saveDictionariesLocked(ctx context.Context) {
	if err := w.dictionaryStore.Save(ctx, slices.Clone(w.userDictionaries)); err != nil {
		slog.Default().Warn("failed to save user dictionaries", slog.Any("error", err))
	}
}

func (w *Workspace) isBuiltinLocked(id string) bool {
	return slices.ContainsFunc(w.builder.Builtin(), func(d dictionary.Dictionary) bool {
		return d.ID == id
	})
}

func (w *Workspace) userIndexLocked(id string) int {
	return slices.IndexFunc(w.userDictionaries, func(d dictionary.Dictionary) bool {
		return d.ID == id
	})
}

