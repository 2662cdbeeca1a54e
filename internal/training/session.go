package training

import (
	"maps"
	"math/rand"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/at-ishikawa/artikel/internal/declension"
	"github.com/at-ishikawa/artikel/internal/dictionary"
	"github.com/at-ishikawa/artikel/internal/sequencer"
	"github.com/at-ishikawa/artikel/internal/statistics"
)

// Verdict classifies a submitted answer.
type Verdict string

const (
	VerdictNone      Verdict = ""
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
	VerdictInvalid   Verdict = "invalid"
)

// State is the phase of a session.
type State int

const (
	StateNoWord State = iota
	StateAwaitingInput
	StateShowingFeedback
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting-input"
	case StateShowingFeedback:
		return "showing-feedback"
	}
	return "no-word"
}

// SubmitSource tells an explicit confirm action apart from other submissions,
// such as an input field losing focus or an on-screen key repeat.
type SubmitSource int

const (
	SourceConfirm SubmitSource = iota
	SourceImplicit
)

// Durations are the dwell times of feedback before the session moves on.
type Durations struct {
	Correct         time.Duration
	Incorrect       time.Duration
	IncorrectMobile time.Duration
	Invalid         time.Duration
}

func DefaultDurations() Durations {
	return Durations{
		Correct:         1500 * time.Millisecond,
		Incorrect:       1500 * time.Millisecond,
		IncorrectMobile: 2 * time.Second,
		Invalid:         1500 * time.Millisecond,
	}
}

// Options are the collaborators of a session. Zero values get production defaults.
type Options struct {
	Clock     clockwork.Clock
	Rand      *rand.Rand
	Mobile    bool
	Haptics   Haptics
	Focus     Focuser
	Durations Durations
	// OnChange is called with the new snapshot after every transition,
	// including transitions driven by timers. It runs outside the session lock.
	OnChange func(Snapshot)
}

// Snapshot is a read-only view of the session.
type Snapshot struct {
	State    State
	Word     dictionary.Word
	Case     declension.Case
	Sentence *declension.Sentence
	Input    string
	Verdict  Verdict
	Answer   declension.Answer
	// CorrectInput is the input that produced the last correct verdict.
	CorrectInput string
	Pending      Purpose
	Learned      int
}

// HasWord reports whether a prompt is shown.
func (s Snapshot) HasWord() bool {
	return s.State != StateNoWord
}

// Session is the state machine of a training session.
// Every method is safe to call from timer goroutines and the presentation layer.
type Session struct {
	mu         sync.Mutex
	submitting atomic.Bool

	settings  Settings
	pool      []dictionary.Word
	seq       *sequencer.Sequencer
	sentences *declension.SentenceGenerator
	rng       *rand.Rand
	sched     *scheduler

	mobile    bool
	haptics   Haptics
	focus     Focuser
	durations Durations
	onChange  func(Snapshot)

	word               dictionary.Word
	hasWord            bool
	currentCase        declension.Case
	sentence           *declension.Sentence
	input              string
	verdict            Verdict
	lastIncorrectInput string
	correctInput       string
	wasFocused         bool
	learned            map[string]struct{}
	closed             bool
}

// effects are run after the lock is released.
type effects struct {
	notify   bool
	vibrate  bool
	advanced bool
}

// NewSession starts a session awaiting input on a freshly drawn word.
func NewSession(settings Settings, pool []dictionary.Word, opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Durations == (Durations{}) {
		opts.Durations = DefaultDurations()
	}

	s := &Session{
		settings:  settings.Normalize(),
		pool:      slices.Clone(pool),
		seq:       sequencer.New(opts.Rand),
		sentences: declension.NewSentenceGenerator(opts.Rand),
		rng:       opts.Rand,
		sched:     newScheduler(opts.Clock),
		mobile:    opts.Mobile,
		haptics:   opts.Haptics,
		focus:     opts.Focus,
		durations: opts.Durations,
		onChange:  opts.OnChange,
		learned:   make(map[string]struct{}),
	}
	s.requestNextWordLocked()
	return s
}

// RequestNextWord cancels any pending timer and presents the next word.
func (s *Session) RequestNextWord() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.requestNextWordLocked()
	s.finish(effects{notify: true, advanced: true})
}

// UpdateInput stores the lower-cased, trimmed input.
// A shown invalid verdict is cleared so that the learner can correct it right away.
func (s *Session) UpdateInput(text string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.input = normalizeInput(text)
	if s.verdict == VerdictInvalid {
		s.verdict = VerdictNone
		if s.sched.pending() == PurposeClearInvalid {
			s.sched.cancel()
		}
	}
	s.finish(effects{notify: true})
}

// Submit grades the current input.
// scored is false for submissions that must not count toward statistics:
// invalid input, early advances, ignored resubmissions and re-entrant calls.
func (s *Session) Submit(source SubmitSource) (correct bool, scored bool) {
	if !s.submitting.CompareAndSwap(false, true) {
		return false, false
	}
	defer s.submitting.Store(false)

	s.mu.Lock()
	if s.closed || !s.hasWord {
		s.mu.Unlock()
		return false, false
	}
	if s.focus != nil {
		s.wasFocused = s.focus.IsFocused()
	}

	switch s.sched.pending() {
	case PurposeAdvanceCorrect:
		s.requestNextWordLocked()
		s.finish(effects{notify: true, advanced: true})
		return false, false
	case PurposeAdvanceIncorrect:
		if s.input == s.lastIncorrectInput {
			if source == SourceConfirm && s.input != "" && declension.IsDeterminer(s.input, s.settings.PronounType) {
				s.requestNextWordLocked()
				s.finish(effects{notify: true, advanced: true})
				return false, false
			}
			// Repeating the same wrong answer must not delay the scheduled advance.
			s.mu.Unlock()
			return false, false
		}
		s.sched.cancel()
	case PurposeClearInvalid:
		s.sched.cancel()
	}

	correct, scored = s.gradeLocked()
	s.finish(effects{notify: true, vibrate: !correct})
	return correct, scored
}

func (s *Session) gradeLocked() (correct bool, scored bool) {
	if s.input == "" || !declension.IsDeterminer(s.input, s.settings.PronounType) {
		s.verdict = VerdictInvalid
		s.sched.schedule(s.durations.Invalid, PurposeClearInvalid, s.fire)
		return false, false
	}

	if s.answerLocked().Accepts(s.input) {
		s.verdict = VerdictCorrect
		s.correctInput = s.input
		s.learned[statistics.LearnedKey(s.word.Topic, s.word.Noun)] = struct{}{}
		s.sched.schedule(s.durations.Correct, PurposeAdvanceCorrect, s.fire)
		return true, true
	}

	s.verdict = VerdictIncorrect
	s.lastIncorrectInput = s.input
	s.seq.Requeue(s.word)
	d := s.durations.Incorrect
	if s.mobile {
		d = s.durations.IncorrectMobile
	}
	s.sched.schedule(d, PurposeAdvanceIncorrect, s.fire)
	return false, true
}

// fire runs when a scheduled task expires. Fires of cancelled or replaced tasks are ignored.
func (s *Session) fire(id uint64) {
	s.mu.Lock()
	purpose, ok := s.sched.take(id)
	if !ok || s.closed {
		s.mu.Unlock()
		return
	}

	switch purpose {
	case PurposeClearInvalid:
		if s.verdict == VerdictInvalid {
			s.verdict = VerdictNone
		}
		s.finish(effects{notify: true})
	case PurposeAdvanceCorrect, PurposeAdvanceIncorrect:
		s.requestNextWordLocked()
		s.finish(effects{notify: true, advanced: true})
	default:
		s.mu.Unlock()
	}
}

// Reload replaces settings and pool. A changed pool or a change in what is asked
// discards the current prompt and draws a fresh word. Otherwise the current word
// takes the edited fields of its pool entry and is graded against them.
func (s *Session) Reload(settings Settings, pool []dictionary.Word) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	settings = settings.Normalize()
	changed := !s.hasWord ||
		!s.settings.promptEquals(settings) ||
		sequencer.Fingerprint(s.pool) != sequencer.Fingerprint(pool)

	s.settings = settings
	s.pool = slices.Clone(pool)
	if !changed {
		s.seq.Refresh(s.pool)
		s.refreshWordLocked()
		s.finish(effects{notify: true})
		return
	}
	s.requestNextWordLocked()
	s.finish(effects{notify: true})
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Learned returns a copy of the learned-words set.
func (s *Session) Learned() map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.learned)
}

// Settings returns the normalized settings in use.
func (s *Session) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Close cancels any pending timer. A closed session ignores further calls.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sched.cancel()
	s.closed = true
}

func (s *Session) requestNextWordLocked() {
	s.sched.cancel()
	s.input = ""
	s.verdict = VerdictNone
	s.lastIncorrectInput = ""
	s.correctInput = ""
	s.sentence = nil

	word, ok := s.seq.Next(s.pool)
	s.word = word
	s.hasWord = ok
	if !ok {
		s.currentCase = ""
		return
	}

	s.currentCase = declension.Nominativ
	if s.settings.Mode != ModeSentence {
		return
	}
	if len(s.settings.Cases) > 0 {
		s.currentCase = s.settings.Cases[s.rng.Intn(len(s.settings.Cases))]
	}
	sentence := s.sentences.Generate(word.Noun, word.Genitive, s.currentCase,
		s.settings.PronounType == declension.PronounPersonal)
	s.sentence = &sentence
}

// refreshWordLocked swaps the current word for the pool entry with the same key.
func (s *Session) refreshWordLocked() {
	key := s.word.Key()
	for _, w := range s.pool {
		if w.Key() != key {
			continue
		}
		genitiveChanged := w.Genitive != s.word.Genitive
		s.word = w
		if genitiveChanged && s.sentence != nil {
			sentence := s.sentences.Generate(w.Noun, w.Genitive, s.currentCase,
				s.settings.PronounType == declension.PronounPersonal)
			s.sentence = &sentence
		}
		return
	}
}

func (s *Session) answerLocked() declension.Answer {
	return declension.ResolveWord(s.word.Articles(), s.currentCase, s.settings.ArticleType, s.settings.PronounType)
}

func (s *Session) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		State:        StateNoWord,
		Input:        s.input,
		Verdict:      s.verdict,
		CorrectInput: s.correctInput,
		Pending:      s.sched.pending(),
		Learned:      len(s.learned),
	}
	if !s.hasWord {
		return snapshot
	}

	snapshot.State = StateAwaitingInput
	if s.verdict != VerdictNone {
		snapshot.State = StateShowingFeedback
	}
	snapshot.Word = s.word
	snapshot.Case = s.currentCase
	snapshot.Answer = s.answerLocked()
	if s.sentence != nil {
		sentence := *s.sentence
		snapshot.Sentence = &sentence
	}
	return snapshot
}

// finish releases the lock and runs side effects on the presentation layer.
func (s *Session) finish(fx effects) {
	snapshot := s.snapshotLocked()
	wasFocused := s.wasFocused
	s.mu.Unlock()

	if fx.vibrate && s.mobile && s.haptics != nil &&
		(snapshot.Verdict == VerdictInvalid || snapshot.Verdict == VerdictIncorrect) {
		s.haptics.Vibrate(HapticPulse)
	}
	if fx.advanced {
		s.restoreFocus(wasFocused)
	}
	if fx.notify && s.onChange != nil {
		s.onChange(snapshot)
	}
}

// restoreFocus puts the cursor back into the answer input after advancing.
// On mobile the input is only refocused when it had focus, to keep the keyboard closed.
func (s *Session) restoreFocus(wasFocused bool) {
	if s.focus == nil {
		return
	}
	if s.mobile && !wasFocused {
		return
	}
	if !s.focus.IsFocused() {
		s.focus.Focus()
	}
}

func normalizeInput(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
