package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/at-ishikawa/artikel/internal/declension"
	"github.com/at-ishikawa/artikel/internal/statistics"
	"github.com/at-ishikawa/artikel/internal/training"
)

const quitCommand = ":q"

var errEnd = errors.New("end")

// shortcuts are single-key answers for the definite nominative articles.
var shortcuts = map[string]declension.Article{
	"d": declension.Der,
	"i": declension.Die,
	"a": declension.Das,
}

//go:generate mockgen -source=training_cli.go -destination=../mocks/cli/mock_trainer.go -package=mock_cli Trainer

// Trainer is the training session as seen by the terminal.
type Trainer interface {
	Snapshot() training.Snapshot
	Settings() training.Settings
	UpdateInput(text string)
	Submit(source training.SubmitSource) (correct bool, scored bool)
	Statistics() statistics.SessionStatistics
	TopicProgress() []statistics.TopicProgress
}

// renderKey identifies what is on screen. Input changes alone do not redraw.
type renderKey struct {
	state   training.State
	verdict training.Verdict
	word    string
	prompt  string
}

// TrainingCLI drives a Trainer from stdin and renders its snapshots.
// Render is called from timer goroutines as well as from Run.
type TrainingCLI struct {
	trainer      Trainer
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer

	mu       sync.Mutex
	rendered bool
	last     renderKey

	bold      *color.Color
	italic    *color.Color
	correct   *color.Color
	incorrect *color.Color
	hint      *color.Color
}

func NewTrainingCLI(stdin io.Reader, stdout io.Writer) *TrainingCLI {
	return &TrainingCLI{
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		correct:      color.New(color.FgGreen),
		incorrect:    color.New(color.FgRed),
		hint:         color.New(color.FgYellow),
	}
}

// Attach sets the trainer. The trainer is usually created with Render as its change callback,
// so snapshots rendered before Attach are dropped.
func (cli *TrainingCLI) Attach(trainer Trainer) {
	cli.mu.Lock()
	defer cli.mu.Unlock()
	cli.trainer = trainer
}

// Run reads answers until :q, end of input or an interrupt, then prints the statistics.
func (cli *TrainingCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	_, _ = fmt.Fprintf(cli.stdoutWriter, "Type der, die or das (or d, i, a) and press Enter. Type %s to quit.\n", quitCommand)
	cli.Render(cli.trainer.Snapshot())

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := cli.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			runErr = fmt.Errorf("error: %w", err)
		}
	}
	cli.printSummary()
	return runErr
}

// Session handles one line of input.
func (cli *TrainingCLI) Session(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errEnd
	}

	line, err := cli.stdinReader.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return errEnd
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error reading input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == quitCommand {
		return errEnd
	}

	snapshot := cli.trainer.Snapshot()
	if !snapshot.HasWord() {
		return errEnd
	}
	// Enter on shown feedback confirms it and moves on.
	if snapshot.State == training.StateShowingFeedback && snapshot.Verdict != training.VerdictInvalid && line == "" {
		_, _ = cli.trainer.Submit(training.SourceConfirm)
		return nil
	}

	if article, ok := shortcuts[strings.ToLower(line)]; ok {
		line = string(article)
	}
	cli.trainer.UpdateInput(line)
	_, _ = cli.trainer.Submit(training.SourceConfirm)
	return nil
}

// Render prints the snapshot when what is shown has changed.
func (cli *TrainingCLI) Render(snapshot training.Snapshot) {
	key := renderKey{
		state:   snapshot.State,
		verdict: snapshot.Verdict,
		word:    snapshot.Word.Key().String(),
		prompt:  string(snapshot.Case),
	}
	if snapshot.Sentence != nil {
		key.prompt = snapshot.Sentence.Prompt()
	}

	cli.mu.Lock()
	defer cli.mu.Unlock()
	if cli.trainer == nil {
		return
	}
	if cli.rendered && key == cli.last {
		return
	}
	cli.rendered = true
	cli.last = key

	w := cli.stdoutWriter
	switch {
	case snapshot.State == training.StateNoWord:
		_, _ = fmt.Fprintln(w, "No words to practice. Enable another dictionary or clear the topic filter.")
	case snapshot.Verdict == training.VerdictNone:
		cli.printQuestion(snapshot)
	case snapshot.Verdict == training.VerdictInvalid:
		_, _ = cli.hint.Fprintf(w, "%q is not an article. Try again.\n", snapshot.Input)
	case snapshot.Verdict == training.VerdictCorrect:
		_, _ = fmt.Fprint(w, "✅ ")
		_, _ = cli.correct.Fprintf(w, "Correct: %s\n", solution(snapshot, snapshot.CorrectInput))
	case snapshot.Verdict == training.VerdictIncorrect:
		_, _ = fmt.Fprint(w, "❌ ")
		_, _ = cli.incorrect.Fprintf(w, "Incorrect: %s\n", solution(snapshot, snapshot.Answer.Canonical))
		_, _ = fmt.Fprintln(w, "Press Enter to continue.")
	}
}

func (cli *TrainingCLI) printQuestion(snapshot training.Snapshot) {
	w := cli.stdoutWriter
	if snapshot.Sentence != nil {
		_, _ = cli.italic.Fprintf(w, "[%s] ", snapshot.Case)
		_, _ = fmt.Fprint(w, snapshot.Sentence.Prompt())
	} else {
		_, _ = fmt.Fprintf(w, "%s ", declension.Blank)
		_, _ = cli.bold.Fprint(w, snapshot.Word.Noun)
	}

	settings := cli.trainer.Settings()
	if translation := snapshot.Word.Translation(settings.TranslationLanguage); settings.ShowTranslation && translation != "" {
		_, _ = cli.italic.Fprintf(w, " (%s)", translation)
	}
	_, _ = fmt.Fprint(w, ": ")
}

func (cli *TrainingCLI) printSummary() {
	w := cli.stdoutWriter
	stats := cli.trainer.Statistics()
	_, _ = fmt.Fprintln(w)
	_, _ = cli.bold.Fprintln(w, "Statistics")
	_, _ = fmt.Fprintf(w, "Answered: %d, correct: %d, incorrect: %d, accuracy: %.0f%%, best streak: %d\n",
		stats.Total, stats.Correct, stats.Incorrect, stats.Accuracy(), stats.BestStreak)

	for _, progress := range cli.trainer.TopicProgress() {
		if progress.Learned == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s: %d/%d (%d%%)\n", progress.Topic, progress.Learned, progress.Total, progress.Percent)
	}
}

// solution renders the prompt filled with determiner.
func solution(snapshot training.Snapshot, determiner string) string {
	if snapshot.Sentence != nil {
		return snapshot.Sentence.Fill(determiner)
	}
	return determiner + " " + snapshot.Word.Noun
}
