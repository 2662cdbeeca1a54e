package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/artikel/internal/declension"
	"github.com/at-ishikawa/artikel/internal/dictionary"
	mock_cli "github.com/at-ishikawa/artikel/internal/mocks/cli"
	"github.com/at-ishikawa/artikel/internal/statistics"
	"github.com/at-ishikawa/artikel/internal/training"
)

var tisch = dictionary.Word{
	Noun:         "Tisch",
	Article:      declension.Der,
	Translations: map[string]string{"en": "table"},
	Topic:        "Furniture",
}

func awaiting() training.Snapshot {
	return training.Snapshot{
		State:  training.StateAwaitingInput,
		Word:   tisch,
		Case:   declension.Nominativ,
		Answer: declension.Answer{Canonical: "der", Accepted: []string{"der"}},
	}
}

func feedback(verdict training.Verdict, input string) training.Snapshot {
	s := awaiting()
	s.State = training.StateShowingFeedback
	s.Verdict = verdict
	s.Input = input
	if verdict == training.VerdictCorrect {
		s.CorrectInput = input
	}
	return s
}

func newTestCLI(t *testing.T, stdin string) (*TrainingCLI, *mock_cli.MockTrainer, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	ctrl := gomock.NewController(t)
	trainer := mock_cli.NewMockTrainer(ctrl)
	var stdout bytes.Buffer
	cli := NewTrainingCLI(strings.NewReader(stdin), &stdout)
	cli.Attach(trainer)
	return cli, trainer, &stdout
}

func TestTrainingCLI_Session(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		setupMock  func(trainer *mock_cli.MockTrainer)
		wantReturn error
	}{
		{
			name:       "quit command",
			stdin:      ":q\n",
			wantReturn: errEnd,
		},
		{
			name:       "end of input",
			stdin:      "",
			wantReturn: errEnd,
		},
		{
			name:  "answer is submitted",
			stdin: " Der \n",
			setupMock: func(trainer *mock_cli.MockTrainer) {
				trainer.EXPECT().Snapshot().Return(awaiting())
				gomock.InOrder(
					trainer.EXPECT().UpdateInput("Der"),
					trainer.EXPECT().Submit(training.SourceConfirm).Return(true, true),
				)
			},
		},
		{
			name:  "last line without newline",
			stdin: "die",
			setupMock: func(trainer *mock_cli.MockTrainer) {
				trainer.EXPECT().Snapshot().Return(awaiting())
				trainer.EXPECT().UpdateInput("die")
				trainer.EXPECT().Submit(training.SourceConfirm).Return(false, true)
			},
		},
		{
			name:  "shortcut d is submitted as der",
			stdin: "d\n",
			setupMock: func(trainer *mock_cli.MockTrainer) {
				trainer.EXPECT().Snapshot().Return(awaiting())
				trainer.EXPECT().UpdateInput("der")
				trainer.EXPECT().Submit(training.SourceConfirm).Return(true, true)
			},
		},
		{
			name:  "shortcut I is submitted as die",
			stdin: "I\n",
			setupMock: func(trainer *mock_cli.MockTrainer) {
				trainer.EXPECT().Snapshot().Return(awaiting())
				trainer.EXPECT().UpdateInput("die")
				trainer.EXPECT().Submit(training.SourceConfirm).Return(false, true)
			},
		},
		{
			name:  "shortcut a is submitted as das",
			stdin: "a\n",
			setupMock: func(trainer *mock_cli.MockTrainer) {
				trainer.EXPECT().Snapshot().Return(awaiting())
				trainer.EXPECT().UpdateInput("das")
				trainer.EXPECT().Submit(training.SourceConfirm).Return(false, true)
			},
		},
		{
			name:  "enter on feedback confirms it",
			stdin: "\n",
			setupMock: func(trainer *mock_cli.MockTrainer) {
				trainer.EXPECT().Snapshot().Return(feedback(training.VerdictIncorrect, "die"))
				trainer.EXPECT().Submit(training.SourceConfirm).Return(false, false)
			},
		},
		{
			name:  "enter on invalid feedback is graded again",
			stdin: "\n",
			setupMock: func(trainer *mock_cli.MockTrainer) {
				trainer.EXPECT().Snapshot().Return(feedback(training.VerdictInvalid, "xyz"))
				trainer.EXPECT().UpdateInput("")
				trainer.EXPECT().Submit(training.SourceConfirm).Return(false, false)
			},
		},
		{
			name:  "no word ends the session",
			stdin: "der\n",
			setupMock: func(trainer *mock_cli.MockTrainer) {
				trainer.EXPECT().Snapshot().Return(training.Snapshot{State: training.StateNoWord})
			},
			wantReturn: errEnd,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, trainer, _ := newTestCLI(t, tt.stdin)
			if tt.setupMock != nil {
				tt.setupMock(trainer)
			}

			got := cli.Session(context.Background())
			assert.ErrorIs(t, got, tt.wantReturn)
			if tt.wantReturn == nil {
				assert.NoError(t, got)
			}
		})
	}
}

func TestTrainingCLI_Render(t *testing.T) {
	sentence := declension.Sentence{Case: declension.Dativ, Template: "Ich sitze an {det} {noun}.", Noun: "Tisch"}
	dativ := awaiting()
	dativ.Case = declension.Dativ
	dativ.Sentence = &sentence
	dativ.Answer = declension.Answer{Canonical: "dem", Accepted: []string{"dem"}}
	dativIncorrect := dativ
	dativIncorrect.State = training.StateShowingFeedback
	dativIncorrect.Verdict = training.VerdictIncorrect
	dativIncorrect.Input = "den"

	hiddenTranslation := training.DefaultSettings()
	hiddenTranslation.ShowTranslation = false

	tests := []struct {
		name     string
		snapshot training.Snapshot
		settings *training.Settings
		want     string
	}{
		{
			name:     "noun question with translation",
			snapshot: awaiting(),
			settings: func() *training.Settings { s := training.DefaultSettings(); return &s }(),
			want:     "___ Tisch (table): ",
		},
		{
			name:     "noun question without translation",
			snapshot: awaiting(),
			settings: &hiddenTranslation,
			want:     "___ Tisch: ",
		},
		{
			name:     "sentence question",
			snapshot: dativ,
			settings: &hiddenTranslation,
			want:     "[dativ] Ich sitze an ___ Tisch.: ",
		},
		{
			name:     "correct",
			snapshot: feedback(training.VerdictCorrect, "der"),
			want:     "✅ Correct: der Tisch\n",
		},
		{
			name:     "incorrect noun",
			snapshot: feedback(training.VerdictIncorrect, "die"),
			want:     "❌ Incorrect: der Tisch\nPress Enter to continue.\n",
		},
		{
			name:     "incorrect sentence",
			snapshot: dativIncorrect,
			want:     "❌ Incorrect: Ich sitze an dem Tisch.\nPress Enter to continue.\n",
		},
		{
			name:     "invalid",
			snapshot: feedback(training.VerdictInvalid, "xyz"),
			want:     "\"xyz\" is not an article. Try again.\n",
		},
		{
			name:     "no word",
			snapshot: training.Snapshot{State: training.StateNoWord},
			want:     "No words to practice. Enable another dictionary or clear the topic filter.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, trainer, stdout := newTestCLI(t, "")
			if tt.settings != nil {
				trainer.EXPECT().Settings().Return(*tt.settings)
			}

			cli.Render(tt.snapshot)
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestTrainingCLI_Render_SkipsInputChanges(t *testing.T) {
	cli, trainer, stdout := newTestCLI(t, "")
	trainer.EXPECT().Settings().Return(training.DefaultSettings()).Times(2)

	first := awaiting()
	cli.Render(first)
	typing := first
	typing.Input = "de"
	cli.Render(typing)
	assert.Equal(t, "___ Tisch (table): ", stdout.String())

	cli.Render(feedback(training.VerdictCorrect, "der"))
	next := awaiting()
	next.Word = dictionary.Word{Noun: "Lampe", Article: declension.Die}
	cli.Render(next)
	assert.Equal(t, "___ Tisch (table): ✅ Correct: der Tisch\n___ Lampe: ", stdout.String())
}

func TestTrainingCLI_Run(t *testing.T) {
	cli, trainer, stdout := newTestCLI(t, "der\n:q\n")

	trainer.EXPECT().Settings().Return(training.DefaultSettings()).AnyTimes()
	trainer.EXPECT().Snapshot().Return(awaiting()).Times(2)
	trainer.EXPECT().UpdateInput("der")
	trainer.EXPECT().Submit(training.SourceConfirm).DoAndReturn(func(training.SubmitSource) (bool, bool) {
		cli.Render(feedback(training.VerdictCorrect, "der"))
		return true, true
	})
	trainer.EXPECT().Statistics().Return(statistics.SessionStatistics{}.Record(true))
	trainer.EXPECT().TopicProgress().Return([]statistics.TopicProgress{
		{Topic: "Food", Learned: 0, Total: 3},
		{Topic: "Furniture", Learned: 1, Total: 4, Percent: 25},
	})

	require.NoError(t, cli.Run(context.Background()))

	output := stdout.String()
	assert.Contains(t, output, "___ Tisch (table): ")
	assert.Contains(t, output, "✅ Correct: der Tisch")
	assert.Contains(t, output, "Answered: 1, correct: 1, incorrect: 0, accuracy: 100%, best streak: 1")
	assert.Contains(t, output, "  Furniture: 1/4 (25%)")
	assert.NotContains(t, output, "Food")
}

func TestTrainingCLI_Render_BeforeAttach(t *testing.T) {
	color.NoColor = true
	var stdout bytes.Buffer
	cli := NewTrainingCLI(strings.NewReader(""), &stdout)

	cli.Render(awaiting())
	assert.Empty(t, stdout.String())
}
