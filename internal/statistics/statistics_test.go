package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStatistics_Record(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []bool
		want     SessionStatistics
	}{
		{
			name: "no answers",
			want: SessionStatistics{},
		},
		{
			name:     "correct answer increments streak",
			outcomes: []bool{true},
			want:     SessionStatistics{Total: 1, Correct: 1, Streak: 1, BestStreak: 1},
		},
		{
			name:     "incorrect answer resets streak",
			outcomes: []bool{true, true, false},
			want:     SessionStatistics{Total: 3, Correct: 2, Incorrect: 1, Streak: 0, BestStreak: 2},
		},
		{
			name:     "best streak survives a shorter run",
			outcomes: []bool{true, true, true, false, true},
			want:     SessionStatistics{Total: 5, Correct: 4, Incorrect: 1, Streak: 1, BestStreak: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got SessionStatistics
			for _, correct := range tt.outcomes {
				got = got.Record(correct)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Correct+got.Incorrect, got.Total)
		})
	}
}

func TestSessionStatistics_Accuracy(t *testing.T) {
	assert.Equal(t, 0.0, SessionStatistics{}.Accuracy())
	assert.InDelta(t, 75.0, SessionStatistics{Total: 4, Correct: 3, Incorrect: 1}.Accuracy(), 0.001)
}

func TestLearnedKey(t *testing.T) {
	assert.Equal(t, "Rooms-Haus", LearnedKey("Rooms", "Haus"))
	assert.Equal(t, "all-Tisch", LearnedKey("", "Tisch"))
}

func TestCalculateTopicProgress(t *testing.T) {
	learned := map[string]struct{}{
		LearnedKey("Rooms", "Haus"):        {},
		LearnedKey("Rooms", "Küche"):       {},
		LearnedKey("Food", "Brot"):         {},
		LearnedKey("Food-Drinks", "Wasser"): {},
		LearnedKey("", "Tisch"):            {},
	}
	counts := map[string]int{
		"Rooms":       4,
		"Food":        2,
		"Food-Drinks": 1,
		"Animals":     3,
	}

	got := CalculateTopicProgress(learned, counts)
	assert.Equal(t, []TopicProgress{
		{Topic: "Animals", Learned: 0, Total: 3, Percent: 0},
		{Topic: "Food", Learned: 1, Total: 2, Percent: 50},
		{Topic: "Food-Drinks", Learned: 1, Total: 1, Percent: 100},
		{Topic: "Rooms", Learned: 2, Total: 4, Percent: 50},
	}, got)
}

func TestCalculateTopicProgress_Empty(t *testing.T) {
	assert.Empty(t, CalculateTopicProgress(nil, nil))
}
