package statistics

import (
	"sort"
	"strings"
)

// SessionStatistics accumulates scored answers of a training session.
type SessionStatistics struct {
	Total      int
	Correct    int
	Incorrect  int
	Streak     int
	BestStreak int
}

// Record returns the statistics after one scored answer.
// Unscored submissions (invalid or empty input) must not be recorded.
func (s SessionStatistics) Record(correct bool) SessionStatistics {
	s.Total++
	if correct {
		s.Correct++
		s.Streak++
		s.BestStreak = max(s.BestStreak, s.Streak)
		return s
	}
	s.Incorrect++
	s.Streak = 0
	return s
}

// Accuracy returns the share of correct answers in percent, or 0 without answers.
func (s SessionStatistics) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) * 100 / float64(s.Total)
}

// UntaggedTopic is the learned-key prefix of words without a topic.
const UntaggedTopic = "all"

// LearnedKey returns the key of a word in the learned set.
func LearnedKey(topic, noun string) string {
	if topic == "" {
		topic = UntaggedTopic
	}
	return topic + "-" + noun
}

// TopicProgress holds how many distinct words of a topic were answered correctly.
type TopicProgress struct {
	Topic   string
	Learned int
	Total   int
	Percent int
}

// CalculateTopicProgress computes progress for every topic in counts from the learned set.
// Keys are matched to the longest topic they start with. Results are sorted by topic.
func CalculateTopicProgress(learned map[string]struct{}, counts map[string]int) []TopicProgress {
	topics := make([]string, 0, len(counts))
	for topic := range counts {
		topics = append(topics, topic)
	}
	// Longest first so that "Food-Drinks" wins over "Food".
	sort.Slice(topics, func(i, j int) bool {
		return len(topics[i]) > len(topics[j])
	})

	learnedByTopic := make(map[string]int)
	for key := range learned {
		for _, topic := range topics {
			if strings.HasPrefix(key, topic+"-") {
				learnedByTopic[topic]++
				break
			}
		}
	}

	result := make([]TopicProgress, 0, len(counts))
	for topic, total := range counts {
		n := min(learnedByTopic[topic], total)
		percent := 0
		if total > 0 {
			percent = n * 100 / total
		}
		result = append(result, TopicProgress{
			Topic:   topic,
			Learned: n,
			Total:   total,
			Percent: percent,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Topic < result[j].Topic
	})
	return result
}
