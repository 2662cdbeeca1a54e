package training

import "time"

//go:generate mockgen -source=capability.go -destination=../mocks/training/mock_capability.go -package=mock_training

// Focuser is the answer input of the presentation layer.
type Focuser interface {
	IsFocused() bool
	Focus()
}

// Haptics gives tactile feedback on mobile devices.
type Haptics interface {
	Vibrate(d time.Duration)
}

// HapticPulse is the vibration length for invalid and incorrect answers.
const HapticPulse = 200 * time.Millisecond
