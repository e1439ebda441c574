package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/mathrush/mathrush-server/internal/ident"
)

const optionCount = 4

// maxPerturbAttempts bounds the random distractor search before falling back
// to deterministic offsets.
const maxPerturbAttempts = 32

// Question is an immutable arithmetic problem presented to a room.
type Question struct {
	ID          string
	TopicID     string
	TopicLabel  string
	TopicSymbol string
	Text        string
	Answer      int
	Options     []int
	Start       time.Time
	Duration    time.Duration
}

// BuildQuestion picks a topic uniformly from allowed (or from all topics when
// allowed is empty), generates a problem, and attaches three distractors in a
// shuffled option set of four distinct values.
func BuildQuestion(r *rand.Rand, allowed []string, now time.Time, duration time.Duration) Question {
	ids := allowed
	if len(ids) == 0 {
		ids = make([]string, 0, len(topics))
		for _, t := range topics {
			ids = append(ids, t.ID)
		}
	}
	topic := topicsByID[ids[r.Intn(len(ids))]]
	p := topic.generate(r)

	options := buildOptions(r, p.Answer, topic.ID)
	r.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Question{
		ID:          ident.New(),
		TopicID:     topic.ID,
		TopicLabel:  topic.Label,
		TopicSymbol: topic.Symbol,
		Text:        p.Text,
		Answer:      p.Answer,
		Options:     options,
		Start:       now,
		Duration:    duration,
	}
}

func buildOptions(r *rand.Rand, answer int, topicID string) []int {
	seen := map[int]struct{}{answer: {}}
	options := []int{answer}

	for attempt := 0; len(options) < optionCount && attempt < maxPerturbAttempts; attempt++ {
		v := perturb(r, answer, topicID)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		options = append(options, v)
	}

	// Adversarial ranges could starve the random search; deterministic
	// offsets always terminate.
	for k := 1; len(options) < optionCount; k++ {
		v := answer + k
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		options = append(options, v)
	}

	return options
}

// perturb produces a plausible wrong answer near the true one.
func perturb(r *rand.Rand, answer int, topicID string) int {
	if topicID == "div" {
		deltas := []int{1, -1, 2, -2}
		delta := deltas[r.Intn(len(deltas))]
		v := answer + delta
		if v <= 0 {
			v = answer + abs(delta) + 1
		}
		return v
	}

	magnitude := int(math.Max(2, math.Round(math.Abs(float64(answer))*0.15)))
	v := answer + r.Intn(magnitude*2+1) - magnitude
	if v == answer {
		sign := 1
		if r.Intn(2) == 0 {
			sign = -1
		}
		v += sign * (magnitude + 1)
	}
	if topicID == "mul" && answer > 20 && r.Float64() < 0.3 {
		if r.Intn(2) == 0 {
			v = answer + 10
		} else {
			v = answer - 10
		}
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
