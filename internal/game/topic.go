package game

import (
	"fmt"
	"math/rand"
)

// Topic describes one category of arithmetic problems.
type Topic struct {
	ID     string
	Label  string
	Symbol string

	generate func(r *rand.Rand) problem
}

// problem is the raw output of a topic generator before distractors are added.
type problem struct {
	Text   string
	Answer int
}

var topics = []Topic{
	{ID: "add", Label: "Addition", Symbol: "+", generate: genAddition},
	{ID: "sub", Label: "Subtraction", Symbol: "−", generate: genSubtraction},
	{ID: "mul", Label: "Multiplication", Symbol: "×", generate: genMultiplication},
	{ID: "div", Label: "Division", Symbol: "÷", generate: genDivision},
}

var topicsByID = func() map[string]Topic {
	m := make(map[string]Topic, len(topics))
	for _, t := range topics {
		m[t.ID] = t
	}
	return m
}()

// Topics returns all supported topics in presentation order.
func Topics() []Topic {
	return topics
}

// TopicByID looks up a topic by its identifier.
func TopicByID(id string) (Topic, bool) {
	t, ok := topicsByID[id]
	return t, ok
}

// FilterTopicIDs keeps only known topic ids; an empty result means "all topics".
func FilterTopicIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := topicsByID[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// randInt returns a uniform value in [min, max].
func randInt(r *rand.Rand, min, max int) int {
	return min + r.Intn(max-min+1)
}

func genAddition(r *rand.Rand) problem {
	a, b := randInt(r, 2, 99), randInt(r, 2, 99)
	return problem{Text: fmt.Sprintf("%d + %d = ?", a, b), Answer: a + b}
}

func genSubtraction(r *rand.Rand) problem {
	a := randInt(r, 5, 150)
	b := randInt(r, 1, a-1)
	return problem{Text: fmt.Sprintf("%d − %d = ?", a, b), Answer: a - b}
}

func genMultiplication(r *rand.Rand) problem {
	a, b := randInt(r, 2, 12), randInt(r, 2, 12)
	return problem{Text: fmt.Sprintf("%d × %d = ?", a, b), Answer: a * b}
}

func genDivision(r *rand.Rand) problem {
	b := randInt(r, 2, 12)
	a := b * randInt(r, 2, 12)
	return problem{Text: fmt.Sprintf("%d ÷ %d = ?", a, b), Answer: a / b}
}
