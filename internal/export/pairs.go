package export

import "strings"

// BuildPairs regroups a conversation's turns into prompt/completion training
// pairs. Consecutive user turns merge into a single prompt joined by a blank
// line; each assistant turn closes out the buffered prompt. An assistant turn
// with no buffered user text produces nothing, and trailing user turns with
// no assistant reply are discarded. Every emitted pair has a non-empty prompt
// and completion and carries the conversation title.
func BuildPairs(turns []Turn, title string) []Pair {
	var pairs []Pair
	var buffered []string

	for _, t := range turns {
		if t.Role == RoleUser {
			if t.Text != "" {
				buffered = append(buffered, t.Text)
			}
			continue
		}

		if len(buffered) > 0 && t.Text != "" {
			prompt := strings.Join(buffered, "\n\n")
			if prompt != "" {
				pairs = append(pairs, Pair{
					Prompt:     prompt,
					Completion: t.Text,
					Title:      title,
				})
			}
		}
		buffered = nil
	}

	return pairs
}
