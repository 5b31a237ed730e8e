package export

import "testing"

func TestBuildPairs_SingleExchange(t *testing.T) {
	turns := []Turn{
		{Role: RoleUser, Text: "Hi"},
		{Role: RoleAssistant, Text: "Hello!"},
	}

	pairs := BuildPairs(turns, "Greeting")
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	p := pairs[0]
	if p.Prompt != "Hi" || p.Completion != "Hello!" || p.Title != "Greeting" {
		t.Errorf("pair = %+v", p)
	}
}

func TestBuildPairs_MergesConsecutiveUserTurns(t *testing.T) {
	turns := []Turn{
		{Role: RoleUser, Text: "Part 1"},
		{Role: RoleUser, Text: "Part 2"},
		{Role: RoleAssistant, Text: "OK"},
	}

	pairs := BuildPairs(turns, "t")
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Prompt != "Part 1\n\nPart 2" {
		t.Errorf("prompt = %q, want merged user turns", pairs[0].Prompt)
	}
	if pairs[0].Completion != "OK" {
		t.Errorf("completion = %q", pairs[0].Completion)
	}
}

func TestBuildPairs_DiscardsTrailingUserTurns(t *testing.T) {
	turns := []Turn{
		{Role: RoleUser, Text: "Question"},
		{Role: RoleAssistant, Text: "Answer"},
		{Role: RoleUser, Text: "Follow-up with no reply"},
	}

	pairs := BuildPairs(turns, "t")
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Prompt != "Question" {
		t.Errorf("prompt = %q", pairs[0].Prompt)
	}
}

func TestBuildPairs_AssistantWithoutUserDropped(t *testing.T) {
	turns := []Turn{
		{Role: RoleAssistant, Text: "Unprompted greeting"},
		{Role: RoleUser, Text: "Hi"},
		{Role: RoleAssistant, Text: "Hello"},
	}

	pairs := BuildPairs(turns, "t")
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Completion != "Hello" {
		t.Errorf("completion = %q", pairs[0].Completion)
	}
}

func TestBuildPairs_AssistantClearsBufferEvenWithoutEmit(t *testing.T) {
	// The first assistant turn pairs with the first user turn; the second
	// assistant turn arrives with an empty buffer and produces nothing.
	turns := []Turn{
		{Role: RoleUser, Text: "A"},
		{Role: RoleAssistant, Text: "B"},
		{Role: RoleAssistant, Text: "C"},
		{Role: RoleUser, Text: "D"},
		{Role: RoleAssistant, Text: "E"},
	}

	pairs := BuildPairs(turns, "t")
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[1].Prompt != "D" || pairs[1].Completion != "E" {
		t.Errorf("pair[1] = %+v", pairs[1])
	}
}

func TestBuildPairs_NonEmptyGuarantee(t *testing.T) {
	turns := []Turn{
		{Role: RoleUser, Text: "A"},
		{Role: RoleAssistant, Text: "B"},
		{Role: RoleUser, Text: "C"},
		{Role: RoleAssistant, Text: "D"},
	}

	for _, p := range BuildPairs(turns, "t") {
		if p.Prompt == "" || p.Completion == "" {
			t.Errorf("pair with empty field: %+v", p)
		}
	}
}

func TestBuildPairs_Empty(t *testing.T) {
	if pairs := BuildPairs(nil, "t"); len(pairs) != 0 {
		t.Errorf("expected no pairs for no turns, got %d", len(pairs))
	}
}
