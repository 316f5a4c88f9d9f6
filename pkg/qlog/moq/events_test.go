package moq

import "testing"

func TestEventNames(t *testing.T) {
	tests := []struct {
		name  string
		event string
	}{
		{"stream created", StreamCreated(StreamTypeSession).Name},
		{"session update", SessionUpdateCreated(1_000_000).Name},
		{"announce", AnnounceCreated(AnnounceActive, [][]string{{"room", "alice"}}).Name},
		{"subscribe", SubscriptionStarted(1, []string{"room", "alice"}, 0, 0, 0, 0).Name},
		{"group", GroupParsed(1, 7).Name},
	}
	want := []string{
		"moq-transfork-03:stream_created",
		"moq-transfork-03:session_update_created",
		"moq-transfork-03:announce_created",
		"moq-transfork-03:subscription_started",
		"moq-transfork-03:group_parsed",
	}
	for i, tt := range tests {
		if tests[i].event != want[i] {
			t.Errorf("%s: got %q, want %q", tt.name, tt.event, want[i])
		}
	}
}

func TestCreatedParsedPairs(t *testing.T) {
	created := FetchCreated([]string{"a"}, 1, 2, 3)
	parsed := FetchParsed([]string{"a"}, 1, 2, 3)

	if created.EventName() != "fetch_created" {
		t.Errorf("created: got %q", created.EventName())
	}
	if parsed.EventName() != "fetch_parsed" {
		t.Errorf("parsed: got %q", parsed.EventName())
	}
	if created.Category() != Schema || parsed.Category() != Schema {
		t.Errorf("category: got %q / %q", created.Category(), parsed.Category())
	}
}

func TestSessionStartedClientNormalizesExtensions(t *testing.T) {
	ev := SessionStartedClient([]uint64{0xff00000a}, nil, 42)

	data, ok := ev.Data.(SessionClient)
	if !ok {
		t.Fatalf("payload type: got %T", ev.Data)
	}
	// Extension IDs serialize as an empty array, never null.
	if data.ExtensionIDs == nil {
		t.Error("extension IDs were not normalized to an empty slice")
	}
	if data.TracingID != 42 {
		t.Errorf("tracing ID: got %d, want 42", data.TracingID)
	}
	if ev.EventName() != "session_started" {
		t.Errorf("event name: got %q", ev.EventName())
	}
}

func TestNewTracingID(t *testing.T) {
	a := NewTracingID()
	b := NewTracingID()
	if a == b {
		t.Error("consecutive tracing IDs are identical")
	}
}
