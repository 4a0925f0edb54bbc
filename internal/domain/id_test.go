package domain

import "testing"

// Derived ids are the first 8 hex chars of md5 over fixed key strings
// and must never change: existing rows key on them.
func TestDerivedIDs(t *testing.T) {
	projectID := ProjectID("acme", "widgets")
	if projectID != "685c5fbf" {
		t.Fatalf("ProjectID = %q, want %q", projectID, "685c5fbf")
	}

	mrID := MergeRequestID(projectID, "add feature")
	if mrID != "96d5f3c9" {
		t.Fatalf("MergeRequestID = %q, want %q", mrID, "96d5f3c9")
	}

	reviewID := ReviewID(mrID, "bob")
	if reviewID != "d3164ffd" {
		t.Fatalf("ReviewID = %q, want %q", reviewID, "d3164ffd")
	}

	pipelineID := PipelineID(projectID, "abc123")
	if pipelineID != "253559e5" {
		t.Fatalf("PipelineID = %q, want %q", pipelineID, "253559e5")
	}
}

func TestDerivedIDsAreDeterministic(t *testing.T) {
	if ProjectID("acme", "widgets") != ProjectID("acme", "widgets") {
		t.Fatal("same inputs must derive the same id")
	}
	if ProjectID("acme", "widgets") == ProjectID("acme", "gadgets") {
		t.Fatal("different names must derive different ids")
	}
}

func TestPipelineStatusIsTerminal(t *testing.T) {
	terminal := []PipelineStatus{PipelinePassed, PipelineFailed, PipelineCancelled}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}

	for _, s := range []PipelineStatus{PipelinePending, PipelineRunning} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}
