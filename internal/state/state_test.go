package state

import "testing"

func TestOnNewResultResetsVisibleSet(t *testing.T) {
	s := New()
	s.OnNewResult([]string{"personA", "personB"})
	s.ToggleVisibility("personB") // hide B

	// A new result with a different person set discards toggle history.
	s.OnNewResult([]string{"personA", "personC"})

	if !s.Visible("personA") {
		t.Error("personA should be visible after new result")
	}
	if !s.Visible("personC") {
		t.Error("personC should be visible after new result")
	}
	if s.Visible("personB") {
		t.Error("personB should be gone after new result")
	}
	if s.VisibleCount() != 2 {
		t.Errorf("visible count %d, want 2", s.VisibleCount())
	}
}

func TestModeFlagsPersistAcrossResults(t *testing.T) {
	s := New()
	s.OnNewResult([]string{"person1"})
	s.SetMode(ModePaths, false)
	s.SetMode(ModeArrows, false)

	s.OnNewResult([]string{"person1", "person2"})

	if s.ShowPaths {
		t.Error("ShowPaths was reset by a new result")
	}
	if s.ShowArrows {
		t.Error("ShowArrows was reset by a new result")
	}
	if !s.ShowClusters {
		t.Error("ShowClusters should still be on")
	}
}

func TestToggleVisibilityFlips(t *testing.T) {
	s := New()
	s.OnNewResult([]string{"person1"})

	s.ToggleVisibility("person1")
	if s.Visible("person1") {
		t.Error("person1 should be hidden after first toggle")
	}
	s.ToggleVisibility("person1")
	if !s.Visible("person1") {
		t.Error("person1 should be visible after second toggle")
	}
}

func TestSetModeUnknown(t *testing.T) {
	s := New()
	if s.SetMode("heatmap", true) {
		t.Error("unknown mode should be rejected")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := New()
	s.OnNewResult([]string{"person1", "person2"})
	snap := s.Snapshot()

	s.ToggleVisibility("person1")
	s.SetMode(ModePaths, false)

	if !snap.Visible("person1") {
		t.Error("snapshot mutated by later toggle")
	}
	if !snap.ShowPaths {
		t.Error("snapshot mutated by later mode change")
	}
}
