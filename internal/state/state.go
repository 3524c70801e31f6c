// Package state holds the map's visibility and display-mode model as an
// explicit state object with defined transitions, independent of any UI
// binding.
package state

// Display modes toggled from the control panel.
const (
	ModePaths    = "paths"
	ModeArrows   = "arrows"
	ModeClusters = "clusters"
)

// VisibilityState tracks which persons are visible and which display modes
// are active. The visible set is rebuilt for every new query result; the
// mode flags persist across queries as a user preference.
type VisibilityState struct {
	visible      map[string]bool
	ShowPaths    bool
	ShowArrows   bool
	ShowClusters bool
}

// New returns a state with all display modes enabled and nothing visible
// yet; the first OnNewResult populates the visible set.
func New() *VisibilityState {
	return &VisibilityState{
		visible:      make(map[string]bool),
		ShowPaths:    true,
		ShowArrows:   true,
		ShowClusters: true,
	}
}

// OnNewResult resets the visible set to exactly the persons present in the
// new result, discarding any per-person toggles made against the previous
// one. Mode flags are left alone.
func (s *VisibilityState) OnNewResult(persons []string) {
	s.visible = make(map[string]bool, len(persons))
	for _, p := range persons {
		s.visible[p] = true
	}
}

// ToggleVisibility flips one person's visibility. Toggling a person absent
// from the current result makes them visible-if-present, which is harmless:
// rendering only consults persons the result actually contains.
func (s *VisibilityState) ToggleVisibility(person string) {
	s.visible[person] = !s.visible[person]
}

// Visible reports whether a person is currently shown.
func (s *VisibilityState) Visible(person string) bool {
	return s.visible[person]
}

// VisibleCount returns the number of visible persons.
func (s *VisibilityState) VisibleCount() int {
	n := 0
	for _, v := range s.visible {
		if v {
			n++
		}
	}
	return n
}

// SetMode sets one display-mode flag. Unknown modes are ignored and
// reported to the caller.
func (s *VisibilityState) SetMode(mode string, enabled bool) bool {
	switch mode {
	case ModePaths:
		s.ShowPaths = enabled
	case ModeArrows:
		s.ShowArrows = enabled
	case ModeClusters:
		s.ShowClusters = enabled
	default:
		return false
	}
	return true
}

// Snapshot returns a copy safe to derive a scene from while the original
// keeps mutating.
func (s *VisibilityState) Snapshot() VisibilityState {
	visible := make(map[string]bool, len(s.visible))
	for p, v := range s.visible {
		visible[p] = v
	}
	return VisibilityState{
		visible:      visible,
		ShowPaths:    s.ShowPaths,
		ShowArrows:   s.ShowArrows,
		ShowClusters: s.ShowClusters,
	}
}
