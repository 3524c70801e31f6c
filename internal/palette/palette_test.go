package palette

import "testing"

func TestForPersonDeterministic(t *testing.T) {
	first := ForPerson("person3", nil)
	for i := 0; i < 5; i++ {
		if got := ForPerson("person3", nil); got != first {
			t.Fatalf("call %d: got %s, want %s", i, got, first)
		}
	}
	if first != Colors[2] {
		t.Errorf("person3: got %s, want palette entry 2 (%s)", first, Colors[2])
	}
}

func TestForPersonOverrideWins(t *testing.T) {
	got := ForPerson("person1", map[string]string{"person1": "#ABCDEF"})
	if got != "#ABCDEF" {
		t.Errorf("got %s, want #ABCDEF", got)
	}
}

func TestForPersonModuloWraparound(t *testing.T) {
	if got, want := ForPerson("person11", nil), Colors[0]; got != want {
		t.Errorf("person11: got %s, want %s", got, want)
	}
	if got, want := ForPerson("person14", nil), Colors[3]; got != want {
		t.Errorf("person14: got %s, want %s", got, want)
	}
}

func TestForPersonUnparseableSuffix(t *testing.T) {
	for _, id := range []string{"alice", "personX", "person0", "person"} {
		if got, want := ForPerson(id, nil), Colors[0]; got != want {
			t.Errorf("%q: got %s, want %s", id, got, want)
		}
	}
}

func TestForPersonAbsentIsNeutralGray(t *testing.T) {
	got := ForPerson("", nil)
	if got != NeutralGray {
		t.Errorf("got %s, want %s", got, NeutralGray)
	}
	for _, c := range Colors {
		if c == NeutralGray {
			t.Errorf("neutral gray %s must not appear in the palette", NeutralGray)
		}
	}
}

func TestAssignSortsAndCycles(t *testing.T) {
	table := Assign([]string{"person2", "person1", "person3"})
	if len(table) != 3 {
		t.Fatalf("got %d entries, want 3", len(table))
	}
	if table["person1"] != "#3B82F6" || table["person2"] != "#EF4444" || table["person3"] != "#10B981" {
		t.Errorf("unexpected assignment: %v", table)
	}
}

func TestAssignSinglePersonIsNil(t *testing.T) {
	if table := Assign([]string{"person1"}); table != nil {
		t.Errorf("got %v, want nil", table)
	}
}
