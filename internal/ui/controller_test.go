package ui

import (
	"reflect"
	"testing"

	"github.com/plugview/plugview/internal/catalog"
)

func twoRecordStore() *catalog.Store {
	return catalog.NewStore([]catalog.Record{
		{Name: "Beta", Manufacturer: "X"},
		{Name: "alpha", Manufacturer: "Y"},
	})
}

func visibleNames(c *Controller) []string {
	state := c.State()
	out := make([]string, len(state.Visible))
	for i, r := range state.Visible {
		out[i] = r.Name
	}
	return out
}

func TestController_DefaultsToNameAscending(t *testing.T) {
	c := NewController(twoRecordStore())

	state := c.State()
	if state.SortField != catalog.FieldName || state.Descending {
		t.Fatalf("default sort = %v desc=%v, want Name ascending", state.SortField, state.Descending)
	}
	// Case-insensitive key: "alpha" < "beta".
	if got := visibleNames(c); !reflect.DeepEqual(got, []string{"alpha", "Beta"}) {
		t.Fatalf("initial visible = %v, want [alpha Beta]", got)
	}
}

func TestController_SameColumnTogglesDirection(t *testing.T) {
	c := NewController(twoRecordStore())

	c.Apply(ColumnSelected{Field: catalog.FieldName})
	if state := c.State(); !state.Descending {
		t.Fatalf("expected descending after selecting the active column")
	}
	if got := visibleNames(c); !reflect.DeepEqual(got, []string{"Beta", "alpha"}) {
		t.Fatalf("descending visible = %v, want [Beta alpha]", got)
	}

	c.Apply(ColumnSelected{Field: catalog.FieldName})
	if state := c.State(); state.Descending {
		t.Fatalf("expected ascending after toggling twice")
	}
}

func TestController_NewColumnResetsToAscending(t *testing.T) {
	c := NewController(twoRecordStore())

	c.Apply(ColumnSelected{Field: catalog.FieldName}) // now descending
	c.Apply(ColumnSelected{Field: catalog.FieldManufacturer})

	state := c.State()
	if state.SortField != catalog.FieldManufacturer {
		t.Fatalf("SortField = %v, want Manufacturer", state.SortField)
	}
	if state.Descending {
		t.Fatalf("expected direction reset to ascending on new column")
	}
	if got := visibleNames(c); !reflect.DeepEqual(got, []string{"Beta", "alpha"}) {
		t.Fatalf("visible = %v, want [Beta alpha] (X before Y)", got)
	}
}

func TestController_SearchNarrowsAndCounts(t *testing.T) {
	c := NewController(twoRecordStore())

	c.Apply(SearchTextChanged{Text: "y"})

	if got := visibleNames(c); !reflect.DeepEqual(got, []string{"alpha"}) {
		t.Fatalf("visible = %v, want [alpha] (manufacturer Y matches)", got)
	}
	if got := statusText(c.Shown(), c.Total()); got != "Showing 1 of 2 plugins" {
		t.Fatalf("status = %q, want %q", got, "Showing 1 of 2 plugins")
	}
}

func TestController_SubmitIsIdempotent(t *testing.T) {
	c := NewController(twoRecordStore())

	c.Apply(SearchTextChanged{Text: "alpha"})
	first := visibleNames(c)
	c.Apply(SearchSubmitted{Text: "alpha"})

	if got := visibleNames(c); !reflect.DeepEqual(got, first) {
		t.Fatalf("resubmitting the same query changed the view: %v -> %v", first, got)
	}
}

func TestController_ColumnSelectKeepsFilter(t *testing.T) {
	c := NewController(catalog.NewStore([]catalog.Record{
		{Name: "a-synth"},
		{Name: "drum"},
		{Name: "b-synth"},
	}))

	c.Apply(SearchTextChanged{Text: "synth"})
	c.Apply(ColumnSelected{Field: catalog.FieldName})

	if got := visibleNames(c); !reflect.DeepEqual(got, []string{"b-synth", "a-synth"}) {
		t.Fatalf("visible = %v, want filtered subset sorted descending", got)
	}
}

func TestController_ClearSearchPreservesSort(t *testing.T) {
	c := NewController(twoRecordStore())

	c.Apply(ColumnSelected{Field: catalog.FieldName}) // descending
	c.Apply(SearchTextChanged{Text: "alpha"})
	c.Apply(ClearSearch{})

	state := c.State()
	if state.Query != "" {
		t.Fatalf("Query = %q, want empty after clear", state.Query)
	}
	if state.SortField != catalog.FieldName || !state.Descending {
		t.Fatalf("clear changed sort settings: %v desc=%v", state.SortField, state.Descending)
	}
	if got := visibleNames(c); !reflect.DeepEqual(got, []string{"Beta", "alpha"}) {
		t.Fatalf("visible after clear = %v, want full dataset descending", got)
	}
}

func TestController_FocusAndQuitLeaveStateAlone(t *testing.T) {
	c := NewController(twoRecordStore())
	before := c.State()

	c.Apply(FocusSearchRequested{})
	c.Apply(QuitRequested{})

	after := c.State()
	if after.Query != before.Query || after.SortField != before.SortField || after.Descending != before.Descending {
		t.Fatalf("focus/quit events mutated view state")
	}
}

func TestController_EmptyStore(t *testing.T) {
	c := NewController(catalog.NewStore(nil))

	if c.Shown() != 0 || c.Total() != 0 {
		t.Fatalf("shown/total = %d/%d, want 0/0", c.Shown(), c.Total())
	}
	if got := statusText(c.Shown(), c.Total()); got != "Showing 0 of 0 plugins" {
		t.Fatalf("status = %q, want %q", got, "Showing 0 of 0 plugins")
	}

	// Events over an empty dataset must not panic.
	c.Apply(SearchTextChanged{Text: "anything"})
	c.Apply(ColumnSelected{Field: catalog.FieldDescription})
	c.Apply(ClearSearch{})
}

func TestController_DatasetSurvivesReordering(t *testing.T) {
	store := twoRecordStore()
	c := NewController(store)

	c.Apply(ColumnSelected{Field: catalog.FieldName})
	c.Apply(ColumnSelected{Field: catalog.FieldManufacturer})
	c.Apply(ClearSearch{})

	got := store.Records()
	if got[0].Name != "Beta" || got[1].Name != "alpha" {
		t.Fatalf("store order changed: %v", got)
	}
}
