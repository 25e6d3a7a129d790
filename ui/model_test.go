package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ndhoang/shopfront/filter"
	"github.com/ndhoang/shopfront/types"
)

type stubSource struct {
	products []types.Product
	err      error
	listings int
}

func (s *stubSource) Listing() ([]types.Product, error) {
	s.listings++
	return s.products, s.err
}

func testCatalog() []types.Product {
	return []types.Product{
		types.NewProduct("a", "Backend Package", types.Price{Amount: 1200}, 52, []string{"backend"}, ""),
		types.NewProduct("b", "UX/UI Package", types.Price{Amount: 450}, 97, []string{"design"}, ""),
		types.NewProduct("c", "Maintenance Package", types.Price{Amount: 99.50}, 14, []string{"backend"}, ""),
	}
}

func loadedModel(t *testing.T, source *stubSource) Model {
	t.Helper()
	m := NewModel(source, &fakeGateway{})
	products, err := source.Listing()
	updated, _ := m.Update(catalogMsg{products: products, err: err})
	return updated.(Model)
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func listIDs(m Model) []string {
	items := m.list.Items()
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.(types.Product).ID()
	}
	return ids
}

func TestModelCatalogLoad(t *testing.T) {
	m := loadedModel(t, &stubSource{products: testCatalog()})

	if m.loading {
		t.Fatal("still loading after catalog message")
	}
	if got := listIDs(m); len(got) != 3 {
		t.Fatalf("listing shows %d items, want 3", len(got))
	}
}

func TestModelCatalogError(t *testing.T) {
	source := &stubSource{err: errors.New("boom")}
	m := NewModel(source, &fakeGateway{})
	products, err := source.Listing()
	updated, _ := m.Update(catalogMsg{products: products, err: err})
	m = updated.(Model)

	if m.err == nil {
		t.Fatal("catalog error not recorded")
	}
	if m.loading {
		t.Error("still loading after failed fetch")
	}
}

func TestModelEnterOpensPanel(t *testing.T) {
	m := loadedModel(t, &stubSource{products: testCatalog()})

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.panel.Opened() {
		t.Fatal("panel not opened on enter")
	}
	if got := m.panel.Item().ID(); got != "a" {
		t.Errorf("panel item = %s, want a", got)
	}
}

func TestModelFilterCategory(t *testing.T) {
	m := loadedModel(t, &stubSource{products: testCatalog()})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	if !m.showFilter {
		t.Fatal("filter bar not shown")
	}

	// move focus to the category row and select the first tag
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRight})

	got := listIDs(m)
	want := []string{"a", "c"} // "backend" sorts before "design"
	if len(got) != len(want) {
		t.Fatalf("filtered listing = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("filtered listing = %v, want %v", got, want)
		}
	}
}

func TestModelFilterSortByLikes(t *testing.T) {
	m := loadedModel(t, &stubSource{products: testCatalog()})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRight}) // SortNone -> SortMostLiked

	got := listIDs(m)
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted listing = %v, want %v", got, want)
		}
	}
}

func TestModelViewMemoized(t *testing.T) {
	m := loadedModel(t, &stubSource{products: testCatalog()})

	// grow the catalog behind the memo's back; an unchanged criteria must
	// not trigger a recompute
	m.catalog = append(m.catalog, types.NewProduct("d", "Extra", types.Price{Amount: 10}, 1, nil, ""))
	m.refreshView()
	if got := len(listIDs(m)); got != 3 {
		t.Fatalf("view recomputed without a criteria change: %d items", got)
	}

	// a real criteria change rebuilds the view
	category := filter.CategoryAll
	m.criteria = filter.Apply(m.criteria, filter.Update{Category: &category})
	m.criteria.Price.Max = 2000
	m.refreshView()
	if got := len(listIDs(m)); got != 4 {
		t.Fatalf("view not recomputed after criteria change: %d items", got)
	}
}

func TestModelPanelKeysTakePriority(t *testing.T) {
	m := loadedModel(t, &stubSource{products: testCatalog()})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// "f" must type into the offer input path, not toggle the filter bar
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	if m.showFilter {
		t.Error("filter bar toggled while panel open")
	}

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.panel.Opened() {
		t.Error("panel still open after esc")
	}
}

func TestModelRefreshRefetches(t *testing.T) {
	source := &stubSource{products: testCatalog()}
	m := loadedModel(t, source)

	before := source.listings
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)
	if !m.loading {
		t.Fatal("refresh did not enter loading state")
	}
	if cmd == nil {
		t.Fatal("refresh produced no command")
	}
	// run the batched commands far enough to hit the source
	drainCmd(cmd)
	if source.listings <= before {
		t.Errorf("listings = %d, want > %d", source.listings, before)
	}
}

// drainCmd executes a command tree, skipping timers.
func drainCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				c()
			}
		}
	}
}
