package filter

import (
	"reflect"
	"testing"

	"github.com/ndhoang/shopfront/types"
)

func product(id string, amount float64, likes int, categories ...string) types.Product {
	return types.NewProduct(id, "Product "+id, types.Price{Amount: amount, Currency: "$"}, likes, categories, "")
}

func strPtr(s string) *string { return &s }
func sortPtr(s Sort) *Sort    { return &s }

func rangePtr(lo, hi float64) *PriceRange {
	return &PriceRange{Min: lo, Max: hi}
}

func TestApplyMergesPartialUpdates(t *testing.T) {
	criteria := DefaultCriteria()

	criteria = Apply(criteria, Update{Category: strPtr("backend")})
	if criteria.Category != "backend" {
		t.Errorf("category = %q, want %q", criteria.Category, "backend")
	}
	// unrelated keys survive
	if criteria.Price != (PriceRange{Min: 0, Max: 1200}) {
		t.Errorf("price range changed by category update: %+v", criteria.Price)
	}

	criteria = Apply(criteria, Update{Price: rangePtr(100, 500)})
	if criteria.Category != "backend" {
		t.Errorf("price update dropped category, got %q", criteria.Category)
	}
	if criteria.Price != (PriceRange{Min: 100, Max: 500}) {
		t.Errorf("price = %+v, want [100,500]", criteria.Price)
	}
}

func TestApplySequentialMergesAssociative(t *testing.T) {
	base := DefaultCriteria()
	u1 := Update{Category: strPtr("uxui")}
	u2 := Update{Like: sortPtr(SortMostLiked)}
	u3 := Update{Price: rangePtr(50, 900)}

	oneByOne := Apply(Apply(Apply(base, u1), u2), u3)
	regrouped := Apply(Apply(base, u1), Update{
		Like:  u2.Like,
		Price: u3.Price,
	})
	if oneByOne != regrouped {
		t.Errorf("merge grouping changed result:\n%+v\n%+v", oneByOne, regrouped)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := DefaultCriteria()
	snapshot := before
	_ = Apply(before, Update{Category: strPtr("database"), Like: sortPtr(SortLeastLiked)})
	if before != snapshot {
		t.Errorf("Apply mutated its input: %+v", before)
	}
}

func TestMatchesPriceRangeInclusiveBounds(t *testing.T) {
	criteria := Apply(DefaultCriteria(), Update{Price: rangePtr(100, 500)})

	tests := []struct {
		amount float64
		want   bool
	}{
		{99.99, false},
		{100, true}, // lower bound inclusive
		{300, true},
		{500, true}, // upper bound inclusive
		{500.01, false},
	}
	for _, tt := range tests {
		got := Matches(product("p", tt.amount, 0), criteria)
		if got != tt.want {
			t.Errorf("Matches(amount=%v) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestMatchesCategory(t *testing.T) {
	item := product("p1", 200, 10, "backend", "database")

	all := DefaultCriteria()
	if !Matches(item, all) {
		t.Error("sentinel category should always pass")
	}

	backend := Apply(all, Update{Category: strPtr("backend")})
	if !Matches(item, backend) {
		t.Error("item tagged backend should match category backend")
	}

	uxui := Apply(all, Update{Category: strPtr("uxui")})
	if Matches(item, uxui) {
		t.Error("item without uxui tag should not match category uxui")
	}
}

func TestMatchesAndsAllCriteria(t *testing.T) {
	criteria := Apply(DefaultCriteria(), Update{
		Category: strPtr("backend"),
		Price:    rangePtr(100, 300),
	})

	if Matches(product("p", 400, 0, "backend"), criteria) {
		t.Error("matching category must not override failing price range")
	}
	if Matches(product("p", 200, 0, "uxui"), criteria) {
		t.Error("matching price must not override failing category")
	}
	if !Matches(product("p", 200, 0, "backend"), criteria) {
		t.Error("item passing every criterion should match")
	}
}

func TestSortByLikesStable(t *testing.T) {
	catalog := []types.Product{
		product("a", 100, 5),
		product("b", 100, 9),
		product("c", 100, 5), // ties with a; must stay after a
		product("d", 100, 1),
	}

	most := SortByLikes(catalog, SortMostLiked)
	gotMost := ids(most)
	wantMost := []string{"b", "a", "c", "d"}
	if !reflect.DeepEqual(gotMost, wantMost) {
		t.Errorf("most-liked order = %v, want %v", gotMost, wantMost)
	}

	least := SortByLikes(catalog, SortLeastLiked)
	gotLeast := ids(least)
	wantLeast := []string{"d", "a", "c", "b"}
	if !reflect.DeepEqual(gotLeast, wantLeast) {
		t.Errorf("least-liked order = %v, want %v", gotLeast, wantLeast)
	}

	// input untouched
	if !reflect.DeepEqual(ids(catalog), []string{"a", "b", "c", "d"}) {
		t.Errorf("SortByLikes mutated its input: %v", ids(catalog))
	}
}

func TestViewFiltersAndSorts(t *testing.T) {
	catalog := []types.Product{
		product("cheap", 50, 3, "backend"),
		product("mid", 400, 8, "backend"),
		product("other", 450, 9, "uxui"),
		product("pricey", 2000, 20, "backend"),
	}

	criteria := Apply(DefaultCriteria(), Update{
		Category: strPtr("backend"),
		Price:    rangePtr(0, 1000),
		Like:     sortPtr(SortMostLiked),
	})

	got := ids(View(catalog, criteria))
	want := []string{"mid", "cheap"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("View = %v, want %v", got, want)
	}
}

func ids(items []types.Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID())
	}
	return out
}
