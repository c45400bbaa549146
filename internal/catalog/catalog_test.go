package catalog

import "testing"

func TestDefaultStoreByID(t *testing.T) {
	s := Default()
	p, ok := s.ByID(1)
	if !ok {
		t.Fatal("expected product 1 to exist")
	}
	if p.Name != "iPhone 15 Pro Max" {
		t.Fatalf("unexpected name: %s", p.Name)
	}
	if _, ok := s.ByID(999); ok {
		t.Fatal("expected product 999 to be missing")
	}
}

func TestListFilters(t *testing.T) {
	s := Default()

	clothing := s.List(Filter{Category: "clothing"})
	for _, p := range clothing {
		if p.Category != "clothing" {
			t.Fatalf("category filter leaked: %s", p.Category)
		}
	}
	if len(clothing) != 3 {
		t.Fatalf("expected 3 clothing products, got %d", len(clothing))
	}

	apple := s.List(Filter{Brand: "Apple"})
	if len(apple) != 4 {
		t.Fatalf("expected 4 Apple products, got %d", len(apple))
	}

	all := s.List(Filter{Category: "all", Brand: "all"})
	if len(all) != len(s.All()) {
		t.Fatalf("all filter should return everything, got %d", len(all))
	}

	cheap := s.List(Filter{MaxPrice: 100})
	for _, p := range cheap {
		if p.Price > 100 {
			t.Fatalf("price filter leaked: %.2f", p.Price)
		}
	}

	rated := s.List(Filter{Rating: 4.8})
	for _, p := range rated {
		if p.Rating < 4.8 {
			t.Fatalf("rating filter leaked: %.1f", p.Rating)
		}
	}
}

func TestListSearch(t *testing.T) {
	s := Default()

	hits := s.List(Filter{Search: "macbook"})
	if len(hits) != 1 || hits[0].ID != 2 {
		t.Fatalf("expected MacBook only, got %v", hits)
	}

	// 标签也参与匹配
	hits = s.List(Filter{Search: "GAMING"})
	if len(hits) != 1 || hits[0].ID != 7 {
		t.Fatalf("expected keyboard only, got %v", hits)
	}
}

func TestListSort(t *testing.T) {
	s := Default()

	asc := s.List(Filter{Sort: "price-asc"})
	for i := 1; i < len(asc); i++ {
		if asc[i].Price < asc[i-1].Price {
			t.Fatal("price-asc not sorted")
		}
	}

	desc := s.List(Filter{Sort: "price-desc"})
	if desc[0].ID != 2 {
		t.Fatalf("expected MacBook first, got %d", desc[0].ID)
	}

	newest := s.List(Filter{Sort: "newest"})
	if newest[0].ID != 8 {
		t.Fatalf("expected product 8 first, got %d", newest[0].ID)
	}
}

func TestFacets(t *testing.T) {
	s := Default()

	cats := s.Categories()
	if cats[0].ID != "all" || cats[0].Count != 8 {
		t.Fatalf("unexpected all facet: %+v", cats[0])
	}
	if len(cats) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(cats))
	}

	brands := s.Brands()
	if len(brands) != 5 {
		t.Fatalf("expected 5 brands, got %d", len(brands))
	}
	if brands[0] != "Apple" {
		t.Fatalf("expected Apple first, got %s", brands[0])
	}
}
