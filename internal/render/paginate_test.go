package render

import "testing"

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		items      []int
		offset     int
		limit      int
		wantItems  []int
		wantMore   bool
		wantNext   int
		wantNilPtr bool
	}{
		{
			name:      "first page of many",
			items:     seq(10),
			offset:    0,
			limit:     3,
			wantItems: []int{0, 1, 2},
			wantMore:  true,
			wantNext:  3,
		},
		{
			name:      "middle page",
			items:     seq(10),
			offset:    3,
			limit:     3,
			wantItems: []int{3, 4, 5},
			wantMore:  true,
			wantNext:  6,
		},
		{
			name:       "last partial page",
			items:      seq(10),
			offset:     9,
			limit:      3,
			wantItems:  []int{9},
			wantMore:   false,
			wantNilPtr: true,
		},
		{
			name:       "offset past the end",
			items:      seq(5),
			offset:     50,
			limit:      10,
			wantItems:  []int{},
			wantMore:   false,
			wantNilPtr: true,
		},
		{
			name:       "exact fit",
			items:      seq(6),
			offset:     3,
			limit:      3,
			wantItems:  []int{3, 4, 5},
			wantMore:   false,
			wantNilPtr: true,
		},
		{
			name:       "nil items",
			items:      nil,
			offset:     0,
			limit:      10,
			wantItems:  []int{},
			wantMore:   false,
			wantNilPtr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(tt.items, tt.offset, tt.limit)

			if len(page.Items) != len(tt.wantItems) {
				t.Fatalf("items = %v, want %v", page.Items, tt.wantItems)
			}
			for i, v := range tt.wantItems {
				if page.Items[i] != v {
					t.Fatalf("items = %v, want %v", page.Items, tt.wantItems)
				}
			}
			if page.Count != len(tt.wantItems) {
				t.Errorf("count = %d, want %d", page.Count, len(tt.wantItems))
			}
			if page.Total != len(tt.items) {
				t.Errorf("total = %d, want %d", page.Total, len(tt.items))
			}
			if page.HasMore != tt.wantMore {
				t.Errorf("hasMore = %v, want %v", page.HasMore, tt.wantMore)
			}
			if tt.wantNilPtr {
				if page.NextOffset != nil {
					t.Errorf("nextOffset = %d, want nil", *page.NextOffset)
				}
			} else {
				if page.NextOffset == nil || *page.NextOffset != tt.wantNext {
					t.Errorf("nextOffset = %v, want %d", page.NextOffset, tt.wantNext)
				}
			}
		})
	}
}

func TestPaginate_FullRangeIsIdentity(t *testing.T) {
	items := seq(7)
	page := Paginate(items, 0, len(items))

	if page.Count != len(items) || page.HasMore {
		t.Errorf("page = %+v, want all items and no more", page)
	}
	for i, v := range page.Items {
		if v != items[i] {
			t.Fatalf("items = %v, want %v unchanged", page.Items, items)
		}
	}
}

func TestPaginateTotal_UsesSuppliedTotal(t *testing.T) {
	// Filtered view of a larger set: 4 items survive a filter over 20.
	page := PaginateTotal(seq(4), 0, 10, 20)

	if page.Total != 20 {
		t.Errorf("total = %d, want 20", page.Total)
	}
	if page.Count != 4 {
		t.Errorf("count = %d, want 4", page.Count)
	}
	if !page.HasMore {
		t.Error("hasMore should be true when offset+limit < total")
	}
}

func TestPaginate_WalkCoversAllItems(t *testing.T) {
	items := seq(23)
	limit := 5

	var collected []int
	offset := 0
	for {
		page := Paginate(items, offset, limit)
		collected = append(collected, page.Items...)
		if !page.HasMore {
			break
		}
		offset = *page.NextOffset
	}

	if len(collected) != len(items) {
		t.Fatalf("walked %d items, want %d", len(collected), len(items))
	}
	for i, v := range collected {
		if v != i {
			t.Fatalf("item %d = %d, want %d", i, v, i)
		}
	}
}
