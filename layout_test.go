package iso8583

import "testing"

func TestDefaultLayoutOrderDropsHeader(t *testing.T) {
	order := DefaultLayout().order()
	if len(order) != 2 {
		t.Fatalf("expected 2 sections without a header, got %d", len(order))
	}
	if order[0] != sectionMTI || order[1] != sectionBitmapData {
		t.Fatalf("got %v", order)
	}
}

func TestLayoutOrderRespectsCustomRanking(t *testing.T) {
	v := LayoutView{
		UseHeader:             true,
		MTIPosition:           2,
		HeaderPosition:        0,
		BitmapAndDataPosition: 1,
	}
	order := v.order()
	want := []section{sectionHeader, sectionBitmapData, sectionMTI}
	if len(order) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v want %v", order, want)
		}
	}
}
