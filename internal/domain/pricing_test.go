package domain

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestPriceFor_FallbackOffsets(t *testing.T) {
	testCases := []struct {
		name  string
		price float64
		room  RoomType
		want  float64
	}{
		{"quad is base price", 5000, RoomQuad, 5000},
		{"triple falls back to +500", 5000, RoomTriple, 5500},
		{"twin falls back to +1000", 5000, RoomTwin, 6000},
		{"zero price triple", 0, RoomTriple, 500},
		{"zero price twin", 0, RoomTwin, 1000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			trip := Trip{Title: "Kasol", Duration: "3 Days", Price: tc.price}
			if got := trip.PriceFor(tc.room); got != tc.want {
				t.Errorf("PriceFor(%s) = %v, want %v", tc.room, got, tc.want)
			}
		})
	}
}

func TestPriceFor_OverridesWin(t *testing.T) {
	trip := Trip{Price: 5000, TriplePrice: floatPtr(5500), TwinPrice: floatPtr(7200)}

	if got := trip.PriceFor(RoomTriple); got != 5500 {
		t.Errorf("expected triple override 5500, got %v", got)
	}
	if got := trip.PriceFor(RoomTwin); got != 7200 {
		t.Errorf("expected twin override 7200, got %v", got)
	}
	if got := trip.PriceFor(RoomQuad); got != 5000 {
		t.Errorf("expected quad 5000, got %v", got)
	}
}

func TestRoomPrices_Order(t *testing.T) {
	trip := Trip{Price: 8000, TwinPrice: floatPtr(9999)}

	prices := trip.RoomPrices()
	if len(prices) != 3 {
		t.Fatalf("expected 3 room prices, got %d", len(prices))
	}

	want := []RoomPrice{{RoomQuad, 8000}, {RoomTriple, 8500}, {RoomTwin, 9999}}
	for i := range want {
		if prices[i] != want[i] {
			t.Errorf("prices[%d] = %+v, want %+v", i, prices[i], want[i])
		}
	}
}

func TestParseRoomType(t *testing.T) {
	testCases := []struct {
		in      string
		want    RoomType
		wantErr bool
	}{
		{"", RoomQuad, false},
		{"Quad", RoomQuad, false},
		{"triple", RoomTriple, false},
		{" TWIN ", RoomTwin, false},
		{"single", RoomQuad, true},
	}

	for _, tc := range testCases {
		got, err := ParseRoomType(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseRoomType(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRoomType(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseRoomType(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
