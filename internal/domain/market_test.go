package domain

import "testing"

func TestMarketItem_EffectivePrice(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{"no discount", 60, 0, 60},
		{"half off", 60, 50, 30},
		{"quarter off", 100, 25, 75},
		{"rounds to cents", 9.99, 33, 6.69},
		{"full discount", 45, 100, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := MarketItem{Price: tc.price, Discount: tc.discount}
			if got := item.EffectivePrice(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
