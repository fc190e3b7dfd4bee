package payment

import "testing"

func TestFromDecimal(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{19.995, 1999}, // 超过两位小数直接截断
		{0.01, 1},
		{10, 1000},
		{0, 0},
	}
	for _, c := range cases {
		if got := FromDecimal(c.price); got != c.want {
			t.Errorf("FromDecimal(%v) = %d, want %d", c.price, got, c.want)
		}
	}
}
