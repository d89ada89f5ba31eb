package parser

import "testing"

func TestParseCJKNumber(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"一", 1},
		{"两", 2},
		{"十", 10},
		{"十三", 13},
		{"二十三", 23},
		{"一百零五", 105},
		{"三千", 3000},
		{"一千二百三十四", 1234},
		{"两万", 20000},
		{"三万五千", 35000},
		{"零", 0},
	}
	for _, c := range cases {
		if got := parseCJKNumber(c.in); got != c.want {
			t.Errorf("parseCJKNumber(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
