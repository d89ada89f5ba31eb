package parser

var cjkDigits = map[rune]int{
	'零': 0, '〇': 0,
	'一': 1, '二': 2, '两': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

var cjkMagnitudes = map[rune]int{
	'十': 10, '百': 100, '千': 1000, '万': 10000,
}

// parseCJKNumber converts a run of CJK numeral characters to an integer
// with a positional accumulator: digits set the pending units value,
// magnitudes below 万 multiply it into the current section (an implicit 1
// when no digit precedes, as in 十三), and 万 closes the section and scales
// everything accumulated so far. 二十三 → 23, 一百零五 → 105, 三千 → 3000.
func parseCJKNumber(s string) int {
	result := 0  // completed 万-scaled portion
	section := 0 // current section below 万
	digit := 0   // pending units digit

	for _, r := range s {
		if d, ok := cjkDigits[r]; ok {
			digit = d
			continue
		}
		m, ok := cjkMagnitudes[r]
		if !ok {
			continue
		}
		if m == 10000 {
			section += digit
			if section == 0 {
				section = 1
			}
			result = (result + section) * m
			section, digit = 0, 0
			continue
		}
		if digit == 0 {
			digit = 1
		}
		section += digit * m
		digit = 0
	}
	return result + section + digit
}
