package render

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Glyph maps a distance to one display character:
//
//	0–9   → '0'–'9'
//	10–35 → 'a'–'z'
//	36–61 → 'A'–'Z'
//
// An absent distance (ok == false) is a blank. Values outside [0, 61] render
// as "#".
func Glyph(n int, ok bool) string {
	if !ok {
		return " "
	}
	if n < 0 || n >= len(alphabet) {
		return "#"
	}
	return alphabet[n : n+1]
}
