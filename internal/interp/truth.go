package interp

import "strconv"

// TruthOf reduces a value to its explicit truth value. There is no
// implicit truthiness beyond these fixed rules:
//
//   - flag mirrors its value
//   - emp is always false
//   - num 0 is false, any other num is true
//   - dec 0.0 is false, any other dec is true
//   - empty text is false, non-empty text is true
//   - a function value is true
func TruthOf(v Value) bool {
	switch v := v.(type) {
	case Flag:
		return bool(v)
	case Emp:
		return false
	case Num:
		return v != 0
	case Dec:
		f, err := strconv.ParseFloat(string(v), 64)
		return err == nil && f != 0
	case Text:
		return v != ""
	case *Func:
		return true
	}
	return false
}
