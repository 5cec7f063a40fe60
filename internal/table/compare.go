package table

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Compare orders two cell values: -1 when a sorts before b, 1 after, 0 when
// equal or when the values cannot be ordered against each other. Numbers
// of any kind compare numerically, strings byte-wise, false before true.
func Compare(a, b any) int {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
		return 0
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return 0
	}

	if numeric(va) {
		if numeric(vb) {
			return compareNumbers(va, vb)
		}
		return 0
	}

	switch {
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return strings.Compare(va.String(), vb.String())
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		return three(!va.Bool() && vb.Bool(), va.Bool() && !vb.Bool())
	}

	sa, okA := a.(fmt.Stringer)
	sb, okB := b.(fmt.Stringer)
	if okA && okB {
		return strings.Compare(sa.String(), sb.String())
	}
	return 0
}

type numberKind int

const (
	notNumber numberKind = iota
	signed
	unsigned
	float
)

func kindOf(v reflect.Value) numberKind {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signed
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsigned
	case reflect.Float32, reflect.Float64:
		return float
	}
	return notNumber
}

func numeric(v reflect.Value) bool {
	return kindOf(v) != notNumber
}

// compareNumbers keeps integers exact; only a float operand forces
// float comparison.
func compareNumbers(a, b reflect.Value) int {
	ka, kb := kindOf(a), kindOf(b)
	switch {
	case ka == signed && kb == signed:
		return cmp.Compare(a.Int(), b.Int())
	case ka == unsigned && kb == unsigned:
		return cmp.Compare(a.Uint(), b.Uint())
	case ka == signed && kb == unsigned:
		if a.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.Int()), b.Uint())
	case ka == unsigned && kb == signed:
		if b.Int() < 0 {
			return 1
		}
		return cmp.Compare(a.Uint(), uint64(b.Int()))
	}
	fa, fb := toFloat(a), toFloat(b)
	return three(fa < fb, fa > fb)
}

func toFloat(v reflect.Value) float64 {
	switch kindOf(v) {
	case signed:
		return float64(v.Int())
	case unsigned:
		return float64(v.Uint())
	}
	return v.Float()
}

func three(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}

// Format renders a cell value for display
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format("2006-01-02")
	default:
		return fmt.Sprint(x)
	}
}
