package templates

import (
	"strconv"
	"strings"
)

func joined(count int, each func(i int) string) string {
	parts := make([]string, count)
	for i := 0; i < count; i++ {
		parts[i] = each(i)
	}
	return strings.Join(parts, ", ")
}

// typeParams renders "T0, T1, ..." for an arity.
func typeParams(count int) string {
	return joined(count, func(i int) string {
		return "T" + strconv.Itoa(i)
	})
}

// fnParams renders "arg0 *T0, arg1 *T1, ..." for a callback signature.
func fnParams(count int) string {
	return joined(count, func(i int) string {
		n := strconv.Itoa(i)
		return "arg" + n + " *T" + n
	})
}

// sourceArgs renders "s0, s1, ..." for a call site.
func sourceArgs(count int) string {
	return joined(count, func(i int) string {
		return "s" + strconv.Itoa(i)
	})
}
