package vector

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// WriteTo writes every element to w in order with no separator. Elements of
// type byte and rune are written as characters, everything else with
// fmt.Fprint.
func (a *Array[T]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := 0; i < a.size; i++ {
		n, err := writeElem(w, a.data[i])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String renders the array the way WriteTo writes it.
func (a *Array[T]) String() string {
	var sb strings.Builder
	_, _ = a.WriteTo(&sb)
	return sb.String()
}

func writeElem(w io.Writer, v any) (int, error) {
	switch c := v.(type) {
	case byte:
		return w.Write([]byte{c})
	case rune:
		return w.Write(utf8.AppendRune(nil, c))
	}
	return fmt.Fprint(w, v)
}
