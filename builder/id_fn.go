// Package builder - vertex ID schemes.
//
// Every IDFn is pure and deterministic. Invalid indices panic: they can only
// come from a constructor bug, never from user input.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based index to a vertex ID.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal representation: 0→"0", 10→"10".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn maps 0..25 to "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string(rune('A' + idx))
}

// ExcelColumnIDFn maps 0→"A", 25→"Z", 26→"AA", 27→"AB", ...
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexIDFn returns the lowercase hexadecimal representation.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberIDFn returns an IDFn producing prefix+decimal, e.g. "v0", "v1".
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb is shorthand for WithIDScheme(SymbolNumberIDFn(prefix)).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithSymbolIDs is shorthand for WithIDScheme(SymbolIDFn).
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs is shorthand for WithIDScheme(ExcelColumnIDFn).
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithHexIDs is shorthand for WithIDScheme(HexIDFn).
func WithHexIDs() BuilderOption {
	return WithIDScheme(HexIDFn)
}
