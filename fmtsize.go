// Package fmtsize formats byte counts as human-readable sizes.
//
// It picks the largest unit that fits a value, up to gigabytes, under a
// pluggable naming convention:
//
//	fmt.Println(fmtsize.FmtSize(492_752_310, fmtsize.Conventional{})) // 469.93 MB
//
// Formatting is lazy. FmtSize only captures its arguments; the text is
// produced each time the formatter is printed.
package fmtsize

import "fmt"

// Format selects a divisor and a unit name for a byte count.
type Format interface {
	// Divisor returns the number of bytes in one display unit for size.
	//
	// E.g. to get the number of megabytes in a file, divide the file size
	// by the size in bytes of one megabyte.
	Divisor(size uint64) uint64

	// Name returns the unit label matching Divisor for the same size.
	Name(size uint64) string
}

// ByteSizeFormatter is a lazy byte size formatter.
type ByteSizeFormatter[F Format] struct {
	size uint64
	fmt  F
}

// FmtSize wraps size in a formatter that renders it using f.
// Nothing is computed until the formatter is converted to a string.
func FmtSize[F Format](size uint64, f F) ByteSizeFormatter[F] {
	return ByteSizeFormatter[F]{size: size, fmt: f}
}

// Bytes wraps size in a formatter using the Conventional format.
func Bytes(size uint64) ByteSizeFormatter[Conventional] {
	return FmtSize(size, Conventional{})
}

// Size returns the raw byte count.
func (b ByteSizeFormatter[F]) Size() uint64 {
	return b.size
}

// Format returns the format the size is rendered with.
func (b ByteSizeFormatter[F]) Format() F {
	return b.fmt
}

// String renders the size with two fractional digits and a unit name,
// e.g. "1.00 MB".
func (b ByteSizeFormatter[F]) String() string {
	divisor := float32(b.fmt.Divisor(b.size))
	size := float32(b.size) / divisor
	return fmt.Sprintf("%.2f %s", size, b.fmt.Name(b.size))
}

// MarshalText implements encoding.TextMarshaler.
func (b ByteSizeFormatter[F]) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}
