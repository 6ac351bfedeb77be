package fmtsize_test

import (
	"fmt"

	"github.com/d2verb/fmtsize"
)

func ExampleFmtSize() {
	fmt.Println(fmtsize.FmtSize(492_752_310, fmtsize.Conventional{}))
	// Output: 469.93 MB
}

func ExampleFmtSize_decimal() {
	fmt.Println(fmtsize.FmtSize(1_000_000, fmtsize.Decimal{}))
	fmt.Println(fmtsize.FmtSize(1_048_576, fmtsize.Decimal{}))
	// Output:
	// 1.00 MB
	// 1.05 MB
}

func ExampleBytes() {
	fmt.Println(fmtsize.Bytes(0))
	fmt.Println(fmtsize.Bytes(1 << 30))
	// Output:
	// 0.00 KB
	// 1.00 GB
}

func ExampleLookup() {
	f, err := fmtsize.Lookup("decimal")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(fmtsize.FmtSize(2_500_000_000, f))
	// Output: 2.50 GB
}
