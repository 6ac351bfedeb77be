package fmtsize

// Binary thresholds used by Conventional.
const (
	Kilobyte uint64 = 1 << 10
	Megabyte uint64 = 1 << 20
	Gigabyte uint64 = 1 << 30
)

// Decimal thresholds used by Decimal.
const (
	DecimalKilobyte uint64 = 1000
	DecimalMegabyte uint64 = 1000 * DecimalKilobyte
	DecimalGigabyte uint64 = 1000 * DecimalMegabyte
)

// Unit names shared by every format.
const (
	NameKB = "KB"
	NameMB = "MB"
	NameGB = "GB"
)

// thresholds is one family of KB/MB/GB divisors.
type thresholds struct {
	kb, mb, gb uint64
}

var (
	binary  = thresholds{kb: Kilobyte, mb: Megabyte, gb: Gigabyte}
	decimal = thresholds{kb: DecimalKilobyte, mb: DecimalMegabyte, gb: DecimalGigabyte}
)

// bucket returns 0, 1 or 2 for the KB, MB and GB ranges.
func (t thresholds) bucket(size uint64) int {
	switch {
	case size < t.mb:
		return 0
	case size < t.gb:
		return 1
	default:
		return 2
	}
}

func (t thresholds) divisor(size uint64) uint64 {
	return [...]uint64{t.kb, t.mb, t.gb}[t.bucket(size)]
}

func (t thresholds) name(size uint64) string {
	return [...]string{NameKB, NameMB, NameGB}[t.bucket(size)]
}

// Conventional is old-school formatting: a megabyte is 1024 kilobytes.
type Conventional struct{}

// Divisor implements Format.
func (Conventional) Divisor(size uint64) uint64 { return binary.divisor(size) }

// Name implements Format.
func (Conventional) Name(size uint64) string { return binary.name(size) }

func (Conventional) String() string { return "conventional" }

// Decimal formats with powers of 1000, the way drive vendors count.
//
// Decimal buckets are labeled with the binary names, so 1,000,000 bytes
// reads "1.00 MB" under both formats.
type Decimal struct{}

// Divisor implements Format.
func (Decimal) Divisor(size uint64) uint64 { return decimal.divisor(size) }

// Name implements Format.
func (Decimal) Name(size uint64) string { return decimal.name(size) }

func (Decimal) String() string { return "decimal" }
