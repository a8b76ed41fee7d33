package benchmark

import "strings"

// DefaultRegressionPercent is the regression tolerance applied to targets
// that do not override it.
const DefaultRegressionPercent = 5.0

// Target defines the performance budget for a family of benchmarks. Any of
// the three bounds may be nil, in which case that dimension is not checked.
type Target struct {
	MaxTimeNs            *float64
	MinThroughputMBps    *float64
	MaxMemoryBytes       *int64
	MaxRegressionPercent float64
	Description          string
}

// CatalogEntry associates a matcher key with a target. Entries are kept in
// a slice because substring matching precedence follows definition order.
type CatalogEntry struct {
	Key    string
	Target Target
}

// Catalog is the ordered table of performance targets.
type Catalog []CatalogEntry

func nsTarget(ns float64, desc string) Target {
	return Target{MaxTimeNs: &ns, MaxRegressionPercent: DefaultRegressionPercent, Description: desc}
}

func throughputTarget(mbps float64, desc string) Target {
	return Target{MinThroughputMBps: &mbps, MaxRegressionPercent: DefaultRegressionPercent, Description: desc}
}

func memoryTarget(bytes int64, desc string) Target {
	return Target{MaxMemoryBytes: &bytes, MaxRegressionPercent: DefaultRegressionPercent, Description: desc}
}

// DefaultCatalog returns the performance targets for each benchmark
// category.
func DefaultCatalog() Catalog {
	return Catalog{
		{"ValueConstruction", nsTarget(1.0, "Value construction must be < 1 CPU cycle")},
		{"TypeChecking", nsTarget(1.0, "Type checking must be < 1 CPU cycle")},
		{"TypeConversion", nsTarget(5.0, "Type conversion must be < 5 CPU cycles")},
		{"LEB128", nsTarget(10.0, "LEB128 decoding must be < 10ns")},
		{"MagicNumber", nsTarget(1.0, "Magic number validation must be < 1ns")},
		{"ModuleParsing", throughputTarget(100.0, "Module parsing must achieve > 100MB/s")},
		{"UTF8_Validation_ASCII", nsTarget(20.0, "ASCII UTF-8 validation must be < 20ns")},
		{"UTF8_Validation_Multibyte", nsTarget(50.0, "Multibyte UTF-8 validation must be < 50ns")},
		{"ErrorConstruction", nsTarget(50.0, "Error construction must be < 50ns")},
		{"Expected_Success", nsTarget(1.0, "Expected<T> success path must be < 1ns")},
		{"PlatformDetection", nsTarget(100.0, "Platform detection must be < 100ns")},
		{"ByteSwap", nsTarget(2.0, "Byte swapping must be < 2ns")},
		{"ZeroAllocation", memoryTarget(0, "Core operations must perform zero allocations")},
		{"ValueMemoryLayout", memoryTarget(16, "Value storage must be <= 16 bytes per value")},
	}
}

// Match resolves the target for a benchmark name. An exact key match wins;
// otherwise the first key in catalog order that occurs as a substring of
// the name is used. Returns nil when no target applies.
func (c Catalog) Match(name string) *Target {
	for i := range c {
		if c[i].Key == name {
			return &c[i].Target
		}
	}
	for i := range c {
		if strings.Contains(name, c[i].Key) {
			return &c[i].Target
		}
	}
	return nil
}
