package model

// DatumKind discriminates the two shapes of coverage observation.
type DatumKind int

const (
	// DatumLine is a line-level hit count.
	DatumLine DatumKind = iota
	// DatumBranch is the hit count of one branch originating at a line.
	DatumBranch
)

func (k DatumKind) String() string {
	switch k {
	case DatumLine:
		return "line"
	case DatumBranch:
		return "branch"
	default:
		return "unknown"
	}
}

// Datum is a single observation from a coverage report.
// Block and Branch are only meaningful when Kind is DatumBranch.
type Datum struct {
	Kind   DatumKind
	Line   int
	Block  int
	Branch int
	Hits   int
}

// LineDatum builds a line-level datum.
func LineDatum(line, hits int) Datum {
	return Datum{Kind: DatumLine, Line: line, Hits: hits}
}

// BranchDatum builds a branch-level datum.
func BranchDatum(line, block, branch, hits int) Datum {
	return Datum{Kind: DatumBranch, Line: line, Block: block, Branch: branch, Hits: hits}
}

// IsLine reports whether d is a line datum.
func (d Datum) IsLine() bool { return d.Kind == DatumLine }

// IsBranch reports whether d is a branch datum.
func (d Datum) IsBranch() bool { return d.Kind == DatumBranch }

// BranchSummary counts the branches at one line.
type BranchSummary struct {
	Total   int `json:"total_branches" yaml:"total_branches"`
	Covered int `json:"covered_branches" yaml:"covered_branches"`
}

// Complete reports whether every branch was taken.
func (s BranchSummary) Complete() bool {
	return s.Covered >= s.Total
}

// FileCoverage maps an absolute source path to its data in report order.
type FileCoverage map[Path][]Datum
