package controller

// resultItem is one flagged node in the TUI list.
type resultItem struct {
	name     string
	kind     string
	location string
	coverage float64
	listing  string
}

func (r resultItem) FilterValue() string {
	return r.name + " " + r.location
}
