package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	m "github.com/mouse-blink/undercover/internal/model"
)

var (
	// ErrReportNotFound is returned when the coverage report cannot be read.
	ErrReportNotFound = errors.New("coverage report not found")
	// ErrMalformedReport is returned for DA/BRDA records that cannot be parsed.
	ErrMalformedReport = errors.New("malformed coverage report")
	// ErrReportIsDir is returned when the report path names a directory.
	ErrReportIsDir = errors.New("coverage report is a directory")
)

// CoverageAdapter loads a coverage report into memory.
type CoverageAdapter interface {
	// Load reads the report at path. Relative source paths inside the report
	// are resolved against root.
	Load(ctx context.Context, path m.Path, root m.Path) (m.FileCoverage, error)
}

// LCOVAdapter reads LCOV tracefiles.
type LCOVAdapter struct {
	fs SourceFSAdapter
}

// NewLCOVAdapter constructs an LCOVAdapter reading through fs.
func NewLCOVAdapter(fs SourceFSAdapter) *LCOVAdapter {
	return &LCOVAdapter{fs: fs}
}

// Load reads and parses the LCOV file at path.
func (a *LCOVAdapter) Load(ctx context.Context, path m.Path, root m.Path) (m.FileCoverage, error) {
	info, err := a.fs.FileInfo(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, path)
		}

		return nil, fmt.Errorf("stat coverage report %s: %w", path, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrReportIsDir, path)
	}

	content, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read coverage report %s: %w", path, err)
	}

	return ParseLCOV(ctx, bytes.NewReader(content), func(sf string) m.Path {
		return a.fs.Abs(root, m.Path(sf))
	})
}

// ParseLCOV parses LCOV records from r. Only SF, DA, BRDA and end_of_record
// carry information for the engine; every other record is skipped. Data of a
// source file listed twice is appended in report order.
func ParseLCOV(ctx context.Context, r io.Reader, resolve func(sf string) m.Path) (m.FileCoverage, error) {
	coverage := make(m.FileCoverage)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current m.Path

	lineNo := 0

	for scanner.Scan() {
		lineNo++

		if lineNo%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record := strings.TrimSpace(scanner.Text())

		tag, value, found := strings.Cut(record, ":")
		if !found {
			if record == "end_of_record" {
				current = ""
			}

			continue
		}

		switch tag {
		case "SF":
			current = resolve(value)
			if _, ok := coverage[current]; !ok {
				coverage[current] = []m.Datum{}
			}
		case "DA":
			if current == "" {
				continue
			}

			d, err := parseDA(value)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedReport, lineNo, err)
			}

			coverage[current] = append(coverage[current], d)
		case "BRDA":
			if current == "" {
				continue
			}

			d, err := parseBRDA(value)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedReport, lineNo, err)
			}

			coverage[current] = append(coverage[current], d)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan coverage report: %w", err)
	}

	return coverage, nil
}

// parseDA parses `line,hits[,checksum]`.
func parseDA(value string) (m.Datum, error) {
	fields := strings.Split(value, ",")
	if len(fields) < 2 {
		return m.Datum{}, fmt.Errorf("DA:%s: want line,hits", value)
	}

	line, err := parseCount(fields[0])
	if err != nil {
		return m.Datum{}, fmt.Errorf("DA:%s: %w", value, err)
	}

	hits, err := parseCount(fields[1])
	if err != nil {
		return m.Datum{}, fmt.Errorf("DA:%s: %w", value, err)
	}

	return m.LineDatum(line, hits), nil
}

// parseBRDA parses `line,block,branch,taken`; a taken of "-" means the
// branch was never reached and counts as zero hits.
func parseBRDA(value string) (m.Datum, error) {
	fields := strings.Split(value, ",")
	if len(fields) != 4 {
		return m.Datum{}, fmt.Errorf("BRDA:%s: want line,block,branch,taken", value)
	}

	nums := make([]int, 3)

	for i := range nums {
		n, err := parseCount(fields[i])
		if err != nil {
			return m.Datum{}, fmt.Errorf("BRDA:%s: %w", value, err)
		}

		nums[i] = n
	}

	hits := 0

	if fields[3] != "-" {
		n, err := parseCount(fields[3])
		if err != nil {
			return m.Datum{}, fmt.Errorf("BRDA:%s: %w", value, err)
		}

		hits = n
	}

	return m.BranchDatum(nums[0], nums[1], nums[2], hits), nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}

	return n, nil
}
