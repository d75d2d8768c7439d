package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Brannonj96/RandomizeProjectMembers/types"
)

// ReadCSV parses a spreadsheet export into a static roster source.
//
// The expected layout mirrors the sheet the ranks are collected in: the
// header row holds a label for the name column followed by one project name
// per column; every following row holds a member name and their rank for
// each project.
//
//	member,alpha,beta,gamma
//	ada,1,3,2
//	grace,2,1,3
//
// Cells are trimmed of surrounding whitespace. A rank cell that is not an
// integer is rejected here with ErrInvalidRank; all other shape validation
// (rank ranges, duplicates, blank names) is left to the allocator so the
// failure is attributed consistently.
//
// Parameters:
//   - r: CSV data (header row required)
//
// Returns:
//   - *Static: Source holding the parsed projects and submissions
//   - error: Parse failure naming the offending row
func ReadCSV(r io.Reader) (*Static, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row lengths validated downstream

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading roster CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: CSV has no header row", types.ErrEmptyRoster)
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: header row has no project columns", types.ErrEmptyRoster)
	}
	projects := make([]string, len(header)-1)
	for i, name := range header[1:] {
		projects[i] = strings.TrimSpace(name)
	}

	subs := make([]types.Submission, 0, len(records)-1)
	for row, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		sub := types.Submission{
			Name:  strings.TrimSpace(record[0]),
			Ranks: make([]int, 0, len(record)-1),
		}
		for col, cell := range record[1:] {
			rank, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %q is not an integer",
					types.ErrInvalidRank, row+2, col+2, cell)
			}
			sub.Ranks = append(sub.Ranks, rank)
		}
		subs = append(subs, sub)
	}

	return NewStatic(projects, subs), nil
}
