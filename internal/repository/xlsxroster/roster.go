package xlsxroster

import (
	"fmt"
	"strings"

	"github.com/attendly/attendance-backend-go/internal/domain/roster"
	"github.com/xuri/excelize/v2"
)

type identity struct {
	id   string
	name string
}

// Roster is the xlsx-backed implementation of roster.Roster. The workbook is
// read once at construction; lookups afterwards are map hits on the loaded
// set, with no further file access.
type Roster struct {
	employees []roster.Employee
	index     map[identity]struct{}
}

// New loads the master roster from the first sheet of an xlsx workbook. The
// sheet is expected to carry a header row followed by one employee per row:
// ID in the first column, name in the second. Cell values are taken as raw
// strings; nothing is trimmed or case-folded.
func New(path string) (*Roster, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", roster.ErrRosterUnavailable, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", roster.ErrRosterUnavailable, path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %q: %v", roster.ErrRosterUnavailable, sheets[0], err)
	}

	r := &Roster{
		index: make(map[identity]struct{}),
	}

	for i, row := range rows {
		if i == 0 {
			// Header row ("EmpID", "Name")
			continue
		}
		if len(row) < 2 {
			continue
		}
		id, name := row[0], row[1]
		if strings.TrimSpace(id) == "" && strings.TrimSpace(name) == "" {
			continue
		}
		r.employees = append(r.employees, roster.Employee{ID: id, Name: name})
		r.index[identity{id: id, name: name}] = struct{}{}
	}

	if len(r.employees) == 0 {
		return nil, fmt.Errorf("%w: %s", roster.ErrRosterEmpty, path)
	}

	return r, nil
}

// Validate implements roster.Roster.
func (r *Roster) Validate(employeeID, name string) bool {
	_, ok := r.index[identity{id: employeeID, name: name}]
	return ok
}

// Count implements roster.Roster.
func (r *Roster) Count() int {
	return len(r.employees)
}
