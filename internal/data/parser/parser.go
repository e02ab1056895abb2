package parser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/penwyp/go-attendance-monitor/internal/core/model"
	"github.com/penwyp/go-attendance-monitor/internal/util"
)

// Column headers of a Zoom participant export.
const (
	ColumnName          = "Name (Original Name)"
	ColumnNameShort     = "Name"
	ColumnEmail         = "User Email"
	ColumnJoinTime      = "Join Time"
	ColumnLeaveTime     = "Leave Time"
	ColumnDuration      = "Duration (Minutes)"
	ColumnGuest         = "Guest"
	ColumnInWaitingRoom = "In Waiting Room"
)

const utf8BOM = "\ufeff"

// ErrMissingColumn is returned when a required column is absent from the header.
var ErrMissingColumn = errors.New("missing required column")

// Options controls which rows the parser keeps.
type Options struct {
	// SkipWaitingRoom drops rows the platform flags as spent in the waiting room.
	SkipWaitingRoom bool
	// TimeProvider resolves naive timestamps; the global provider when nil.
	TimeProvider *util.TimeProvider
}

// Stats counts what happened to the rows of one parse.
type Stats struct {
	Rows        int
	Kept        int
	Malformed   int
	Unparsable  int
	WaitingRoom int
}

// Parser reads attendance exports into rows.
type Parser struct {
	opts  Options
	stats Stats
}

// NewParser creates a new Parser instance.
func NewParser(opts Options) *Parser {
	if opts.TimeProvider == nil {
		opts.TimeProvider = util.GetTimeProvider()
	}
	return &Parser{opts: opts}
}

// Stats returns the counters of the last parse.
func (p *Parser) Stats() Stats {
	return p.stats
}

// ParseFile parses the attendance export at path.
func (p *Parser) ParseFile(path string) ([]model.AttendanceRow, error) {
	util.LogDebugf("Start parsing attendance file: %s", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open attendance file: %w", err)
	}
	defer file.Close()

	rows, err := p.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Parse reads a CSV attendance export. Rows whose timestamps cannot be read,
// or whose leave time precedes their join time, are skipped and counted.
func (p *Parser) Parse(r io.Reader) ([]model.AttendanceRow, error) {
	start := time.Now()
	p.stats = Stats{}

	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty attendance export")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols, err := newColumnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []model.AttendanceRow
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if isBlank(record) {
			continue
		}
		p.stats.Rows++

		row, err := p.parseRecord(cols, record)
		if err != nil {
			if errors.Is(err, model.ErrMalformedInterval) {
				p.stats.Malformed++
			} else {
				p.stats.Unparsable++
			}
			util.LogWarnf("Skip attendance row at line %d: %v", line, err)
			continue
		}
		if row.InWaitingRoom && p.opts.SkipWaitingRoom {
			p.stats.WaitingRoom++
			util.LogDebugf("Skip waiting room row at line %d: %s", line, row.DisplayName)
			continue
		}

		rows = append(rows, row)
		p.stats.Kept++
	}

	util.LogDebugf("Attendance parsing finished: duration %v, rows %d, kept %d, malformed %d, unparsable %d, waiting room %d",
		time.Since(start), p.stats.Rows, p.stats.Kept, p.stats.Malformed, p.stats.Unparsable, p.stats.WaitingRoom)
	return rows, nil
}

func (p *Parser) parseRecord(cols columnIndex, record []string) (model.AttendanceRow, error) {
	row := model.AttendanceRow{
		DisplayName:   strings.TrimSpace(cols.get(record, cols.name)),
		Email:         strings.TrimSpace(cols.get(record, cols.email)),
		Guest:         parseYesNo(cols.get(record, cols.guest)),
		InWaitingRoom: parseYesNo(cols.get(record, cols.waitingRoom)),
	}

	var err error
	if row.Join, err = p.opts.TimeProvider.ParseDayFirst(cols.get(record, cols.join)); err != nil {
		return row, fmt.Errorf("join time: %w", err)
	}
	if row.Leave, err = p.opts.TimeProvider.ParseDayFirst(cols.get(record, cols.leave)); err != nil {
		return row, fmt.Errorf("leave time: %w", err)
	}
	if row.Leave.Before(row.Join) {
		return row, fmt.Errorf("%s joined %s, left %s: %w",
			row.DisplayName, row.Join.Format(time.DateTime), row.Leave.Format(time.DateTime), model.ErrMalformedInterval)
	}

	if minutes := strings.TrimSpace(cols.get(record, cols.duration)); minutes != "" {
		if n, err := strconv.Atoi(minutes); err == nil {
			row.Duration = time.Duration(n) * time.Minute
		}
	}
	return row, nil
}

// columnIndex maps column roles to positions; -1 for absent optional columns.
type columnIndex struct {
	name, email, join, leave, duration, guest, waitingRoom int
}

func newColumnIndex(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, utf8BOM)))
		if _, dup := positions[h]; !dup {
			positions[h] = i
		}
	}
	lookup := func(names ...string) int {
		for _, n := range names {
			if i, ok := positions[strings.ToLower(n)]; ok {
				return i
			}
		}
		return -1
	}

	cols := columnIndex{
		name:        lookup(ColumnName, ColumnNameShort),
		email:       lookup(ColumnEmail),
		join:        lookup(ColumnJoinTime),
		leave:       lookup(ColumnLeaveTime),
		duration:    lookup(ColumnDuration),
		guest:       lookup(ColumnGuest),
		waitingRoom: lookup(ColumnInWaitingRoom),
	}

	var missing []string
	if cols.name < 0 {
		missing = append(missing, ColumnName)
	}
	if cols.join < 0 {
		missing = append(missing, ColumnJoinTime)
	}
	if cols.leave < 0 {
		missing = append(missing, ColumnLeaveTime)
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

func (c columnIndex) get(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

func parseYesNo(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "y", "true", "1", "sí", "si":
		return true
	default:
		return false
	}
}

// skipBOM drops a leading UTF-8 byte order mark, which spreadsheet exports often carry.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && string(b) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
