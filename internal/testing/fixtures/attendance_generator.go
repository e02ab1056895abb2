package fixtures

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ExportTimeLayout is the day-first layout attendance exports use.
const ExportTimeLayout = "02/01/2006 15:04:05"

// AttendanceEntry is one row of a generated Zoom participant export
type AttendanceEntry struct {
	Name          string
	Email         string
	Join          time.Time
	Leave         time.Time
	Guest         bool
	InWaitingRoom bool
}

// TestDataGenerator writes roster and attendance files for tests
type TestDataGenerator struct {
	baseDir string
}

// NewTestDataGenerator creates a new test data generator
func NewTestDataGenerator(baseDir string) *TestDataGenerator {
	return &TestDataGenerator{
		baseDir: baseDir,
	}
}

// At returns 31 March 2023 at the given local wall-clock time in loc.
func At(loc *time.Location, hour, minute int) time.Time {
	return time.Date(2023, 3, 31, hour, minute, 0, 0, loc)
}

// WriteRoster writes one name per line and returns the file path
func (g *TestDataGenerator) WriteRoster(name string, names []string) (string, error) {
	path := filepath.Join(g.baseDir, name)
	content := strings.Join(names, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteAttendance writes a Zoom-style participant export and returns the file path
func (g *TestDataGenerator) WriteAttendance(name string, entries []AttendanceEntry) (string, error) {
	path := filepath.Join(g.baseDir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	header := []string{
		"Name (Original Name)", "User Email", "Join Time", "Leave Time",
		"Duration (Minutes)", "Guest", "Recording Consent", "In Waiting Room",
	}
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, e := range entries {
		record := []string{
			e.Name,
			e.Email,
			e.Join.Format(ExportTimeLayout),
			e.Leave.Format(ExportTimeLayout),
			fmt.Sprintf("%d", int(e.Leave.Sub(e.Join).Minutes())),
			yesNo(e.Guest),
			"Yes",
			yesNo(e.InWaitingRoom),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return path, nil
}

// GenerateScenario writes the roster and attendance of a short class where
// one student attends three quarters of the session, one never joins, and an
// unknown guest drops in. It returns the roster and attendance paths.
func (g *TestDataGenerator) GenerateScenario(loc *time.Location) (string, string, error) {
	roster, err := g.WriteRoster("students.txt", []string{"Ana Pérez", "Luis Gómez"})
	if err != nil {
		return "", "", err
	}
	attendance, err := g.WriteAttendance("session.csv", []AttendanceEntry{
		{Name: "ANA PEREZ", Email: "ana@example.edu", Join: At(loc, 10, 0), Leave: At(loc, 10, 30)},
		{Name: "Prof Diaz", Email: "diaz@example.edu", Join: At(loc, 9, 55), Leave: At(loc, 10, 35)},
		{Name: "Unknown Guest", Join: At(loc, 10, 5), Leave: At(loc, 10, 20), Guest: true},
	})
	if err != nil {
		return "", "", err
	}
	return roster, attendance, nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
