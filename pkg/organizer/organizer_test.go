package organizer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	fsadapter "github.com/bft-labs/fileorg/internal/adapters/fs"
)

// countingFS records every call and fails if any is made.
type countingFS struct {
	calls int
}

func (c *countingFS) CreationTime(string) (time.Time, error) { c.calls++; return time.Time{}, nil }
func (c *countingFS) Exists(string) (bool, error)             { c.calls++; return false, nil }
func (c *countingFS) Remove(string) error                     { c.calls++; return nil }
func (c *countingFS) Copy(string, string) error               { c.calls++; return nil }
func (c *countingFS) Rename(string, string) error             { c.calls++; return nil }
func (c *countingFS) ListFiles(string) ([]string, error)      { c.calls++; return nil, nil }

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func setup(t *testing.T, files map[string]string) (string, string) {
	t.Helper()
	tmp := t.TempDir()
	origin := filepath.Join(tmp, "origin")
	dest := filepath.Join(tmp, "dest")
	if err := os.MkdirAll(origin, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		mustWrite(t, filepath.Join(origin, name), content)
	}
	return origin, dest
}

func TestOrganize_EmptySelectionTouchesNothing(t *testing.T) {
	fake := &countingFS{}
	o := New(WithFileSystem(fake))

	orderings := []Ordering{nil, Alphabetical{}, ReverseAlphabetical{}, CreationTime{}, PatternNumeric{Pattern: "_"}}
	for _, ord := range orderings {
		_, err := o.Organize(Request{
			Origin:      "/origin",
			Destination: "/dest",
			Ordering:    ord,
			Numbering:   Numbering{Enabled: true},
			Options:     TransferOptions{ReplaceExisting: true},
		})
		if !errors.Is(err, ErrNoSelection) {
			t.Fatalf("expected ErrNoSelection, got %v", err)
		}
	}
	if fake.calls != 0 {
		t.Fatalf("expected zero file system operations, got %d", fake.calls)
	}
}

func TestOrganize_EmptySelectionLeavesDirectoriesUnchanged(t *testing.T) {
	origin, dest := setup(t, map[string]string{"a.txt": "a"})
	mustWrite(t, filepath.Join(dest, "000.txt"), "old")

	_, err := New().Organize(Request{Origin: origin, Destination: dest, Files: []string{}})
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if got := dirNames(t, origin); !slices.Equal(got, []string{"a.txt"}) {
		t.Fatalf("origin changed: %v", got)
	}
	if got := dirNames(t, dest); !slices.Equal(got, []string{"000.txt"}) {
		t.Fatalf("destination changed: %v", got)
	}
}

func TestOrganize_NumericOrderWithNumbering(t *testing.T) {
	origin, dest := setup(t, map[string]string{
		"a_2.txt":  "two",
		"a_10.txt": "ten",
		"a_1.txt":  "one",
	})

	report, err := New().Organize(Request{
		Origin:      origin,
		Destination: dest,
		Files:       []string{"a_2.txt", "a_10.txt", "a_1.txt"},
		Ordering:    PatternNumeric{Pattern: "_"},
		Numbering:   Numbering{Enabled: true, DigitWidth: 3},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{"000.txt": "one", "001.txt": "two", "002.txt": "ten"}
	for name, content := range want {
		b, err := os.ReadFile(filepath.Join(dest, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(b) != content {
			t.Fatalf("%s: expected %q, got %q", name, content, b)
		}
	}
	if got := dirNames(t, origin); len(got) != 0 {
		t.Fatalf("expected origin emptied by move, got %v", got)
	}
	if report.Count(OutcomeMoved) != 3 {
		t.Fatalf("expected 3 moves, got %+v", report.Results)
	}
}

func TestPlan_TokenAfterDigits(t *testing.T) {
	o := New(WithFileSystem(&countingFS{}))
	plan, err := o.Plan(Request{
		Origin:      "/origin",
		Destination: "/dest",
		Files:       []string{"b.ext", "a.ext", "c.ext"},
		Numbering:   Numbering{Enabled: true, DigitWidth: 2, Placement: After, Token: "img"},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []Transfer{
		{Source: "a.ext", Destination: "img00.ext"},
		{Source: "b.ext", Destination: "img01.ext"},
		{Source: "c.ext", Destination: "img02.ext"},
	}
	if !slices.Equal(plan.Transfers, want) {
		t.Fatalf("expected %v, got %v", want, plan.Transfers)
	}
}

func TestPlan_ReverseWithRemovalAndLowercase(t *testing.T) {
	o := New(WithFileSystem(&countingFS{}))
	plan, err := o.Plan(Request{
		Files:    []string{"My Photo A.JPG", "My Photo B.JPG"},
		Ordering: ReverseAlphabetical{},
		Removal:  Removal{Enabled: true, Characters: " "},
		Options:  TransferOptions{Lowercase: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []Transfer{
		{Source: "My Photo B.JPG", Destination: "myphotob.jpg"},
		{Source: "My Photo A.JPG", Destination: "myphotoa.jpg"},
	}
	if !slices.Equal(plan.Transfers, want) {
		t.Fatalf("expected %v, got %v", want, plan.Transfers)
	}
}

func TestOrganize_ReplaceAndSkip(t *testing.T) {
	for _, replace := range []bool{false, true} {
		origin, dest := setup(t, map[string]string{"x.txt": "new", "y.txt": "second"})
		mustWrite(t, filepath.Join(dest, "001.txt"), "old")

		report, err := New().Organize(Request{
			Origin:      origin,
			Destination: dest,
			Files:       []string{"x.txt", "y.txt"},
			Numbering:   Numbering{Enabled: true, DigitWidth: 3},
			Options:     TransferOptions{ReplaceExisting: replace},
		})
		if err != nil {
			t.Fatalf("replace=%v: %v", replace, err)
		}

		b, err := os.ReadFile(filepath.Join(dest, "001.txt"))
		if err != nil {
			t.Fatal(err)
		}
		if replace {
			if string(b) != "second" || !report.Results[1].Replaced {
				t.Fatalf("expected 001.txt replaced, got %q %+v", b, report.Results[1])
			}
		} else {
			if string(b) != "old" || report.Results[1].Outcome != OutcomeSkippedExists {
				t.Fatalf("expected 001.txt kept, got %q %+v", b, report.Results[1])
			}
			if _, err := os.Stat(filepath.Join(origin, "y.txt")); err != nil {
				t.Fatalf("expected skipped source to remain: %v", err)
			}
		}
	}
}

func TestOrganize_TokenWithSeparatorStaysInDestination(t *testing.T) {
	origin, dest := setup(t, map[string]string{"a.txt": "alpha"})

	report, err := New().Organize(Request{
		Origin:      origin,
		Destination: dest,
		Files:       []string{"a.txt"},
		Numbering:   Numbering{Enabled: true, DigitWidth: 3, Token: "../"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := report.Results[0].Outcome; got != OutcomeSkippedInvalidName {
		t.Fatalf("expected skipped-invalid-name, got %s", got)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dest), "000.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no file outside the destination, stat err=%v", err)
	}
	if got := dirNames(t, origin); !slices.Equal(got, []string{"a.txt"}) {
		t.Fatalf("expected source to stay in origin, got %v", got)
	}
}

func TestOrganize_DuplicateKeepsOrigin(t *testing.T) {
	origin, dest := setup(t, map[string]string{"a.txt": "a", "b.txt": "b"})

	report, err := New().Organize(Request{
		Origin:      origin,
		Destination: dest,
		Files:       []string{"a.txt", "b.txt"},
		Options:     TransferOptions{Duplicate: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := dirNames(t, origin); !slices.Equal(got, []string{"a.txt", "b.txt"}) {
		t.Fatalf("expected origin intact, got %v", got)
	}
	if got := dirNames(t, dest); !slices.Equal(got, []string{"a.txt", "b.txt"}) {
		t.Fatalf("expected copies in destination, got %v", got)
	}
	if report.Count(OutcomeDuplicated) != 2 {
		t.Fatalf("expected 2 duplicates, got %+v", report.Results)
	}
}

func TestOrganize_SavesReport(t *testing.T) {
	origin, dest := setup(t, map[string]string{"a.txt": "a"})
	repo := fsadapter.NewReportFileRepository(filepath.Join(t.TempDir(), "reports", "last.json"))

	_, err := New(WithReportRepository(repo)).Organize(Request{
		Origin:      origin,
		Destination: dest,
		Files:       []string{"a.txt", "missing.txt"},
	})
	if err == nil {
		t.Fatal("expected error for missing source")
	}

	saved, err := repo.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(saved.Results) != 1 || saved.Results[0].Outcome != OutcomeMoved {
		t.Fatalf("expected partial report with one move, got %+v", saved)
	}
	if saved.Origin != origin || saved.Destination != dest {
		t.Fatalf("unexpected report dirs %+v", saved)
	}
}

func TestListFiles(t *testing.T) {
	origin, _ := setup(t, map[string]string{"b.txt": "", "a.txt": ""})
	if err := os.Mkdir(filepath.Join(origin, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := New().ListFiles(origin)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{"a.txt", "b.txt"}) {
		t.Fatalf("expected sorted regular files, got %v", got)
	}
}
