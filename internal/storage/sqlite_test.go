package storage

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "entries.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleEntries() []Entry {
	return []Entry{
		{Key: "One2023", Source: SourcePublication, Kind: "article", Category: "journal",
			Title: "Newest", Venue: "J", Year: 2023,
			Fields: map[string]string{"doi": "10.1/a"}},
		{Key: "Two2019", Source: SourcePublication, Kind: "inproceedings", Category: "conference",
			Title: "Older", Venue: "Proc", Year: 2019},
		{Key: "Talk2021", Source: SourceTalk, Kind: "misc", Category: "other",
			Title: "A Talk", Year: 2021},
	}
}

func TestRebuildAndListAll(t *testing.T) {
	db := openTestDB(t)

	n, err := db.Rebuild(sampleEntries())
	if err != nil {
		t.Fatalf("Rebuild() error: %v", err)
	}
	if n != 3 {
		t.Errorf("Rebuild() = %d, want 3", n)
	}

	entries, err := db.ListAll()
	if err != nil {
		t.Fatalf("ListAll() error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("ListAll() returned %d entries, want 3", len(entries))
	}
	// Newest first
	if entries[0].Key != "One2023" || entries[2].Key != "Two2019" {
		t.Errorf("order wrong: %s, %s, %s", entries[0].Key, entries[1].Key, entries[2].Key)
	}
	if entries[0].Fields["doi"] != "10.1/a" {
		t.Errorf("fields roundtrip lost doi: %v", entries[0].Fields)
	}
}

func TestRebuild_ReplacesPreviousContents(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.Rebuild(sampleEntries()); err != nil {
		t.Fatalf("first Rebuild() error: %v", err)
	}
	if _, err := db.Rebuild(sampleEntries()[:1]); err != nil {
		t.Fatalf("second Rebuild() error: %v", err)
	}

	entries, err := db.ListAll()
	if err != nil {
		t.Fatalf("ListAll() error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("ListAll() returned %d entries after rebuild, want 1", len(entries))
	}
}

func TestListBySource(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Rebuild(sampleEntries()); err != nil {
		t.Fatalf("Rebuild() error: %v", err)
	}

	talks, err := db.ListBySource(SourceTalk)
	if err != nil {
		t.Fatalf("ListBySource() error: %v", err)
	}
	if len(talks) != 1 || talks[0].Key != "Talk2021" {
		t.Errorf("ListBySource(talk) = %v", talks)
	}
}

func TestCountByCategory(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Rebuild(sampleEntries()); err != nil {
		t.Fatalf("Rebuild() error: %v", err)
	}

	counts, err := db.CountByCategory()
	if err != nil {
		t.Fatalf("CountByCategory() error: %v", err)
	}
	if counts["journal"] != 1 || counts["conference"] != 1 || counts["other"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}
