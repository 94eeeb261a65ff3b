package internal

import (
	"testing"

	"github.com/zft5024/manus-aicad/testutil"
)

func TestFeedbackStore_AddContactAndList(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()

	fb := NewFeedbackStore(NewKVStore(db))

	if err := fb.AddContact("ada@example.com", "Love the gears"); err != nil {
		t.Fatalf("AddContact() error = %v", err)
	}
	if err := fb.AddContact("bob@example.com", "Export to STL?"); err != nil {
		t.Fatalf("AddContact() error = %v", err)
	}

	contacts, err := fb.Contacts()
	if err != nil {
		t.Fatalf("Contacts() error = %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("Contacts() returned %d records, want 2", len(contacts))
	}
	for _, c := range contacts {
		if c.ID == "" || c.CreatedAt == "" {
			t.Errorf("contact record missing id or timestamp: %+v", c)
		}
	}
}

func TestFeedbackStore_AddContactRequiresFields(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()

	fb := NewFeedbackStore(NewKVStore(db))

	if err := fb.AddContact("", "message"); err == nil {
		t.Error("AddContact() accepted an empty email")
	}
	if err := fb.AddContact("ada@example.com", "   "); err == nil {
		t.Error("AddContact() accepted a blank message")
	}
}

func TestFeedbackStore_AddWaitlist(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()

	fb := NewFeedbackStore(NewKVStore(db))

	if err := fb.AddWaitlist("  ada@example.com  "); err != nil {
		t.Fatalf("AddWaitlist() error = %v", err)
	}

	entries, err := fb.Waitlist()
	if err != nil {
		t.Fatalf("Waitlist() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Waitlist() returned %d entries, want 1", len(entries))
	}
	if entries[0].Email != "ada@example.com" {
		t.Errorf("stored email = %q, want trimmed address", entries[0].Email)
	}
}

func TestFeedbackStore_AddWaitlistRejectsEmpty(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()

	fb := NewFeedbackStore(NewKVStore(db))

	if err := fb.AddWaitlist("   "); err == nil {
		t.Error("AddWaitlist() accepted a blank email")
	}
}

func TestFeedbackStore_SkipsMalformedRecords(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()

	testutil.InsertKV(t, db, ContactKeyPrefix+"bad", "{not json")
	testutil.InsertKV(t, db, WaitlistKeyPrefix+"bad", "also not json")

	fb := NewFeedbackStore(NewKVStore(db))

	if err := fb.AddContact("ada@example.com", "hello"); err != nil {
		t.Fatalf("AddContact() error = %v", err)
	}

	contacts, err := fb.Contacts()
	if err != nil {
		t.Fatalf("Contacts() error = %v", err)
	}
	if len(contacts) != 1 {
		t.Errorf("Contacts() returned %d records, want 1 (malformed skipped)", len(contacts))
	}

	entries, err := fb.Waitlist()
	if err != nil {
		t.Fatalf("Waitlist() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Waitlist() returned %d entries, want 0", len(entries))
	}
}
