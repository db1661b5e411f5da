package writer

import (
	"errors"
	"testing"

	"github.com/philipp01105/pdflog/core"
)

func TestRecorder(t *testing.T) {
	rec := NewRecorder()

	r := core.GetRecord()
	r.Level = core.WarningLevel
	r.Message = "first"
	rec.WriteMessage(r)
	core.PutRecord(r)

	rec.WriteMessage(newTestRecord(core.InfoLevel, "second"))
	rec.WriteMessage(nil)

	got := rec.Records()
	if len(got) != 2 || rec.Len() != 2 {
		t.Fatalf("Expected 2 records, got %d", len(got))
	}
	if got[0].Message != "first" || got[0].Level != core.WarningLevel {
		t.Errorf("Record copy was not kept after pool reuse: %+v", got[0])
	}
	if got[1].Message != "second" {
		t.Errorf("Unexpected second record: %+v", got[1])
	}

	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("Expected empty recorder after Reset, got %d", rec.Len())
	}
}

func TestNopAndFunc(t *testing.T) {
	if err := Nop.WriteMessage(newTestRecord(core.SevereLevel, "gone")); err != nil {
		t.Errorf("Nop.WriteMessage() error = %v", err)
	}

	var seen []string
	f := Func(func(r *core.Record) error {
		seen = append(seen, r.Message)
		if r.Level == core.SevereLevel {
			return errors.New("rejected")
		}
		return nil
	})

	if err := f.WriteMessage(newTestRecord(core.InfoLevel, "ok")); err != nil {
		t.Errorf("Func.WriteMessage() error = %v", err)
	}
	if err := f.WriteMessage(newTestRecord(core.SevereLevel, "bad")); err == nil {
		t.Error("Expected error from Func")
	}
	if err := f.WriteMessage(nil); err != nil {
		t.Errorf("Func.WriteMessage(nil) error = %v", err)
	}
	if len(seen) != 2 {
		t.Errorf("Expected 2 calls, got %d", len(seen))
	}
}

func TestStats_Reset(t *testing.T) {
	s := NewStats()
	s.IncrementProcessed()
	s.IncrementProcessed()
	s.IncrementFailed()

	snap := s.GetSnapshot()
	if snap.ProcessedTotal != 2 || snap.FailedTotal != 1 {
		t.Errorf("Unexpected snapshot: %+v", snap)
	}

	s.Reset()
	if snap := s.GetSnapshot(); snap != (Snapshot{}) {
		t.Errorf("Expected zero snapshot after Reset, got %+v", snap)
	}
}
