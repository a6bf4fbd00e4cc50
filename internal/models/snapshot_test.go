package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// TestSnapshotRoundTrip verifies that encoding and decoding preserves id,
// creation time, type, metrics, derived fields and interaction count, in
// order.
func TestSnapshotRoundTrip(t *testing.T) {
	run, err := New(runningInput(), testTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	run.RecordInteraction()
	ride, err := New(cyclingInput(), testTime.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := EncodeSnapshots([]*Workout{run, ride})
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	restored, err := DecodeSnapshots(data)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(restored) != 2 {
		t.Fatalf("restored %d workouts, want 2", len(restored))
	}

	r0 := restored[0]
	if r0.ID != run.ID {
		t.Errorf("id = %q, want %q", r0.ID, run.ID)
	}
	if !r0.CreatedAt.Equal(run.CreatedAt) {
		t.Errorf("createdAt = %v, want %v", r0.CreatedAt, run.CreatedAt)
	}
	if r0.Interactions != 1 {
		t.Errorf("interactions = %d, want 1", r0.Interactions)
	}
	if r0.Running == nil || r0.Running.PaceMinPerKm != run.Running.PaceMinPerKm {
		t.Error("running payload not preserved")
	}
	if r0.Description != run.Description {
		t.Errorf("description = %q, want %q", r0.Description, run.Description)
	}

	r1 := restored[1]
	if r1.ID != ride.ID || r1.Cycling == nil || r1.Cycling.SpeedKmPerH != 20.0 {
		t.Error("cycling record not preserved")
	}
}

// TestRestoreRecomputesDescription verifies a stale persisted description
// is never trusted: the restored record's description comes from its type
// and date.
func TestRestoreRecomputesDescription(t *testing.T) {
	w, err := New(runningInput(), testTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := w.ToSnapshot()
	snap.Description = "stale text from an old locale"

	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("restore error: %v", err)
	}
	if restored.Description != "Running on April 14" {
		t.Errorf("description = %q, want %q", restored.Description, "Running on April 14")
	}
}

// TestRestoreRejectsMissingVariantField verifies a snapshot without its
// variant payload field fails rather than producing a half-built record.
func TestRestoreRejectsMissingVariantField(t *testing.T) {
	w, err := New(runningInput(), testTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := w.ToSnapshot()
	snap.CadenceSpm = nil

	if _, err := Restore(snap); err == nil {
		t.Fatal("expected error for missing cadence")
	}
}

// TestRestoreRejectsInvalidMetrics verifies stored metrics are re-validated
// on restore.
func TestRestoreRejectsInvalidMetrics(t *testing.T) {
	w, err := New(cyclingInput(), testTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := w.ToSnapshot()
	snap.DistanceKm = -5

	if _, err := Restore(snap); !errors.Is(err, ErrNonPositive) {
		t.Fatalf("err = %v, want ErrNonPositive", err)
	}
}

// TestDecodeSnapshotsCorruptJSON verifies unparseable bytes are an error,
// leaving graceful degradation to the caller.
func TestDecodeSnapshotsCorruptJSON(t *testing.T) {
	if _, err := DecodeSnapshots([]byte("{not json")); err == nil {
		t.Fatal("expected error for corrupt JSON")
	}
}

// TestSnapshotWireFormat verifies the persisted JSON shape: position as a
// [lat,lng] pair and only the variant's own optional field present.
func TestSnapshotWireFormat(t *testing.T) {
	w, err := New(runningInput(), testTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := json.Marshal(w.ToSnapshot())
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	pos, ok := m["position"].([]any)
	if !ok || len(pos) != 2 {
		t.Fatalf("position = %v, want [lat lng]", m["position"])
	}
	if pos[0].(float64) != 10 || pos[1].(float64) != 20 {
		t.Errorf("position = %v, want [10 20]", pos)
	}
	if _, present := m["cadenceSpm"]; !present {
		t.Error("cadenceSpm missing from running snapshot")
	}
	if _, present := m["elevationGainM"]; present {
		t.Error("elevationGainM must be absent from a running snapshot")
	}
}
