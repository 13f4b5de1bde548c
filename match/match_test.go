package match

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoad_JSON
func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.json")
	data := []byte(`{
		"title": "Test",
		"entities": [
			{"id": "p1", "name": "One", "number": 7, "role": "LW",
			 "samples": [{"x": 10, "y": 20, "t": 5, "confidence": 0.9}]}
		]
	}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(m.Entities) != 1 || m.Entities[0].Number != 7 {
		t.Errorf("unexpected match content: %+v", m)
	}
	if len(m.Entities[0].Samples) != 1 || m.Entities[0].Samples[0].T != 5 {
		t.Errorf("samples not loaded: %+v", m.Entities[0].Samples)
	}
}

// TestMatch_TimeBounds
func TestMatch_TimeBounds(t *testing.T) {
	m := Demo(30)

	lo, hi, ok := m.TimeBounds()
	if !ok {
		t.Fatal("demo match should have samples")
	}
	if lo != 0 || hi < 29.5 {
		t.Errorf("bounds: got [%v, %v]", lo, hi)
	}

	empty := &Match{}
	if _, _, ok := empty.TimeBounds(); ok {
		t.Error("empty match should report no bounds")
	}
}

// TestDemo_Shape verifies a full roster with in-range samples
func TestDemo_Shape(t *testing.T) {
	m := Demo(10)

	if len(m.Entities) != 11 {
		t.Fatalf("expected 11 entities, got %d", len(m.Entities))
	}
	for _, e := range m.Entities {
		if e.ID == "" || len(e.Samples) == 0 {
			t.Fatalf("entity %q incomplete", e.Name)
		}
		for _, s := range e.Samples {
			if s.X < 0 || s.X > 100 || s.Y < 0 || s.Y > 100 {
				t.Fatalf("sample out of field range: %+v", s)
			}
			if s.Confidence < 0.5 || s.Confidence > 1 {
				t.Fatalf("confidence out of range: %v", s.Confidence)
			}
		}
	}
}
