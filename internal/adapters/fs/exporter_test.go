package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lexlabs/muse/internal/domain"
	"github.com/lexlabs/muse/internal/group"
)

func TestExporter_Export(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "rhymes.json")

	res, err := group.By([]group.Record{
		{"word": "door hinge", "numSyllables": 2},
		{"word": "orangey", "numSyllables": 3},
	}, group.Field("numSyllables"))
	if err != nil {
		t.Fatalf("group: %v", err)
	}

	if err := NewExporter().Export(context.Background(), path, res); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var decoded map[string][]map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(decoded["2"]) != 1 || decoded["2"][0]["word"] != "door hinge" {
		t.Errorf("group 2 = %v", decoded["2"])
	}

	// Sorted key order survives in the raw output.
	if i2, i3 := strings.Index(string(data), `"2"`), strings.Index(string(data), `"3"`); i2 > i3 {
		t.Errorf("keys out of order in export: %s", data)
	}

	// No temp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file still present: %v", err)
	}
}

func TestExporter_FlatWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	words := []domain.Word{{Word: "sporange", NumSyllables: 2}}

	if err := NewExporter().Export(context.Background(), path, words); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var decoded []domain.Word
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Word != "sporange" {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestExporter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, _ := group.By(nil, group.Field("k"))
	path := filepath.Join(t.TempDir(), "out.json")
	if err := NewExporter().Export(ctx, path, res); err == nil {
		t.Fatal("expected error for canceled context")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file written despite canceled context")
	}
}
