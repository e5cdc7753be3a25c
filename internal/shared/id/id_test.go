package id

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	if id1.String() == id2.String() {
		t.Error("Generated IDs should be unique")
	}
}

func TestGenerateWithEntropy(t *testing.T) {
	seed := bytes.Repeat([]byte{0xAB}, 10)
	gen := NewGeneratorWithEntropy(bytes.NewReader(seed))

	got := gen.Generate()

	if !bytes.Equal(got.Entropy(), seed) {
		t.Errorf("Entropy should come from the supplied reader, got: %x", got.Entropy())
	}
}

func TestTypedIDs(t *testing.T) {
	tests := []struct {
		id     string
		prefix string
	}{
		{NewFrameworkID().String(), FrameworkPrefix},
		{NewTraceID().String(), TracePrefix},
		{NewSpanID().String(), SpanPrefix},
	}

	for _, tt := range tests {
		if !strings.HasPrefix(tt.id, tt.prefix+"_") {
			t.Errorf("ID should start with '%s_', got: %s", tt.prefix, tt.id)
		}
		if len(tt.id) != len(tt.prefix)+1+26 {
			t.Errorf("Unexpected ID length for %s", tt.id)
		}
	}
}

func TestTimestamp(t *testing.T) {
	before := time.Now().Add(-time.Second)
	fid := NewFrameworkID()

	ts, err := Timestamp(fid.String())
	if err != nil {
		t.Fatalf("Timestamp failed: %v", err)
	}
	if ts.Before(before) || ts.After(time.Now().Add(time.Second)) {
		t.Errorf("Timestamp out of range: %v", ts)
	}

	if _, err := Timestamp("not-a-ulid"); err == nil {
		t.Error("Expected error for invalid ID")
	}
}

func TestConcurrentGeneration(t *testing.T) {
	gen := NewGenerator()
	const workers = 8
	const perWorker = 100

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id := gen.GenerateWithPrefix(SpanPrefix)
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Errorf("Expected %d unique IDs, got %d", workers*perWorker, len(seen))
	}
}
