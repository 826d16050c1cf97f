package tag

import (
	"sync"
	"testing"
)

func TestIDGeneratorSequence(t *testing.T) {
	g := NewIDGenerator()
	for i, want := range []string{"input1", "input2", "div3"} {
		prefix := "input"
		if i == 2 {
			prefix = "div"
		}
		if got := g.Next(prefix); got != want {
			t.Errorf("Next() = %q, want %q", got, want)
		}
	}
	g.Reset()
	if got := g.Next("x"); got != "x1" {
		t.Errorf("after Reset: %q, want x1", got)
	}
}

func TestIDGeneratorWraps(t *testing.T) {
	g := NewIDGenerator()
	var last string
	for i := 0; i < MaxID; i++ {
		last = g.Next("t")
	}
	if last != "t1000000" {
		t.Fatalf("id %d = %q, want t1000000", MaxID, last)
	}
	if got := g.Next("t"); got != "t1" {
		t.Errorf("id %d = %q, want t1", MaxID+1, got)
	}
}

func TestIDGeneratorConcurrent(t *testing.T) {
	g := NewIDGenerator()
	const workers, each = 8, 500

	var mu sync.Mutex
	seen := make(map[string]bool)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				id := g.Next("n")
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*each {
		t.Errorf("unique ids = %d, want %d", len(seen), workers*each)
	}
}
