package fifo

import "testing"

func TestQueueFIFOOrder(t *testing.T) {
	var q Queue[int]
	for i := 0; i < 5; i++ {
		q.Push(i)
	}
	if q.Len() != 5 {
		t.Fatalf("expected len 5, got %d", q.Len())
	}
	for i := 0; i < 5; i++ {
		if got := q.Pop(); got != i {
			t.Fatalf("expected %d, got %d", i, got)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got len %d", q.Len())
	}
}

func TestQueueInterleavedPushPop(t *testing.T) {
	var q Queue[string]
	q.Push("a")
	q.Push("b")
	if got := q.Pop(); got != "a" {
		t.Fatalf("expected a, got %s", got)
	}
	q.Push("c")
	if got := q.Pop(); got != "b" {
		t.Fatalf("expected b, got %s", got)
	}
	if got := q.Pop(); got != "c" {
		t.Fatalf("expected c, got %s", got)
	}
}
