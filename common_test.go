package main

import "testing"

func TestCircularQueueFIFO(t *testing.T) {
	q := NewCircularQueue[int](4)

	if !q.IsEmpty() {
		t.Error("fresh queue is not empty")
	}

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	if q.Length != 3 {
		t.Errorf("Length = %d, want 3", q.Length)
	}
	if got := q.Dequeue(); got != 1 {
		t.Errorf("Dequeue = %d, want 1", got)
	}
	if got := q.Dequeue(); got != 2 {
		t.Errorf("Dequeue = %d, want 2", got)
	}
	if q.Length != 1 {
		t.Errorf("Length = %d, want 1", q.Length)
	}
	if got := q.At(0); got != 3 {
		t.Errorf("At(0) = %d, want 3", got)
	}
}

func TestCircularQueueOverwritesOldest(t *testing.T) {
	q := NewCircularQueue[int](3)

	for i := 1; i <= 5; i++ {
		q.Enqueue(i)
	}

	if q.Length != 3 {
		t.Fatalf("Length = %d, want 3", q.Length)
	}
	if !q.IsFull() {
		t.Error("queue should be full")
	}

	want := []int{3, 4, 5}
	for i, w := range want {
		if got := q.At(i); got != w {
			t.Errorf("At(%d) = %d, want %d", i, got, w)
		}
	}

	if got := q.PeekFirst(); got != 3 {
		t.Errorf("PeekFirst = %d, want 3", got)
	}
	if got := q.PeekLast(); got != 5 {
		t.Errorf("PeekLast = %d, want 5", got)
	}
}

func TestCircularQueueWrapsAfterDequeue(t *testing.T) {
	q := NewCircularQueue[string](3)

	q.Enqueue("a")
	q.Enqueue("b")
	q.Dequeue()
	q.Enqueue("c")
	q.Enqueue("d") // wraps into the freed slot

	want := []string{"b", "c", "d"}
	for i, w := range want {
		if got := q.At(i); got != w {
			t.Errorf("At(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestCircularQueueClear(t *testing.T) {
	q := NewCircularQueue[int](3)

	q.Enqueue(1)
	q.Enqueue(2)
	q.Clear()

	if !q.IsEmpty() || q.Length != 0 {
		t.Error("Clear did not empty the queue")
	}

	q.Enqueue(9)
	if got := q.PeekFirst(); got != 9 {
		t.Errorf("PeekFirst after Clear = %d, want 9", got)
	}
}
