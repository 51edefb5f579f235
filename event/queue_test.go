package event

import (
	"image"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	var want []Event
	for i := 0; i < 40; i++ {
		e := Move{Header: q.Header(WindowID(i % 3)), Position: image.Pt(i, i)}
		q.Push(e)
		want = append(want, e)
	}
	if q.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", q.Len(), len(want))
	}

	var got []Event
	for {
		e, ok := q.Pop()
		if !ok {
			break
		}
		got = append(got, e)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pop order mismatch (-want +got):\n%s", diff)
	}
}

func TestQueueWrapAround(t *testing.T) {
	q := NewQueue()
	for round := 0; round < 5; round++ {
		for i := 0; i < 12; i++ {
			q.Push(Resize{Header: q.Header(1), Size: image.Pt(round, i)})
		}
		for i := 0; i < 12; i++ {
			e, ok := q.Pop()
			if !ok {
				t.Fatalf("round %d: queue drained early at %d", round, i)
			}
			if got := e.(Resize).Size; got != image.Pt(round, i) {
				t.Fatalf("round %d: got size %v, want %v", round, got, image.Pt(round, i))
			}
		}
	}
	if _, ok := q.Pop(); ok || q.Len() != 0 {
		t.Fatalf("expected empty queue")
	}
}

func TestQueueHeaderMonotonic(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := []time.Time{base, base.Add(time.Second), base.Add(-time.Minute), base.Add(2 * time.Second)}
	i := 0

	q := NewQueue()
	q.SetClock(func() time.Time {
		t := ticks[i]
		i++
		return t
	})

	var last time.Time
	for range ticks {
		h := q.Header(7)
		if h.Time.Before(last) {
			t.Fatalf("header time %v precedes %v", h.Time, last)
		}
		last = h.Time
	}
	if want := base.Add(2 * time.Second); !last.Equal(want) {
		t.Fatalf("last time = %v, want %v", last, want)
	}
}

func TestQueuePurge(t *testing.T) {
	q := NewQueue()
	q.Push(Close{Header: q.Header(1)})
	q.Push(Close{Header: q.Header(2)})
	q.Push(Visibility{Header: q.Header(1), Visible: true})
	q.Push(Focus{Header: q.Header(2), Focused: true})

	if n := q.Purge(1); n != 2 {
		t.Fatalf("Purge(1) removed %d events, want 2", n)
	}
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
	for q.Len() > 0 {
		e, _ := q.Pop()
		if e.WindowID() != 2 {
			t.Fatalf("unexpected event for window %d after purge", e.WindowID())
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Close{Header: Header{Window: 3}}, "close window=3"},
		{Resize{Header: Header{Window: 1}, Size: image.Pt(800, 600)}, "resize window=1 size=(800,600)"},
		{Visibility{Header: Header{Window: 2}, Visible: false}, "visibility window=2 visible=false"},
		{Update{Kind: UpdatePassive}, "update kind=passive"},
		{Update{Kind: UpdateKind(7)}, "update kind=UpdateKind(7)"},
	}
	for _, tt := range tests {
		if got := Describe(tt.ev); got != tt.want {
			t.Errorf("Describe(%T) = %q, want %q", tt.ev, got, tt.want)
		}
	}
}
