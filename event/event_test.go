package event

import "testing"

func TestListenersEmitOrder(t *testing.T) {
	var l Listeners[int]
	var got []int
	l.Subscribe(func(v int) { got = append(got, v*10) })
	l.Subscribe(func(v int) { got = append(got, v*100) })

	l.Emit(2)

	if len(got) != 2 || got[0] != 20 || got[1] != 200 {
		t.Fatalf("expected [20 200], got %v", got)
	}
}

func TestListenersUnsubscribe(t *testing.T) {
	cases := []struct {
		name   string
		remove []int
		want   int
	}{
		{"none", nil, 3},
		{"first", []int{0}, 2},
		{"middle_twice", []int{1, 1}, 2},
		{"all", []int{0, 1, 2}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var l Listeners[string]
			calls := 0
			cancels := make([]func(), 0, 3)
			for i := 0; i < 3; i++ {
				cancels = append(cancels, l.Subscribe(func(string) { calls++ }))
			}
			for _, idx := range c.remove {
				cancels[idx]()
			}
			l.Emit("x")
			if calls != c.want {
				t.Fatalf("expected %d calls, got %d", c.want, calls)
			}
			if l.Len() != c.want {
				t.Fatalf("expected %d handlers, got %d", c.want, l.Len())
			}
		})
	}
}

func TestListenersUnsubscribeDuringEmit(t *testing.T) {
	var l Listeners[int]
	calls := 0
	var cancel func()
	cancel = l.Subscribe(func(int) {
		calls++
		cancel()
	})
	l.Subscribe(func(int) { calls++ })

	l.Emit(1)
	if calls != 2 {
		t.Fatalf("expected both handlers on first emit, got %d calls", calls)
	}
	l.Emit(1)
	if calls != 3 {
		t.Fatalf("expected self-removed handler to stay removed, got %d calls", calls)
	}
}

func TestSignalClear(t *testing.T) {
	var s Signal
	calls := 0
	cancel := s.Subscribe(func() { calls++ })
	s.Emit()
	s.Clear()
	s.Emit()
	cancel()

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if s.Len() != 0 {
		t.Fatalf("expected no handlers after Clear, got %d", s.Len())
	}
}

func TestSubscriptionsRelease(t *testing.T) {
	var s Signal
	var subs Subscriptions
	calls := 0
	subs.Add(s.Subscribe(func() { calls++ }))
	subs.Add(s.Subscribe(func() { calls++ }))

	subs.Release()
	subs.Release()
	s.Emit()

	if calls != 0 {
		t.Fatalf("expected released handlers to be gone, got %d calls", calls)
	}
}

func TestNilReceivers(t *testing.T) {
	var l *Listeners[int]
	var s *Signal
	l.Emit(1)
	s.Emit()
	l.Subscribe(func(int) {})()
	s.Subscribe(func() {})()
	if l.Len() != 0 || s.Len() != 0 {
		t.Fatalf("nil receivers should report zero handlers")
	}
}
