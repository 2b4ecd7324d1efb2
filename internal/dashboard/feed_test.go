package dashboard

import "testing"

func TestFeedDropsSupersededTicket(t *testing.T) {
	f := NewFeed[string]()
	var got []string
	f.Subscribe(func(s string) { got = append(got, s) })

	slow := f.Begin()
	fast := f.Begin()

	if !f.Publish(fast, "fresh") {
		t.Fatal("fresh snapshot rejected")
	}
	if f.Publish(slow, "stale") {
		t.Fatal("superseded snapshot accepted")
	}

	latest, ok := f.Latest()
	if !ok || latest != "fresh" {
		t.Fatalf("latest = %q, %v", latest, ok)
	}
	if len(got) != 1 || got[0] != "fresh" {
		t.Fatalf("deliveries = %v", got)
	}
}

func TestFeedSubscribeGetsLatest(t *testing.T) {
	f := NewFeed[int]()
	f.Publish(f.Begin(), 42)

	var got int
	f.Subscribe(func(v int) { got = v })
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestFeedClosedSubscriptionIgnored(t *testing.T) {
	f := NewFeed[int]()
	calls := 0
	s := f.Subscribe(func(int) { calls++ })
	f.Publish(f.Begin(), 1)
	s.Close()
	f.Publish(f.Begin(), 2)

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestFeedMultipleSubscribers(t *testing.T) {
	f := NewFeed[int]()
	var a, b int
	f.Subscribe(func(v int) { a = v })
	f.Subscribe(func(v int) { b = v })
	f.Publish(f.Begin(), 7)
	if a != 7 || b != 7 {
		t.Fatalf("a=%d b=%d", a, b)
	}
}

func TestFeedEmptyLatest(t *testing.T) {
	if _, ok := NewFeed[int]().Latest(); ok {
		t.Fatal("empty feed reported a snapshot")
	}
}
