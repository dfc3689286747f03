package events_test

import (
	"testing"

	"github.com/ardanlabs/ledger/foundation/events"
)

func Test_Events(t *testing.T) {
	evts := events.New()

	ch1 := evts.Acquire("one")
	ch2 := evts.Acquire("two")
	if evts.Acquire("one") != ch1 {
		t.Fatal("Should get back the same channel for the same id.")
	}

	if sent := evts.Send("state: forge: block[2]"); sent != 2 {
		t.Fatalf("Should deliver to both subscribers, got %d.", sent)
	}

	if msg := <-ch1; msg != "state: forge: block[2]" {
		t.Fatalf("Should receive the event, got %q.", msg)
	}
	<-ch2

	if err := evts.Release("one"); err != nil {
		t.Fatalf("Should be able to release a subscriber: %v", err)
	}
	if _, open := <-ch1; open {
		t.Fatal("Should close a released channel.")
	}
	if err := evts.Release("one"); err == nil {
		t.Fatal("Should not release an unknown subscriber.")
	}

	for i := 0; i < 150; i++ {
		evts.Send("flood")
	}
	if len(ch2) != cap(ch2) {
		t.Fatalf("Should drop events for a full subscriber, buffered %d.", len(ch2))
	}

	evts.Shutdown()
	if evts.Count() != 0 {
		t.Fatal("Should remove every subscriber on shutdown.")
	}
}
