package bus

import (
	"testing"
	"time"
)

func recv(t *testing.T, ch <-chan *Message) *Message {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func expectNone(t *testing.T, ch <-chan *Message) {
	t.Helper()
	select {
	case msg := <-ch:
		t.Fatalf("unexpected message on %v: %v", msg.Topic, msg.Payload)
	default:
	}
}

func TestPublishSubscribe(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("t")
	sub := conn.Subscribe(T("irrigation", "sample"))

	conn.Publish(conn.NewMessage(T("irrigation", "sample"), 42, false))

	msg := recv(t, sub.Channel())
	if msg.Payload != 42 {
		t.Fatalf("payload = %v, want 42", msg.Payload)
	}
	if !msg.Topic.Equal(T("irrigation", "sample")) {
		t.Fatalf("topic = %v", msg.Topic)
	}
}

func TestExactTopicDoesNotCrossMatch(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("t")
	sub := conn.Subscribe(T("irrigation", "relay"))

	conn.Publish(conn.NewMessage(T("irrigation", "sample"), 1, false))
	conn.Publish(conn.NewMessage(T("irrigation"), 2, false))
	conn.Publish(conn.NewMessage(T("irrigation", "relay", "extra"), 3, false))
	expectNone(t, sub.Channel())
}

func TestSingleLevelWildcard(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("t")
	sub := conn.Subscribe(T("irrigation", "control", Plus))

	conn.Publish(conn.NewMessage(T("irrigation", "control", "threshold"), 25, false))
	conn.Publish(conn.NewMessage(T("irrigation", "control", "relay"), true, false))
	conn.Publish(conn.NewMessage(T("irrigation", "sample"), 0, false))

	if msg := recv(t, sub.Channel()); msg.Payload != 25 {
		t.Fatalf("payload = %v, want 25", msg.Payload)
	}
	if msg := recv(t, sub.Channel()); msg.Payload != true {
		t.Fatalf("payload = %v, want true", msg.Payload)
	}
	expectNone(t, sub.Channel())
}

func TestMultiLevelWildcard(t *testing.T) {
	b := NewBus(8)
	conn := b.NewConnection("t")
	sub := conn.Subscribe(T("irrigation", Hash))

	conn.Publish(conn.NewMessage(T("irrigation"), "root", false))
	conn.Publish(conn.NewMessage(T("irrigation", "servo"), "one", false))
	conn.Publish(conn.NewMessage(T("irrigation", "control", "relay"), "two", false))
	conn.Publish(conn.NewMessage(T("other"), "no", false))

	for _, want := range []any{"root", "one", "two"} {
		if msg := recv(t, sub.Channel()); msg.Payload != want {
			t.Fatalf("payload = %v, want %v", msg.Payload, want)
		}
	}
	expectNone(t, sub.Channel())
}

func TestRetainedDeliveredToLateSubscriber(t *testing.T) {
	b := NewBus(4)
	pub := b.NewConnection("pub")
	pub.Publish(pub.NewMessage(T("irrigation", "threshold"), 27, true))

	sub := b.NewConnection("sub").Subscribe(T("irrigation", "threshold"))
	if msg := recv(t, sub.Channel()); msg.Payload != 27 {
		t.Fatalf("retained payload = %v, want 27", msg.Payload)
	}
}

func TestRetainedDeliveredThroughWildcardPattern(t *testing.T) {
	b := NewBus(8)
	pub := b.NewConnection("pub")
	pub.Publish(pub.NewMessage(T("irrigation", "threshold"), 27, true))
	pub.Publish(pub.NewMessage(T("irrigation", "state"), "running", true))

	sub := b.NewConnection("sub").Subscribe(T("irrigation", Hash))
	got := map[any]bool{}
	got[recv(t, sub.Channel()).Payload] = true
	got[recv(t, sub.Channel()).Payload] = true
	if !got[27] || !got["running"] {
		t.Fatalf("retained set = %v", got)
	}
}

func TestRetainedOverwriteAndClear(t *testing.T) {
	b := NewBus(4)
	pub := b.NewConnection("pub")
	topic := T("irrigation", "threshold")

	pub.Publish(pub.NewMessage(topic, 27, true))
	pub.Publish(pub.NewMessage(topic, 28, true))

	sub := b.NewConnection("a").Subscribe(topic)
	if msg := recv(t, sub.Channel()); msg.Payload != 28 {
		t.Fatalf("retained payload = %v, want latest (28)", msg.Payload)
	}

	// nil payload clears the retained slot.
	pub.Publish(pub.NewMessage(topic, nil, true))
	sub2 := b.NewConnection("b").Subscribe(topic)
	expectNone(t, sub2.Channel())
}

func TestIntTokens(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("t")
	sub := conn.Subscribe(T("zone", 3, "sample"))

	conn.Publish(conn.NewMessage(T("zone", 3, "sample"), "hit", false))
	conn.Publish(conn.NewMessage(T("zone", 4, "sample"), "miss", false))

	if msg := recv(t, sub.Channel()); msg.Payload != "hit" {
		t.Fatalf("payload = %v", msg.Payload)
	}
	expectNone(t, sub.Channel())
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("t")
	sub := conn.Subscribe(T("x"))

	for i := 1; i <= 4; i++ {
		conn.Publish(conn.NewMessage(T("x"), i, false))
	}
	// Queue length 2: the two newest survive.
	if msg := recv(t, sub.Channel()); msg.Payload != 3 {
		t.Fatalf("payload = %v, want 3", msg.Payload)
	}
	if msg := recv(t, sub.Channel()); msg.Payload != 4 {
		t.Fatalf("payload = %v, want 4", msg.Payload)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("t")
	sub := conn.Subscribe(T("x"))
	conn.Unsubscribe(sub)

	// Channel is closed; publishing must not panic or deliver.
	conn.Publish(conn.NewMessage(T("x"), 1, false))
	if msg, ok := <-sub.Channel(); ok {
		t.Fatalf("message after unsubscribe: %v", msg.Payload)
	}
}

func TestDisconnectClosesAllSubscriptions(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("t")
	a := conn.Subscribe(T("a"))
	c := conn.Subscribe(T("b"))
	conn.Disconnect()

	if _, ok := <-a.Channel(); ok {
		t.Fatal("subscription a still open after disconnect")
	}
	if _, ok := <-c.Channel(); ok {
		t.Fatal("subscription b still open after disconnect")
	}
}

func TestTopicAppendDoesNotAliasReceiver(t *testing.T) {
	base := T("irrigation", "control")
	a := base.Append("relay")
	bTopic := base.Append("threshold")
	if !a.Equal(T("irrigation", "control", "relay")) {
		t.Fatalf("a = %v", a)
	}
	if !bTopic.Equal(T("irrigation", "control", "threshold")) {
		t.Fatalf("b = %v", bTopic)
	}
	if !base.Equal(T("irrigation", "control")) {
		t.Fatalf("base mutated: %v", base)
	}
}
