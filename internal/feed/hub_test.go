package feed

import (
	"reflect"
	"testing"
)

func TestHubOrder(t *testing.T) {
	h := NewHub()
	var got []string
	h.Subscribe(SceneLoaded, func(Event) { got = append(got, "a") })
	h.Subscribe(SceneLoaded, func(Event) { got = append(got, "b") })
	h.Subscribe(SceneFailed, func(Event) { got = append(got, "x") })
	h.Subscribe(SceneLoaded, func(Event) { got = append(got, "c") })

	h.Publish(Event{Name: SceneLoaded})
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("delivery order = %v, want %v", got, want)
	}
}

func TestHubUnsubscribe(t *testing.T) {
	h := NewHub()
	calls := 0
	unsub := h.Subscribe(SceneLoaded, func(Event) { calls++ })
	h.Subscribe(SceneLoaded, func(Event) {})

	h.Publish(Event{Name: SceneLoaded})
	unsub()
	unsub()
	h.Publish(Event{Name: SceneLoaded})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if n := h.Count(SceneLoaded); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestHubSubscribeDuringPublish(t *testing.T) {
	h := NewHub()
	late := 0
	h.Subscribe(SceneLoaded, func(Event) {
		h.Subscribe(SceneLoaded, func(Event) { late++ })
	})

	h.Publish(Event{Name: SceneLoaded})
	if late != 0 {
		t.Fatalf("subscriber added mid-publish was called")
	}
	h.Publish(Event{Name: SceneLoaded})
	if late != 1 {
		t.Errorf("late = %d, want 1", late)
	}
}

func TestHubNoSubscribers(t *testing.T) {
	h := NewHub()
	h.Publish(Event{Name: "nothing"})
	if n := h.Count("nothing"); n != 0 {
		t.Errorf("Count = %d", n)
	}
}
