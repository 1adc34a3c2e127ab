package registry

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/dmitrymomot/lingua/pkg/logger"
)

// Subscriber is notified whenever the active language changes.
// Implementations are compared by identity for removal, so subscribers must
// be pointer types; a subscriber of an uncomparable value type can never be
// removed individually.
type Subscriber interface {
	OnLanguageChanged(lang string)
}

// subscription pairs a subscriber with its optional slot key.
type subscription struct {
	sub  Subscriber
	slot string
}

// Registry tracks subscribers in registration order and pushes language
// changes to them. Registration order is the notification order.
//
// The registry never garbage-collects subscribers: a consumer that goes away
// must unregister itself, or it stays in the list and keeps receiving
// notifications.
type Registry struct {
	log  *slog.Logger
	subs []subscription
	mu   sync.Mutex
}

// New creates an empty registry. A nil logger disables logging.
func New(log *slog.Logger) *Registry {
	if log == nil {
		log = logger.NewNope()
	}
	return &Registry{log: log}
}

// Add appends the subscriber and immediately pushes lang to it,
// synchronously, before returning. Nil subscribers are ignored.
func (r *Registry) Add(sub Subscriber, lang string) {
	if sub == nil {
		return
	}

	r.mu.Lock()
	r.subs = append(r.subs, subscription{sub: sub})
	r.mu.Unlock()

	r.invoke(subscription{sub: sub}, lang)
}

// AddSlot behaves like Add but first removes any subscriber registered under
// the same slot key, so at most one subscriber occupies a logical slot.
// An empty slot key is equivalent to Add.
func (r *Registry) AddSlot(slot string, sub Subscriber, lang string) {
	if sub == nil {
		return
	}
	if slot == "" {
		r.Add(sub, lang)
		return
	}

	r.mu.Lock()
	kept := r.subs[:0]
	for _, s := range r.subs {
		if s.slot != slot {
			kept = append(kept, s)
		}
	}
	r.subs = append(kept, subscription{sub: sub, slot: slot})
	r.mu.Unlock()

	r.invoke(subscription{sub: sub, slot: slot}, lang)
}

// Remove removes the subscriber by identity. It is a no-op when the
// subscriber is not registered.
func (r *Registry) Remove(sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.subs {
		if sameSubscriber(s.sub, sub) {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return
		}
	}
}

// sameSubscriber compares two subscribers by identity without tripping the
// runtime panic a plain == raises for uncomparable dynamic types. An
// uncomparable subscriber simply never matches.
func sameSubscriber(a, b Subscriber) bool {
	if a == nil || b == nil {
		return a == b
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if !va.Comparable() {
		return false
	}
	return a == b
}

// Notify pushes lang to every subscriber in registration order. A subscriber
// that panics is recovered and logged; the remaining subscribers are still
// notified.
func (r *Registry) Notify(lang string) {
	r.mu.Lock()
	snapshot := make([]subscription, len(r.subs))
	copy(snapshot, r.subs)
	r.mu.Unlock()

	for _, s := range snapshot {
		r.invoke(s, lang)
	}
}

// Len returns the number of registered subscribers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// Clear removes all subscribers.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = nil
}

// invoke calls the subscriber outside the registry lock, so update callbacks
// can register, unregister, and look strings up re-entrantly.
func (r *Registry) invoke(s subscription, lang string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("subscriber panicked during language update",
				slog.String("language", lang),
				slog.String("slot", s.slot),
				slog.Any("panic", rec),
			)
		}
	}()

	s.sub.OnLanguageChanged(lang)
}
