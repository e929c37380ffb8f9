package touchstrip

import (
	"maps"
	"slices"

	"github.com/sirupsen/logrus"
)

// KeyPresser injects key presses into the host. Implementations live outside
// this package (uinput, a virtual keyboard driver, a test recorder).
type KeyPresser interface {
	KeyDown(key string) error
	KeyUp(key string) error
}

// RingButtons mirrors zone transitions onto the cabinet's ring buttons.
// Only tags with a key mapping are forwarded, and only while enabled. It is
// keyed purely by tag, so several touches holding one zone still produce a
// single press. A key is released only if the ring pressed it.
type RingButtons struct {
	keys    map[ButtonValue]string
	out     KeyPresser
	enabled bool
	down    map[ButtonValue]string
	log     logrus.FieldLogger
}

// NewRingButtons returns a disabled ring mapper sending keys to out.
func NewRingButtons(keys map[ButtonValue]string, out KeyPresser) *RingButtons {
	m := make(map[ButtonValue]string, len(keys))
	for tag, key := range keys {
		if key != "" {
			m[tag] = key
		}
	}
	return &RingButtons{
		keys: m,
		out:  out,
		down: make(map[ButtonValue]string),
		log:  logrus.StandardLogger(),
	}
}

// SetLogger sets the logger used for key injection failures.
func (r *RingButtons) SetLogger(log logrus.FieldLogger) {
	r.log = log
}

// SetEnabled turns forwarding on or off. Disabling releases every key the
// ring holds down. Enabling presses nothing; zones already held reach the
// host on their next engage.
func (r *RingButtons) SetEnabled(enabled bool) {
	r.enabled = enabled
	if enabled {
		return
	}
	for _, tag := range slices.Sorted(maps.Keys(r.down)) {
		r.release(tag)
	}
}

// Enabled reports whether forwarding is on.
func (r *RingButtons) Enabled() bool {
	return r.enabled
}

// HasMapping reports whether tag has a ring key.
func (r *RingButtons) HasMapping(tag ButtonValue) bool {
	_, ok := r.keys[tag]
	return ok
}

// Key returns the key mapped to tag.
func (r *RingButtons) Key(tag ButtonValue) (string, bool) {
	k, ok := r.keys[tag]
	return k, ok
}

// Engage presses the key mapped to tag.
func (r *RingButtons) Engage(tag ButtonValue) {
	key, ok := r.keys[tag]
	if !ok || !r.enabled || r.out == nil {
		return
	}
	if err := r.out.KeyDown(key); err != nil {
		r.log.WithFields(logrus.Fields{"tag": tag, "key": key}).WithError(err).Warn("touchstrip: ring key down failed")
		return
	}
	r.down[tag] = key
}

// Disengage releases the key mapped to tag if the ring pressed it.
func (r *RingButtons) Disengage(tag ButtonValue) {
	r.release(tag)
}

// Held reports whether the key for tag is down on the host.
func (r *RingButtons) Held(tag ButtonValue) bool {
	_, ok := r.down[tag]
	return ok
}

func (r *RingButtons) release(tag ButtonValue) {
	key, ok := r.down[tag]
	if !ok {
		return
	}
	delete(r.down, tag)
	if err := r.out.KeyUp(key); err != nil {
		r.log.WithFields(logrus.Fields{"tag": tag, "key": key}).WithError(err).Warn("touchstrip: ring key up failed")
	}
}
