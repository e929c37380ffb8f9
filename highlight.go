package touchstrip

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Default highlight fade durations, in seconds.
const (
	DefaultFadeIn  float32 = 0.05
	DefaultFadeOut float32 = 0.25
)

// highlight is one tag's current level and the tween driving it.
type highlight struct {
	level float64
	tween *gween.Tween
}

// Highlighter is a Consumer that keeps a per-tag highlight level in [0, 1]:
// it fades toward 1 on engage and toward 0 on disengage. Levels are
// advanced by Update, so they trail the engage state by at most one fade.
// Each tag's latest transition replaces its running fade, so per-zone
// ordering is preserved.
type Highlighter struct {
	FadeIn  float32
	FadeOut float32
	Ease    ease.TweenFunc

	levels map[ButtonValue]*highlight
}

// NewHighlighter returns a highlighter with the default fade durations and
// a linear ease.
func NewHighlighter() *Highlighter {
	return &Highlighter{
		FadeIn:  DefaultFadeIn,
		FadeOut: DefaultFadeOut,
		Ease:    ease.Linear,
		levels:  make(map[ButtonValue]*highlight),
	}
}

// Engage starts fading tag in.
func (h *Highlighter) Engage(tag ButtonValue) {
	h.fadeTo(tag, 1, h.FadeIn)
}

// Disengage starts fading tag out.
func (h *Highlighter) Disengage(tag ButtonValue) {
	h.fadeTo(tag, 0, h.FadeOut)
}

func (h *Highlighter) fadeTo(tag ButtonValue, to float64, duration float32) {
	hl, ok := h.levels[tag]
	if !ok {
		hl = &highlight{}
		h.levels[tag] = hl
	}
	if duration <= 0 {
		hl.level = to
		hl.tween = nil
		return
	}
	hl.tween = gween.New(float32(hl.level), float32(to), duration, h.Ease)
}

// Update advances every running fade by dt seconds.
func (h *Highlighter) Update(dt float32) {
	for tag, hl := range h.levels {
		if hl.tween == nil {
			continue
		}
		val, finished := hl.tween.Update(dt)
		hl.level = float64(val)
		if finished {
			hl.tween = nil
			if hl.level == 0 {
				delete(h.levels, tag)
			}
		}
	}
}

// Level returns the current highlight level of tag.
func (h *Highlighter) Level(tag ButtonValue) float64 {
	if hl, ok := h.levels[tag]; ok {
		return hl.level
	}
	return 0
}

// Fading reports whether any fade is still running.
func (h *Highlighter) Fading() bool {
	for _, hl := range h.levels {
		if hl.tween != nil {
			return true
		}
	}
	return false
}
