package touchstrip

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// Panel is the top-level object that owns the zone catalog, the touch
// tracker, the claim table and the emitter. All of its methods must be
// called from the goroutine that processes input frames.
type Panel struct {
	catalog *Catalog
	claims  *ClaimTable
	tracker *Tracker
	emitter *Emitter
	log     logrus.FieldLogger
	debug   bool

	// Input
	source      *EbitenSource
	sourceBuf   []TouchUpdate
	injectQueue []Frame
	injectHeld  map[TouchID]Vec2
	testRunner  *TestRunner

	highlighters []*Highlighter
	frameCount   uint64
}

// NewPanel creates a panel over the given catalog with the default probe
// radius and sample count.
func NewPanel(catalog *Catalog) *Panel {
	log := logrus.StandardLogger()
	p := &Panel{
		catalog:    catalog,
		claims:     NewClaimTable(log),
		emitter:    NewEmitter(catalog),
		log:        log,
		injectHeld: make(map[TouchID]Vec2),
	}
	p.tracker = NewTracker(catalog, p.claims, p.emitter.Dispatch)
	return p
}

// Catalog returns the panel's zone catalog.
func (p *Panel) Catalog() *Catalog {
	return p.catalog
}

// SetProbeRadius sets the radius of the disc hit-tested around each touch.
func (p *Panel) SetProbeRadius(r float64) {
	p.tracker.Radius = r
}

// SetSampleCount sets how many points are checked along each move.
func (p *Panel) SetSampleCount(n int) {
	p.tracker.Samples = n
}

// SetLogger replaces the logger used by the panel and its claim table.
func (p *Panel) SetLogger(log logrus.FieldLogger) {
	p.log = log
	p.claims.log = log
}

// SetDebugMode enables or disables per-frame stats logging.
func (p *Panel) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// SetSource attaches an ebiten input source polled by Update.
func (p *Panel) SetSource(src *EbitenSource) {
	p.source = src
}

// AddConsumer registers a consumer for every engage and disengage.
func (p *Panel) AddConsumer(c Consumer) CallbackHandle {
	return p.emitter.AddConsumer(c)
}

// OnEngage registers a callback fired when a zone becomes engaged.
func (p *Panel) OnEngage(fn func(ZoneEvent)) CallbackHandle {
	return p.emitter.OnEngage(fn)
}

// OnDisengage registers a callback fired when a zone becomes disengaged.
func (p *Panel) OnDisengage(fn func(ZoneEvent)) CallbackHandle {
	return p.emitter.OnDisengage(fn)
}

// SetRing sets the optional ring-button consumer.
func (p *Panel) SetRing(r *RingButtons) {
	p.emitter.SetRing(r)
}

// SetEntityStore sets the optional ECS bridge.
func (p *Panel) SetEntityStore(store EventStore) {
	p.emitter.SetEntityStore(store)
}

// AddHighlighter registers h as a consumer and advances it on every Update.
func (p *Panel) AddHighlighter(h *Highlighter) CallbackHandle {
	p.highlighters = append(p.highlighters, h)
	return p.emitter.AddConsumer(h)
}

// Update advances highlighters, steps the test runner and processes one
// frame made of the source's touches plus the next injected frame.
func (p *Panel) Update() {
	dt := tickSeconds(float64(ebiten.TPS()), ebiten.ActualTPS())
	for _, h := range p.highlighters {
		h.Update(dt)
	}

	if p.testRunner != nil {
		p.testRunner.step(p)
	}

	touches := p.sourceBuf[:0]
	if p.source != nil {
		touches = p.source.Poll(touches)
	}
	touches = p.popInjected(touches)
	p.sourceBuf = touches

	p.ProcessFrame(Frame{Touches: touches})
}

// tickSeconds returns the length of one Update for a configured tick rate
// tps. A rate that is not positive (ebiten.SyncWithFPS) falls back to the
// measured rate, and to zero before one is known.
func tickSeconds(tps, actual float64) float32 {
	if tps <= 0 {
		tps = actual
	}
	if tps <= 0 {
		return 0
	}
	return float32(1 / tps)
}

// ProcessFrame applies one frame of touch updates and delivers the
// resulting zone transitions before returning.
func (p *Panel) ProcessFrame(f Frame) {
	p.frameCount++
	p.emitter.frame = p.frameCount

	if !p.debug {
		p.tracker.Advance(f)
		return
	}

	stats := frameStats{
		frame:      p.frameCount,
		updates:    len(f.Touches),
		steps:      p.tracker.steps,
		engages:    p.emitter.engages,
		disengages: p.emitter.disengages,
	}
	t0 := time.Now()
	p.tracker.Advance(f)
	stats.processTime = time.Since(t0)
	stats.touches = p.tracker.Len()
	stats.steps = p.tracker.steps - stats.steps
	stats.engages = p.emitter.engages - stats.engages
	stats.disengages = p.emitter.disengages - stats.disengages
	p.debugLog(stats)
}

// Reset force-releases every touch and drops pending injected frames. Each
// engaged zone is disengaged exactly once; calling Reset again does nothing.
func (p *Panel) Reset() {
	p.tracker.Reset()
	clear(p.injectHeld)
	clear(p.injectQueue)
	p.injectQueue = p.injectQueue[:0]
}

// SetLayout switches between the normal and enlarged zone shapes. Touches
// are not reset: zones engaged under the old shapes stay engaged until
// their touch next moves or lifts. A report at the same position is not a
// move.
func (p *Panel) SetLayout(enlarged bool) {
	p.catalog.SetLayout(enlarged)
}

// SetCatalog replaces the zone catalog. Every touch is reset first, so no
// zone of the old catalog stays engaged.
func (p *Panel) SetCatalog(c *Catalog) {
	p.Reset()
	p.catalog = c
	p.emitter.catalog = c
	p.tracker.SetHitTester(c)
}

// Active returns every engaged zone.
func (p *Panel) Active() ZoneSet {
	return p.claims.Active()
}

// ClaimCount returns how many touches hold zone id.
func (p *Panel) ClaimCount(id ZoneID) int {
	return p.claims.Count(id)
}

// TouchCount returns the number of tracked touches.
func (p *Panel) TouchCount() int {
	return p.tracker.Len()
}

// TouchZones returns the zones held by touch id.
func (p *Panel) TouchZones(id TouchID) (ZoneSet, bool) {
	return p.tracker.Zones(id)
}

// Underflows returns how many claim releases were clamped at zero.
func (p *Panel) Underflows() int {
	return p.claims.Underflows()
}

// FrameCount returns the number of frames processed.
func (p *Panel) FrameCount() uint64 {
	return p.frameCount
}
