// Package touchstrip turns multi-touch pointer input into the zone press and
// release events of a rhythm-game cabinet's capacitive touch sensor.
//
// A [Catalog] holds the named polygon zones. A [Panel] owns the per-touch
// state and the per-zone claim counts, and is fed one [Frame] per polling
// tick. For every frame it works out which zones each touch covers, sampling
// the path between polls so a fast swipe does not skip a zone, and emits
// exactly one engage when a zone gains its first touch and exactly one
// disengage when it loses its last.
//
// # Quick start
//
//	catalog, err := touchstrip.NewCatalog(layout.Standard(1080))
//	if err != nil { ... }
//	panel := touchstrip.NewPanel(catalog)
//	panel.AddConsumer(state) // e.g. a *sensor.State
//	touchstrip.Run(panel, touchstrip.RunConfig{Title: "touch", Width: 1080, Height: 1080})
//
// For full control, implement [ebiten.Game] yourself and call
// [Panel.Update] from your Update, or skip ebiten entirely and call
// [Panel.ProcessFrame] with frames from any input source.
//
// # Ordering
//
// Within one touch step every disengage is delivered before any engage, so a
// swipe from one zone to its neighbour never shows both held. Frame
// processing is synchronous and never blocks; consumers run on the caller's
// goroutine.
//
// # Layouts
//
// Each zone has a normal and an enlarged shape. [Panel.SetLayout] switches
// between them without touching zone identities or the current touches.
// [Panel.SetCatalog] replaces the zones themselves and resets every touch.
//
// # Testing
//
// Synthetic touches can be queued with [Panel.InjectDown],
// [Panel.InjectSwipe] and friends, or scripted in JSON with
// [LoadTestScript].
package touchstrip
