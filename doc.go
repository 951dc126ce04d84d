// Package fab is a circular floating action button for [Ebitengine].
//
// A [Button] is a filled circle with an optional shadow, stroke and centered
// icon. It swaps to its pressed color while touched, can draw a ripple that
// grows from the touch point, and can let its shadow grow while pressed and
// settle back when released. Buttons show, hide, dismiss and move with
// animations driven by [gween].
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	host := fab.NewHost(480, 800, fab.SystemClock)
//	b := fab.NewButton("add", fab.Metrics{Density: 2})
//	b.SetImage(fab.NewPlusIcon(48, fab.ColorWhite))
//	b.OnClick = func(b *fab.Button) { b.MoveUp(200) }
//	host.Add(b)
//	fab.Run(host, fab.RunConfig{Title: "FAB", Width: 480, Height: 800})
//
// For full control, implement [ebiten.Game] yourself and call
// [Host.Update] and [Host.Draw] directly.
//
// # Drawing
//
// A button draws itself onto a [Canvas]. The host renders through an
// [EbitenCanvas] into a per-button cache that is refreshed only when the
// button asks to be invalidated. A [RecordingCanvas] captures the same
// draw calls as a display list, which is what the tests assert on.
//
// Effects ([RippleEffect], [ShadowResponsiveEffect]) advance one step per
// drawn frame and tell the button's [Invalidator] whether another frame is
// needed now or after a delay. The host's [Scheduler] runs delayed redraws.
//
// # Styles and scripts
//
// [ParseStyle] reads a YAML style document that [Style.Apply] sets on a
// button. [LoadTestScript] reads a JSON or YAML input script for automated
// runs; see [Host.SetTestRunner].
//
// # ECS
//
// Interaction events can be forwarded to a [Donburi] world through the
// adapter in fab/ecs; see [Host.SetEventSink].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package fab
