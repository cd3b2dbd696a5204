// Package arbor is a retained-mode UI element composition and layout
// engine for [Ebitengine].
//
// An interface is a tree of [Element] values. Elements hold no position:
// every operation receives a [Context] carrying the element's bounds, its
// parent chain, the [Canvas] and the owning [View]. Leaves embed
// [BaseElement]; decorators embed [Proxy]; containers embed
// [CompositeBase].
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	root := arbor.NewVTile(
//		arbor.NewLabel("Volume"),
//		arbor.NewHSlider(0.5),
//	)
//	view := arbor.NewView(root, 640, 480)
//	arbor.Run(view, arbor.RunConfig{Title: "Mixer", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [View.Update] and [View.DrawScreen], feeding input through the entry
// points [View.Click], [View.Drag], [View.Cursor], [View.Scroll],
// [View.Key] and [View.Text].
//
// # Layout
//
// Each element reports [Limits], a minimum and maximum size. [Tile]
// containers divide their extent among children with [Distribute]:
// children start at their ideal size, shrink equally when space is short
// and grow in proportion to their span when it is plentiful, never leaving
// their limits. [Layer] stacks children, [Deck] shows one of them, and
// [Port] and [Scroller] show a window onto a larger subject.
// [DynamicList] composes only the rows that are visible.
//
// # Controls
//
// Draggable controls embed a [Tracker], which turns press, drag and
// release into BeginTracking, KeepTracking and EndTracking calls.
// [Slider], [Selector], [Dial] and [Thumbwheel] are built on it.
// Edits are reported through OnChange callbacks and, when a sink is set
// with [View.SetEventSink], as [ChangeEvent] values (see arbor/ecs for a
// [Donburi] adapter).
//
// # Deferred work
//
// [View.Post] schedules a callback on the UI thread; [View.Animate] runs an
// [Animation] such as a [Tween] (via [gween]) each frame.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package arbor
