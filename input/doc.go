// Package input turns platform events into game commands.
//
// A Registry maps every Action to at most one key, button, hat direction or
// axis half. The Filter scans the registry for each raw event and emits a
// Signal per matching binding; the Dispatcher checks the action's guards
// (no blocking UI, not hyperspacing, not dead, not landed) and calls the
// Commands sink. Mouse clicks take a separate path through the
// ClickResolver, which picks the pilot or asset under the cursor and tells
// a first click from a double-click.
//
// Context bundles all of it and is owned by a single goroutine, normally the
// game's Update loop.
package input
