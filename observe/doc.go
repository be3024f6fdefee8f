// Package observe provides the publish/subscribe capability used by watch
// nodes to deliver change notifications.
//
// Observable is the capability; Emitter is its synchronous implementation.
// Emission happens on the caller's goroutine, handlers run in registration
// order, and Emit returns once every handler has returned:
//
//	e := observe.NewEmitter()
//	sub := e.Subscribe("change", func(v any) { fmt.Println(v) })
//	e.Emit("change", 42)
//	sub.Unsubscribe()
//
// Where filters a handler with an expr-lang boolean expression and
// Recorder collects emitted values.
package observe
