// Package sched provides the cooperative scheduling substrate shared by the
// animation and typewriter subsystems.
//
// A [Queue] is a single-threaded event queue with a virtual clock. Callbacks
// are registered with [Queue.After] (one-shot), [Queue.Every] (repeating) and
// [Queue.Frame] (next frame). Nothing fires until the host pumps the queue:
//
//	q := sched.NewQueue(time.Now())
//	t := q.Every(70*time.Millisecond, reveal)
//	q.Advance(140 * time.Millisecond) // reveal runs twice
//	t.Cancel()
//
// All callbacks run on the goroutine that pumps the queue. A [Loop] pumps a
// queue in real time; the terminal UI pumps it from its own update loop.
//
// # Cancellation
//
// Every registration returns a [Timer]. After Cancel returns, the callback is
// guaranteed not to run, including when Cancel is called from inside another
// callback of the same batch.
package sched
