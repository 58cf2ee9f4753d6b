// Package debounce provides a small scheduler that delays work until a burst
// of requests has gone quiet.
//
// A Debouncer holds at most one scheduled function. Scheduling a new function
// discards the previous one and restarts the quiet period, so out of any
// burst only the last scheduled function runs, and only after no further
// scheduling happened for the configured wait.
//
// # Usage
//
//	d := debounce.New(300 * time.Millisecond)
//
//	d.Schedule(func() { check("al") })
//	d.Schedule(func() { check("ali") })
//	d.Schedule(func() { check("alice") }) // only this one runs, 300ms later
//
// Stop discards whatever is scheduled:
//
//	d.Stop()
//
// A function that was already handed to the runtime timer but has not started
// running is still discarded by Stop or by a newer Schedule. The scheduled
// function runs outside the Debouncer's lock, so it may call Schedule or Stop
// itself.
package debounce
