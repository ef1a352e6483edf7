// Package task wraps operations so they report their outcome as an
// outcome.Record tagged with the caller's namespace and method, and notifies
// observers of that outcome.
//
// Key operations:
//   - New/Of: create a Task tagged with a namespace and method
//   - Success/Failure/FailureWith/Failf: report an outcome directly
//   - Run/RunAsync: call a function, capturing panics and errors, unwrapping
//     or chaining records it returns
//   - On/Off/Listen: subscribe to the success, failure, complete and error
//     channels
//
// A nested failure keeps its own tag when chained:
//
//	inner := task.New[int]("store", "load").Failf("not found")
//	rec := task.New[int]("api", "get").Run(func() (int, error) {
//		return 0, inner
//	})
//	fmt.Println(rec)
//	// api.get()
//	//     store.load() - not found
//
// Listeners are one-shot. A dispatch takes the current registrations and
// clears the list, so each registration hears about a single outcome and a
// listener may safely register, remove or report on the same Task. Faults
// raised by listeners go to the error channel when something listens there;
// otherwise Success, Failure and Run panic with a *ListenerError and
// Future.Wait returns it.
package task
