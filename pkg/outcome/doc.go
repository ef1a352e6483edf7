// Package outcome defines Record[T], the immutable result of one tagged
// operation, and the helpers that inspect its cause chain.
//
// A Record is either a success carrying a value or a failure carrying a
// direct cause, a link to the nested failing Record that caused it, or both.
// Every Record is stamped with the namespace and method of the operation that
// produced it, an id and a UTC creation time.
//
// Highlights:
// - Succeed/Fail: construct records (normally through task.Task)
// - Render/String: indentation-encoded description of the whole chain
// - Causes/Root/Depth: walk the chain from the most recent failure to its root
// - Finally/Tee: fold or observe a record
//
// A failing *Record also satisfies error, so errors.Is and errors.As reach
// any error stored anywhere down the chain.
package outcome
