package outcome

// Finally collapses a record to a single value through the handler matching
// its outcome. onFailure receives the record itself so the whole chain is
// still available.
func Finally[In, Out any](input *Record[In],
	onSuccess func(v In) Out,
	onFailure func(failed *Record[In]) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input)
}

// Tee runs a side effect for a successful record and returns it unchanged.
func Tee[T any](input *Record[T], onSuccess func(v T)) *Record[T] {
	if input.IsSuccess() && onSuccess != nil {
		onSuccess(input.Value())
	}
	return input
}
