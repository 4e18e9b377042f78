package results

// OperationResult carries the outcome of a service operation. Business
// failures travel as Failure payloads so handlers can publish them as events;
// a non-nil error from the operation itself means something actually broke.
type OperationResult struct {
	Success any
	Failure any
}

// IsSuccess reports whether the operation produced a success payload.
func (r OperationResult) IsSuccess() bool {
	return r.Success != nil
}

// IsFailure reports whether the operation produced a failure payload.
func (r OperationResult) IsFailure() bool {
	return r.Failure != nil
}
