package interfaces

// IMutationMetrics receives lifecycle counters from the use cases.
type IMutationMetrics interface {
	ObserveMutation(intent, outcome string)
	ObserveTransition(event, from, to string)
	ObserveAuditWrite(kind string)
}
