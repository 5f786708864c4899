package dbapi

type StatusPhase string

const (
	StatusPhasePending StatusPhase = "PENDING"
	StatusPhaseSuccess StatusPhase = "SUCCESS"
	StatusPhaseFailed  StatusPhase = "FAILED"
)

// ResourceStatus is the durable outcome of the last reconciliation of a desired resource
type ResourceStatus struct {
	Phase   StatusPhase
	Message string
}

func PendingStatus() ResourceStatus {
	return ResourceStatus{Phase: StatusPhasePending}
}

func SuccessStatus(message string) ResourceStatus {
	return ResourceStatus{Phase: StatusPhaseSuccess, Message: message}
}

func FailedStatus(message string) ResourceStatus {
	return ResourceStatus{Phase: StatusPhaseFailed, Message: message}
}
