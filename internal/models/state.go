package models

// LoadState is the lifecycle of one orchestrator operation:
// Idle -> Loading -> Succeeded | Failed.
type LoadState string

const (
	StateIdle      LoadState = "idle"
	StateLoading   LoadState = "loading"
	StateSucceeded LoadState = "succeeded"
	StateFailed    LoadState = "failed"
)
