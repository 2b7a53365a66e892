package constants

// JobStatus is the canonical status for rows in jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending   JobStatus = "PENDING"   // created, not yet run to completion
	JobStatusCompleted JobStatus = "COMPLETED" // terminal success
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
)

// JobStatuses holds the allowed values for the status field in Job.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusCompleted),
	string(JobStatusFailed),
}
