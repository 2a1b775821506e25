package scheduler

import "errors"

var (
	// ErrSchedulerNotRunning is returned when work is submitted to a
	// scheduler that has not been started or has been stopped.
	ErrSchedulerNotRunning = errors.New("scheduler is not running")

	// ErrSchedulerAlreadyRunning is returned by Start when the
	// scheduler is already running.
	ErrSchedulerAlreadyRunning = errors.New("scheduler is already running")

	// ErrJobQueueFull is returned when the job queue cannot accept
	// more work.
	ErrJobQueueFull = errors.New("job queue is full")
)
