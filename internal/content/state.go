package content

import (
	"time"

	"portfolio/site/internal/models"
)

// Status is the lifecycle of the project query.
type Status int

const (
	// StatusPending means no data is available yet.
	StatusPending Status = iota
	// StatusSuccess carries the ordered project list, possibly empty.
	StatusSuccess
	// StatusFailure carries the fetch error.
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is a snapshot of the project query.
type State struct {
	Status    Status
	Projects  []models.Project
	Err       error
	FetchedAt time.Time
}

// Pending returns the state before any data is known.
func Pending() State {
	return State{Status: StatusPending}
}

// Succeeded wraps a fetched project list.
func Succeeded(projects []models.Project, at time.Time) State {
	if projects == nil {
		projects = []models.Project{}
	}
	return State{Status: StatusSuccess, Projects: projects, FetchedAt: at}
}

// Failed wraps a fetch error.
func Failed(err error) State {
	return State{Status: StatusFailure, Err: err}
}
