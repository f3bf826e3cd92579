package conversion

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Booru/internal/post"
)

type State int

const (
	Created State = iota
	Encoding
	Processed
	Removed
)

func (state State) String() string {
	switch state {
	case Created:
		return "CREATED"
	case Encoding:
		return "ENCODING"
	case Processed:
		return "PROCESSED"
	case Removed:
		return "REMOVED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(state))
	}
}

// Job is a single detached conversion of an uploaded payload in to the
// served format for a post. A job only ever moves forward through its
// states: Created -> Encoding -> (Processed | Removed).
type Job struct {
	*sync.Mutex
	id        uuid.UUID
	postID    int
	mediaType post.Type
	state     State
	createdAt time.Time

	image   image.Image
	payload []byte
}

func newJob(postID int, mediaType post.Type) *Job {
	return &Job{
		Mutex:     &sync.Mutex{},
		id:        uuid.New(),
		postID:    postID,
		mediaType: mediaType,
		state:     Created,
		createdAt: time.Now(),
	}
}

func (job *Job) ID() uuid.UUID        { return job.id }
func (job *Job) PostID() int          { return job.postID }
func (job *Job) Type() post.Type      { return job.mediaType }
func (job *Job) CreatedAt() time.Time { return job.createdAt }

func (job *Job) State() State {
	job.Lock()
	defer job.Unlock()
	return job.state
}

func (job *Job) setState(state State) {
	job.Lock()
	defer job.Unlock()
	job.state = state
}

// release drops the reference to the source media once the job has
// concluded so that it can be garbage collected while the job is
// still observable.
func (job *Job) release() {
	job.Lock()
	defer job.Unlock()
	job.image = nil
	job.payload = nil
}

func (job *Job) String() string {
	return fmt.Sprintf("Job{ID=%s Post=%d Type=%s}", job.id, job.postID, job.mediaType)
}
