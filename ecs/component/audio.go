package component

// SoundRequest asks the audio collaborator to play or stop a named clip.
// MaxChannels > 0 stops the clip first when it already plays on more
// channels than that.
type SoundRequest struct {
	Name        string
	Stop        bool
	Volume      float64
	MaxChannels int
	// Once skips the request while the clip is still playing.
	Once bool
}

// SoundQueue collects requests raised during a frame.
type SoundQueue struct {
	Requests []SoundRequest
}

var SoundQueueComponent = NewComponent[SoundQueue]()

func (q *SoundQueue) Play(name string) {
	if q == nil {
		return
	}
	q.Requests = append(q.Requests, SoundRequest{Name: name, Volume: 1})
}

func (q *SoundQueue) PlayLimited(name string, maxChannels int) {
	if q == nil {
		return
	}
	q.Requests = append(q.Requests, SoundRequest{Name: name, Volume: 1, MaxChannels: maxChannels})
}

// PlayOnce starts a looping-style clip unless it is already playing.
func (q *SoundQueue) PlayOnce(name string) {
	if q == nil {
		return
	}
	q.Requests = append(q.Requests, SoundRequest{Name: name, Volume: 1, Once: true})
}

func (q *SoundQueue) Stop(name string) {
	if q == nil {
		return
	}
	q.Requests = append(q.Requests, SoundRequest{Name: name, Stop: true})
}

// Drain returns the queued requests and empties the queue.
func (q *SoundQueue) Drain() []SoundRequest {
	if q == nil || len(q.Requests) == 0 {
		return nil
	}
	out := q.Requests
	q.Requests = nil
	return out
}
