package game

// Recorder wraps an Environment and records every action passed to Advance.
type Recorder struct {
	Environment
	Actions []Action
}

// NewRecorder returns a recorder around env.
func NewRecorder(env Environment) *Recorder {
	return &Recorder{Environment: env}
}

func (r *Recorder) Advance(action Action) bool {
	r.Actions = append(r.Actions, action)
	return r.Environment.Advance(action)
}

// Count returns how many times action was taken.
func (r *Recorder) Count(action Action) int {
	n := 0
	for _, a := range r.Actions {
		if a == action {
			n++
		}
	}
	return n
}
