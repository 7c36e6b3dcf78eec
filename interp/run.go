package interp

// RunUntilEnvironmentAdvances steps until one tick has been charged and then
// reports whether the environment has finished.
func (i *Interpreter) RunUntilEnvironmentAdvances() bool {
	for !i.Step() {
	}
	return i.env.Finished()
}

// RunUntilEnvironmentFinishes steps until the environment reports that it has
// finished and then reports whether the game was won. The program restarts
// from the top every time a round completes, so the caller must make sure the
// environment finishes eventually.
func (i *Interpreter) RunUntilEnvironmentFinishes() bool {
	for !i.env.Finished() {
		i.Step()
	}
	return i.env.Won()
}
