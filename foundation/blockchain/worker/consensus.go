package worker

import "time"

// resolveOperations periodically resolves conflicts with the known peers.
func (w *Worker) resolveOperations() {
	w.evHandler("worker: resolveOperations: G started")
	defer w.evHandler("worker: resolveOperations: G completed")

	ticker := time.NewTicker(w.resolveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !w.isShutdown() {
				w.runResolveOperation()
			}
		case <-w.shut:
			w.evHandler("worker: resolveOperations: received shut signal")
			return
		}
	}
}

// runResolveOperation replaces the local chain if a peer has a longer
// valid chain.
func (w *Worker) runResolveOperation() {
	w.evHandler("worker: runResolveOperation: started")
	defer w.evHandler("worker: runResolveOperation: completed")

	if w.state.Resolve(w.ctx) {
		w.evHandler("worker: runResolveOperation: chain replaced: length[%d]", len(w.state.RetrieveChain()))
	}
}
