package command

// Callback is a one-shot consumer of a command outcome. A nil *Callback is
// a valid no-op sink, so senders that have no interest in the outcome can
// pass nil without branching downstream.
type Callback struct {
	respCh chan *RaftCmdResponse
	doneFn func()
}

// NewCallback creates a callback whose result can be awaited with Wait
func NewCallback() *Callback {
	return &Callback{respCh: make(chan *RaftCmdResponse, 1)}
}

// NewCallbackWithDone creates a callback that additionally invokes doneFn
// after the response is delivered
func NewCallbackWithDone(doneFn func()) *Callback {
	return &Callback{respCh: make(chan *RaftCmdResponse, 1), doneFn: doneFn}
}

// Done delivers the command outcome. Safe to call on a nil callback.
func (cb *Callback) Done(resp *RaftCmdResponse) {
	if cb == nil {
		return
	}
	cb.respCh <- resp
	if cb.doneFn != nil {
		cb.doneFn()
	}
}

// Wait blocks until the outcome is delivered. Returns nil immediately on a
// nil callback.
func (cb *Callback) Wait() *RaftCmdResponse {
	if cb == nil {
		return nil
	}
	return <-cb.respCh
}
