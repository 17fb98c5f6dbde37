package transfer

import (
	"sync"

	"github.com/c2fo/boxsync"
)

// Response is the outcome of an asynchronous exchange: the raw status text or an error, plus the
// user state supplied when the operation started.
type Response[S any] struct {
	Status    string
	Err       error
	UserState S
}

// Callback receives the Response of an asynchronous operation.
type Callback[S any] func(Response[S])

// Completer is notified once an asynchronous exchange resolves.
type Completer interface {
	Complete(status string, err error)
}

// State carries a callback and the caller's user state across an asynchronous exchange.
// The callback fires at most once no matter how many times Complete is called.
type State[S any] struct {
	userState S
	callback  Callback[S]
	once      sync.Once
}

// NewState returns a State for callback and userState. A nil callback is a precondition error.
func NewState[S any](callback Callback[S], userState S) (*State[S], error) {
	if callback == nil {
		return nil, boxsync.NewOpError("new state", boxsync.KindPrecondition, boxsync.ErrNilCallback)
	}
	return &State[S]{userState: userState, callback: callback}, nil
}

// UserState returns the value supplied to NewState.
func (s *State[S]) UserState() S {
	return s.userState
}

// Complete invokes the callback with status, err and the user state. Calls after the first are ignored.
func (s *State[S]) Complete(status string, err error) {
	s.once.Do(func() {
		s.callback(Response[S]{Status: status, Err: err, UserState: s.userState})
	})
}
