package origin

import (
	"context"
	"sync"
)

// Sync is an origin without a goroutine of its own: Post runs the task right
// away on the posting goroutine, holding a mutex so tasks never overlap.
//
// A task must not Post to the same Sync origin; check IsCurrent first.
type Sync struct {
	mu      sync.Mutex
	tracker tracker
}

var _ Context = (*Sync)(nil)

func NewSync() *Sync {
	return &Sync{}
}

func (s *Sync) Post(task Task) error {
	if task == nil {
		return ErrNilTask
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	taskCtx, exit := s.tracker.enter(context.Background(), s)
	defer exit()
	task(taskCtx)
	return nil
}

func (s *Sync) IsCurrent(ctx context.Context) bool {
	return s.tracker.isCurrent(ctx, s)
}
