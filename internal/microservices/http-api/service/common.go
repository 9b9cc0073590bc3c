package service

import (
	"context"
	"sync"
	"time"

	"moviehub/internal/events"
	"moviehub/internal/logging"
	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/repository"
	"moviehub/internal/storage"
)

const publishTimeout = 5 * time.Second

// Limits bounds list sizes.
type Limits struct {
	DefaultPageSize int
	MaxPageSize     int
	LandingPageSize int
	SearchLimit     int
}

func DefaultLimits() Limits {
	return Limits{
		DefaultPageSize: 10,
		MaxPageSize:     50,
		LandingPageSize: 6,
		SearchLimit:     5,
	}
}

func (l Limits) page(p dto.PaginationDTO) repository.Page {
	return repository.NewPage(p.Page, p.PageSize, l.DefaultPageSize, l.MaxPageSize)
}

// Notifier publishes events off the request path. Failures are logged only.
// Services built for one server share a Notifier so shutdown can drain it.
type Notifier struct {
	pub events.Publisher
	wg  sync.WaitGroup
}

func NewNotifier(pub events.Publisher) *Notifier {
	if pub == nil {
		pub = events.NoopPublisher{}
	}
	return &Notifier{pub: pub}
}

func (n *Notifier) publish(ctx context.Context, ev events.Event) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	ctx = context.WithoutCancel(ctx)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()
		if err := n.pub.Publish(ctx, ev); err != nil {
			logging.FromContext(ctx).Warn("event not published", "type", ev.Type, "entity_id", ev.EntityID, "error", err)
		}
	}()
}

func orNoop(n *Notifier) *Notifier {
	if n == nil {
		return NewNotifier(nil)
	}
	return n
}

// Wait blocks until every in-flight publish returned or ctx is done.
func (n *Notifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// removeAsset deletes a file whose owning row is already gone. A failure
// leaves an orphan, which is logged and announced for a sweeper.
func (n *Notifier) removeAsset(ctx context.Context, files storage.FileStore, url, container string, ownerID int64) {
	if url == "" {
		return
	}
	if err := files.Delete(ctx, url, container); err != nil {
		logging.FromContext(ctx).Warn("asset not removed", "url", url, "container", container, "error", err)
		n.publish(ctx, events.Event{
			Type:      events.AssetOrphaned,
			EntityID:  ownerID,
			AssetURL:  url,
			Container: container,
			Reason:    err.Error(),
		})
	}
}

// replaceAsset runs write with the row already pointing at newURL. Only a
// successful write drops oldURL; a failed one drops newURL, so the row never
// references a file that is gone.
func (n *Notifier) replaceAsset(ctx context.Context, files storage.FileStore, container, oldURL, newURL string, ownerID int64, write func() error) error {
	if err := write(); err != nil {
		if newURL != oldURL {
			n.removeAsset(ctx, files, newURL, container, ownerID)
		}
		return err
	}
	if newURL != oldURL {
		n.removeAsset(ctx, files, oldURL, container, ownerID)
	}
	return nil
}

// dateOnly drops the clock part, keeping the calendar day of t.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
