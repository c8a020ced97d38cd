package usecase

import (
	"context"
	"sort"

	"github.com/paceline/paceline/internal/pkg/logger"
	"github.com/paceline/paceline/internal/pkg/models"
	"github.com/paceline/paceline/internal/pkg/store"
	"github.com/paceline/paceline/services/liveride"
)

// visibilityUC implements the liveride.VisibilityUC interface by merging
// three live queries: sessions the viewer is invited to, public sessions,
// and followers-only sessions of riders the viewer follows.
type visibilityUC struct {
	repo   liveride.SessionRepo
	social liveride.SocialGW
}

// NewVisibilityUC creates a new visibility use case
func NewVisibilityUC(repo liveride.SessionRepo, social liveride.SocialGW) liveride.VisibilityUC {
	return &visibilityUC{repo: repo, social: social}
}

// StreamVisibleSessions opens the merged feed for viewerID. The first
// emission happens once all three source queries have reported their
// current state; every collection change after that re-emits the full
// deduplicated set, newest session first.
func (uc *visibilityUC) StreamVisibleSessions(ctx context.Context, viewerID string) (<-chan []*models.LiveRideSession, func(), error) {
	// The follow list is resolved once at subscription time. A feed opened
	// before a follow was created will not show that rider until reopened.
	following, err := uc.social.GetFollowing(ctx, viewerID)
	if err != nil {
		logger.Warn("Failed to resolve follow list, followed sessions degraded",
			logger.String("viewer_id", viewerID),
			logger.Err(err))
		following = nil
	}

	streamCtx, cancel := context.WithCancel(ctx)

	invited, err := uc.repo.WatchInvitedSessions(streamCtx, viewerID)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	public, err := uc.repo.WatchPublicSessions(streamCtx)
	if err != nil {
		invited.Unsubscribe()
		cancel()
		return nil, nil, err
	}
	followed, err := uc.repo.WatchFollowedSessions(streamCtx, following)
	if err != nil {
		invited.Unsubscribe()
		public.Unsubscribe()
		cancel()
		return nil, nil, err
	}

	out := make(chan []*models.LiveRideSession, 1)
	go uc.merge(streamCtx, viewerID, out, invited, public, followed)

	stop := func() {
		invited.Unsubscribe()
		public.Unsubscribe()
		followed.Unsubscribe()
		cancel()
	}
	return out, stop, nil
}

// merge fans three live queries into one deduplicated session feed
func (uc *visibilityUC) merge(ctx context.Context, viewerID string, out chan<- []*models.LiveRideSession, subs ...*store.Subscription) {
	defer close(out)

	latest := make([][]store.Record, len(subs))
	ready := make([]bool, len(subs))
	open := len(subs)
	lastEmitted := ""

	type update struct {
		source int
		recs   []store.Record
		ok     bool
	}
	updates := make(chan update)
	for i, sub := range subs {
		go func(source int, ch <-chan []store.Record) {
			for {
				select {
				case recs, ok := <-ch:
					select {
					case updates <- update{source: source, recs: recs, ok: ok}:
					case <-ctx.Done():
						return
					}
					if !ok {
						return
					}
				case <-ctx.Done():
					return
				}
			}
		}(i, sub.Updates())
	}

	for {
		select {
		case <-ctx.Done():
			return
		case u := <-updates:
			if !u.ok {
				open--
				if open == 0 {
					return
				}
				continue
			}
			latest[u.source] = u.recs
			ready[u.source] = true
			if !allReady(ready) {
				continue
			}

			merged := mergeRecords(latest)
			fp := store.Fingerprint(merged)
			if fp == lastEmitted {
				continue
			}
			lastEmitted = fp

			sessions, err := composeVisible(merged, viewerID)
			if err != nil {
				logger.Error("Failed to decode visible session set",
					logger.String("viewer_id", viewerID),
					logger.Err(err))
				continue
			}
			select {
			case out <- sessions:
			case <-ctx.Done():
				return
			}
		}
	}
}

func allReady(ready []bool) bool {
	for _, r := range ready {
		if !r {
			return false
		}
	}
	return true
}

// mergeRecords unions the source result sets, deduplicating by id. Order
// is normalised so fingerprinting sees identical sets as identical.
func mergeRecords(sources [][]store.Record) []store.Record {
	seen := make(map[string]struct{})
	var merged []store.Record
	for _, recs := range sources {
		for _, rec := range recs {
			id := rec.ID()
			if id == "" {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			merged = append(merged, rec)
		}
	}
	store.SortByID(merged)
	return merged
}

// composeVisible decodes the merged set, drops the viewer's own sessions
// and orders newest first
func composeVisible(recs []store.Record, viewerID string) ([]*models.LiveRideSession, error) {
	sessions := make([]*models.LiveRideSession, 0, len(recs))
	for _, rec := range recs {
		var session models.LiveRideSession
		if err := store.Decode(rec, &session); err != nil {
			return nil, err
		}
		if session.RiderID == viewerID {
			continue
		}
		sessions = append(sessions, &session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].StartedAt.Equal(sessions[j].StartedAt) {
			return sessions[i].StartedAt.After(sessions[j].StartedAt)
		}
		return sessions[i].ID < sessions[j].ID
	})
	return sessions, nil
}
