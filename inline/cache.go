package inline

import (
	"github.com/npillmayer/cssinline/dom/style"
	"golang.org/x/net/html"
)

// StyleSource is the style-resolution environment the engine runs against.
// In production this is a cascade.Resolver over the live document; tests
// may substitute any oracle honoring the same contract.
//
// Snapshot may trigger expensive synchronous recomputation and returns nil
// for nodes without resolvable style (non-elements, detached nodes).
// Recompute is the forced re-layout barrier: after tree mutations, computed
// values read without an intervening Recompute may be stale.
type StyleSource interface {
	Snapshot(n *html.Node) *style.Snapshot
	Recompute()
}

// snapshotCache memoizes computed-style lookups per element for the
// duration of one engine run. Entries are never invalidated: the inlining
// pass's bottom-up traversal order guarantees that an ancestor's snapshot
// is always observed before the ancestor itself is mutated, so a cached
// entry stays valid for the comparisons it serves. The cache must not
// outlive the run.
type snapshotCache struct {
	env       StyleSource
	snapshots map[*html.Node]*style.Snapshot
}

func newSnapshotCache(env StyleSource) *snapshotCache {
	return &snapshotCache{
		env:       env,
		snapshots: make(map[*html.Node]*style.Snapshot),
	}
}

// get returns the memoized snapshot for an element, querying the
// environment on first request. A nil snapshot (unresolvable style) is
// memoized as well; callers treat it as "no properties to inline".
func (c *snapshotCache) get(n *html.Node) *style.Snapshot {
	if snap, ok := c.snapshots[n]; ok {
		return snap
	}
	snap := c.env.Snapshot(n)
	c.snapshots[n] = snap
	return snap
}
