// ABOUTME: Set-merge policies for reconciling local and cloud snapshots.
// ABOUTME: Policies differ only in which side wins when ids collide.
package merge

// Policy decides how a remote snapshot combines with the local one. Each
// entity type declares its policy; the sync engine dispatches generically.
type Policy int

const (
	// RemoteOverwrite writes every remote record into the local store,
	// replacing local records that share an id. Used where concurrent edits
	// from two devices are rare and an explicit remote delete call covers
	// deletion (workouts), or where records are rehydrated wholesale (goals).
	RemoteOverwrite Policy = iota

	// InsertOnlyIfMissing inserts remote records whose id is absent locally
	// and never overwrites an existing local record. This keeps a local
	// delete from being resurrected by a cloud copy that predates the
	// paired remote delete. If that remote delete failed outright, the
	// stale cloud row is indistinguishable from a new one and comes back
	// on the next pass; tombstones would close that hole, absence-based
	// deletes cannot.
	InsertOnlyIfMissing
)

func (p Policy) String() string {
	switch p {
	case RemoteOverwrite:
		return "remote_overwrite"
	case InsertOnlyIfMissing:
		return "insert_only_if_missing"
	default:
		return "unknown"
	}
}

// Result is the outcome of reconciling one entity type.
type Result[T any] struct {
	// Merged is the full post-merge set: what the local store holds after
	// the pass, and what gets uploaded so the cloud converges to the same
	// set.
	Merged []*T

	// ToWrite is the subset of Merged that must be written to the local
	// store: records the remote side won or that only the remote had.
	ToWrite []*T
}

// Reconcile combines local and remote snapshots of one entity type under the
// given policy. Records are keyed by id; local-only records always survive
// (they are new writes awaiting upload). Order: local records first, then
// remote-only records in remote order.
func Reconcile[T any](policy Policy, local, remote []*T, id func(*T) string) Result[T] {
	localByID := make(map[string]int, len(local))
	for i, rec := range local {
		localByID[id(rec)] = i
	}

	merged := make([]*T, len(local))
	copy(merged, local)

	var toWrite []*T
	for _, rec := range remote {
		if i, exists := localByID[id(rec)]; exists {
			if policy == RemoteOverwrite {
				merged[i] = rec
				toWrite = append(toWrite, rec)
			}
			// InsertOnlyIfMissing: local record stays untouched.
			continue
		}
		merged = append(merged, rec)
		toWrite = append(toWrite, rec)
	}

	return Result[T]{Merged: merged, ToWrite: toWrite}
}
