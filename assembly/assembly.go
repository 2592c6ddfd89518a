package assembly

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateMember indicates a gid listed twice in one assembly.
	ErrDuplicateMember = errors.New("assembly: duplicate member gid")

	// ErrEmptyAssembly indicates an assembly without members.
	ErrEmptyAssembly = errors.New("assembly: no member gids")

	// ErrSeedMismatch indicates an assembly placed in a group of a different seed.
	ErrSeedMismatch = errors.New("assembly: seed does not match group")
)

// Assembly is a named subset of the circuit's gids, keyed by (ID, Seed).
// It is immutable after construction.
type Assembly struct {
	ID   int
	Seed int

	gids    []int64
	members map[int64]struct{}
}

// New validates and builds an Assembly. The gid slice is copied.
func New(id, seed int, gids []int64) (Assembly, error) {
	if len(gids) == 0 {
		return Assembly{}, ErrEmptyAssembly
	}
	members := make(map[int64]struct{}, len(gids))
	own := make([]int64, len(gids))
	for i, gid := range gids {
		if _, dup := members[gid]; dup {
			return Assembly{}, fmt.Errorf("gid %d: %w", gid, ErrDuplicateMember)
		}
		members[gid] = struct{}{}
		own[i] = gid
	}

	return Assembly{ID: id, Seed: seed, gids: own, members: members}, nil
}

// Size returns the number of member gids.
func (a Assembly) Size() int { return len(a.gids) }

// GIDs returns a copy of the member gids in their stored order.
func (a Assembly) GIDs() []int64 {
	out := make([]int64, len(a.gids))
	copy(out, a.gids)

	return out
}

// Contains reports whether gid is a member.
func (a Assembly) Contains(gid int64) bool {
	_, ok := a.members[gid]

	return ok
}

// Group is the ordered collection of assemblies detected in one seed.
type Group struct {
	Seed       int
	Assemblies []Assembly
}

// NewGroup builds a Group; every assembly must carry the group's seed.
func NewGroup(seed int, assemblies []Assembly) (Group, error) {
	for _, a := range assemblies {
		if a.Seed != seed {
			return Group{}, fmt.Errorf("assembly %d has seed %d, group has %d: %w",
				a.ID, a.Seed, seed, ErrSeedMismatch)
		}
	}

	return Group{Seed: seed, Assemblies: assemblies}, nil
}
