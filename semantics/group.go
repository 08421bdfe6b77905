package semantics

import (
	"slices"

	"github.com/pkg/errors"
)

// MaxBallotSize is the largest group a ballot can report on: 4 words of 32 bits.
const MaxBallotSize = 128

// Group is the set of invocations of an execution group, indexed by their group-relative id.
// Active[id] reports whether the invocation takes part in the operation.
type Group struct {
	Active []bool
}

// FullGroup returns a group of size invocations, all active.
func FullGroup(size int) Group {
	active := make([]bool, size)
	for i := range active {
		active[i] = true
	}
	return Group{Active: active}
}

// Size returns the number of invocations in the group, active or not.
func (g Group) Size() int { return len(g.Active) }

// IsActive returns whether invocation id is active. Ids outside the group are not.
func (g Group) IsActive(id int) bool {
	return id >= 0 && id < len(g.Active) && g.Active[id]
}

// Without returns a copy of the group with the given invocations inactive.
func (g Group) Without(ids ...int) Group {
	active := slices.Clone(g.Active)
	for _, id := range ids {
		if id >= 0 && id < len(active) {
			active[id] = false
		}
	}
	return Group{Active: active}
}

// Elect returns, for each invocation of the group, whether it is elected: only the active invocation with
// the lowest id is. If no invocation is active, none is elected.
func Elect(group Group) ([]bool, error) {
	if group.Size() == 0 {
		return nil, errors.New("Elect: empty group")
	}
	elected := make([]bool, group.Size())
	if first := slices.Index(group.Active, true); first >= 0 {
		elected[first] = true
	}
	return elected, nil
}

// Ballot returns the 4x32-bit mask where bit i (bit i%32 of word i/32) is set if invocation i is active and
// its predicate is true. Bits beyond the group size are zero.
//
// predicates must have one entry per invocation, and the group can have at most MaxBallotSize invocations.
func Ballot(group Group, predicates []bool) ([4]uint32, error) {
	var mask [4]uint32
	if group.Size() > MaxBallotSize {
		return mask, errors.Errorf("Ballot: group of %d invocations exceeds the maximum of %d", group.Size(), MaxBallotSize)
	}
	if len(predicates) != group.Size() {
		return mask, errors.Errorf("Ballot: got %d predicates for a group of %d invocations", len(predicates), group.Size())
	}
	for id, predicate := range predicates {
		if predicate && group.Active[id] {
			mask[id/32] |= 1 << (id % 32)
		}
	}
	return mask, nil
}
