package kernel

import "sort"

// IDSet is an identity-keyed set of EntityID values. Membership is defined
// solely by identity, insertion order is irrelevant, and both Add and Remove
// are idempotent: adding a present id or removing an absent one is a silent
// no-op, never an error and never a duplicate.
//
// The zero IDSet is not usable; create instances via NewIDSet.
type IDSet struct {
	members map[EntityID]struct{}
}

// NewIDSet creates a set containing the given ids. Duplicates collapse.
func NewIDSet(ids ...EntityID) IDSet {
	s := IDSet{members: make(map[EntityID]struct{}, len(ids))}
	for _, id := range ids {
		s.members[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set. Inserting a present id is a no-op.
func (s IDSet) Add(id EntityID) {
	s.members[id] = struct{}{}
}

// Remove deletes id from the set. Removing an absent id is a no-op.
func (s IDSet) Remove(id EntityID) {
	delete(s.members, id)
}

// Contains reports whether id is a member of the set.
func (s IDSet) Contains(id EntityID) bool {
	_, ok := s.members[id]
	return ok
}

// Len returns the number of members.
func (s IDSet) Len() int {
	return len(s.members)
}

// IsEmpty reports whether the set has no members.
func (s IDSet) IsEmpty() bool {
	return len(s.members) == 0
}

// Clear removes all members from the set.
func (s IDSet) Clear() {
	for id := range s.members {
		delete(s.members, id)
	}
}

// Values returns the members sorted by identity value. Sorting gives callers
// a deterministic order for persistence and tests.
func (s IDSet) Values() []EntityID {
	values := make([]EntityID, 0, len(s.members))
	for id := range s.members {
		values = append(values, id)
	}
	sort.Slice(values, func(i, j int) bool {
		return values[i].Int64() < values[j].Int64()
	})
	return values
}

// IsEqual reports whether both sets have exactly the same members.
func (s IDSet) IsEqual(other IDSet) bool {
	if len(s.members) != len(other.members) {
		return false
	}
	for id := range s.members {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}
