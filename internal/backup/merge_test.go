package backup

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID    string
	Value int
}

func (e entry) EntityID() string {
	return e.ID
}

func TestMerge_IncomingWinsOnConflict(t *testing.T) {
	current := []entry{{ID: "a", Value: 1}, {ID: "b", Value: 2}}
	incoming := []entry{{ID: "b", Value: 20}, {ID: "c", Value: 30}}

	merged := Merge(current, incoming)

	require.Len(t, merged, 3)
	assert.Equal(t, entry{ID: "a", Value: 1}, merged[0])
	assert.Equal(t, entry{ID: "b", Value: 20}, merged[1])
	assert.Equal(t, entry{ID: "c", Value: 30}, merged[2])
}

func TestMerge_EmptySides(t *testing.T) {
	incoming := []entry{{ID: "a", Value: 1}}

	assert.Equal(t, incoming, Merge(nil, incoming))
	assert.Equal(t, incoming, Merge(incoming, nil))
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	current := []entry{{ID: "a", Value: 1}}
	incoming := []entry{{ID: "a", Value: 2}}

	Merge(current, incoming)

	assert.Equal(t, 1, current[0].Value)
}

// Merging is deterministic: the result depends only on the inputs, every
// incoming entry is present with its incoming value, and no id appears
// twice.
func TestProperty_MergeReconciliation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	makeEntries := func(ids []int, tag int) []entry {
		entries := make([]entry, 0, len(ids))
		seen := map[int]bool{}
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			entries = append(entries, entry{ID: fmt.Sprintf("e%d", id), Value: tag*1000 + id})
		}
		return entries
	}

	properties.Property("incoming always wins and ids stay unique", prop.ForAll(
		func(currentIDs, incomingIDs []int) bool {
			current := makeEntries(currentIDs, 1)
			incoming := makeEntries(incomingIDs, 2)

			merged := Merge(current, incoming)

			byID := map[string]entry{}
			for _, e := range merged {
				if _, dup := byID[e.ID]; dup {
					return false
				}
				byID[e.ID] = e
			}
			for _, e := range incoming {
				if byID[e.ID] != e {
					return false
				}
			}
			for _, e := range current {
				if _, ok := byID[e.ID]; !ok {
					return false
				}
			}
			return len(merged) == len(byID)
		},
		gen.SliceOf(gen.IntRange(0, 20)),
		gen.SliceOf(gen.IntRange(0, 20)),
	))

	properties.Property("merge is idempotent", prop.ForAll(
		func(currentIDs, incomingIDs []int) bool {
			current := makeEntries(currentIDs, 1)
			incoming := makeEntries(incomingIDs, 2)

			once := Merge(current, incoming)
			twice := Merge(once, incoming)

			if len(once) != len(twice) {
				return false
			}
			for i := range once {
				if once[i] != twice[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 20)),
		gen.SliceOf(gen.IntRange(0, 20)),
	))

	properties.TestingRun(t)
}
