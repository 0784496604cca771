package tables

import (
	"testing"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"field-track-api/internal/domain"
)

func TestSortByOrder(t *testing.T) {
	tables := []domain.Table{
		{ID: "c-2", OrderIndex: 2},
		{ID: "a-0", OrderIndex: 0},
		{ID: "b-1", OrderIndex: 1},
	}
	sorted := SortByOrder(tables)

	require.Len(t, sorted, 3)
	assert.Equal(t, "a-0", sorted[0].ID)
	assert.Equal(t, "b-1", sorted[1].ID)
	assert.Equal(t, "c-2", sorted[2].ID)
	// Input is not mutated
	assert.Equal(t, "c-2", tables[0].ID)
}

func TestGroupBySection_FirstAppearanceOrder(t *testing.T) {
	tables := []domain.Table{
		{Label: "B-1", OrderIndex: 0},
		{Label: "A-1", OrderIndex: 1},
		{Label: "B-2", OrderIndex: 2},
	}
	sections := GroupBySection(tables)

	require.Len(t, sections, 2)
	assert.Equal(t, "B", sections[0].Key)
	assert.Equal(t, "A", sections[1].Key)
	require.Len(t, sections[0].Tables, 2)
	assert.Equal(t, "B-1", sections[0].Tables[0].Label)
	assert.Equal(t, "B-2", sections[0].Tables[1].Label)
}

func TestGroupBySection_SeparatorVariants(t *testing.T) {
	tables := []domain.Table{
		{Label: "2E-01", OrderIndex: 0},
		{Label: "2E_02", OrderIndex: 1},
		{Label: "2E 03", OrderIndex: 2},
		{Label: "2E.04", OrderIndex: 3},
	}
	sections := GroupBySection(tables)

	require.Len(t, sections, 1)
	assert.Equal(t, "2E", sections[0].Key)
	assert.Len(t, sections[0].Tables, 4)
}

func TestGroupBySection_FallbackBucket(t *testing.T) {
	tables := []domain.Table{
		{Label: "42", OrderIndex: 0},
		{Label: "A-1", OrderIndex: 1},
		{Label: "43", OrderIndex: 2},
	}
	sections := GroupBySection(tables)

	require.Len(t, sections, 2)
	assert.Equal(t, FallbackSection, sections[0].Key)
	assert.Len(t, sections[0].Tables, 2)
}

// For any permutation of an inventory, sorting yields the same sequence
// of order indexes, and grouping never loses or duplicates a table.
func TestProperty_OrganizerIsPermutationInvariant(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	projectID := uuid.New()

	properties.Property("sort is canonical under shuffling", prop.ForAll(
		func(count int, seed int) bool {
			inventory := make([]domain.Table, count)
			for i := range inventory {
				inventory[i] = domain.Table{
					ID:         buildTableID("T", i),
					ProjectID:  projectID,
					Label:      "T",
					OrderIndex: i,
				}
			}

			// Deterministic shuffle driven by the generated seed
			shuffled := make([]domain.Table, count)
			copy(shuffled, inventory)
			for i := count - 1; i > 0; i-- {
				j := (seed + i*7919) % (i + 1)
				if j < 0 {
					j = -j
				}
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			}

			sorted := SortByOrder(shuffled)
			for i := range sorted {
				if sorted[i].OrderIndex != i {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 50),
		gen.Int(),
	))

	properties.Property("grouping preserves every table exactly once", prop.ForAll(
		func(count int) bool {
			inventory := make([]domain.Table, count)
			for i := range inventory {
				label := "A-1"
				if i%3 == 0 {
					label = "B-1"
				}
				inventory[i] = domain.Table{
					ID:         buildTableID(label, i),
					Label:      label,
					OrderIndex: i,
				}
			}

			sections := GroupBySection(inventory)
			seen := map[string]int{}
			total := 0
			for _, section := range sections {
				for _, table := range section.Tables {
					seen[table.ID]++
					total++
				}
			}
			if total != count {
				return false
			}
			for _, n := range seen {
				if n != 1 {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 50),
	))

	properties.TestingRun(t)
}
