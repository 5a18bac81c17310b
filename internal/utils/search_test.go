package utils_test

import (
	"testing"

	"github.com/daftari-app/daftari/internal/utils"
	"github.com/stretchr/testify/assert"
)

type record struct {
	Name  string
	Phone string
	Rank  int
}

func fieldsOf(r record) []string {
	return []string{r.Name, r.Phone}
}

func TestSearchRecords(t *testing.T) {
	items := []record{
		{Name: "Ahmed Hassan", Phone: "0100123456"},
		{Name: "Sara", Phone: "0111999888"},
		{Name: "hassan ali", Phone: "0122000111"},
	}

	t.Run("blank term returns input", func(t *testing.T) {
		assert.Equal(t, items, utils.SearchRecords(items, "", fieldsOf))
		assert.Equal(t, items, utils.SearchRecords(items, "   ", fieldsOf))
	})

	t.Run("case insensitive name match", func(t *testing.T) {
		got := utils.SearchRecords(items, "HASSAN", fieldsOf)
		assert.Len(t, got, 2)
	})

	t.Run("phone substring match", func(t *testing.T) {
		got := utils.SearchRecords(items, "999", fieldsOf)
		assert.Len(t, got, 1)
		assert.Equal(t, "Sara", got[0].Name)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, utils.SearchRecords(items, "xyz", fieldsOf))
	})
}

func TestSortRecords(t *testing.T) {
	items := []record{
		{Name: "c", Rank: 3},
		{Name: "a", Rank: 1},
		{Name: "b", Rank: 2},
	}
	byRank := func(x, y record) bool { return x.Rank < y.Rank }

	asc := utils.SortRecords(items, byRank, false)
	assert.Equal(t, []int{1, 2, 3}, []int{asc[0].Rank, asc[1].Rank, asc[2].Rank})

	desc := utils.SortRecords(items, byRank, true)
	assert.Equal(t, []int{3, 2, 1}, []int{desc[0].Rank, desc[1].Rank, desc[2].Rank})

	// Input order is untouched.
	assert.Equal(t, 3, items[0].Rank)
}

func TestSortRecordsStable(t *testing.T) {
	items := []record{
		{Name: "first", Rank: 1},
		{Name: "second", Rank: 1},
		{Name: "third", Rank: 1},
	}
	sorted := utils.SortRecords(items, func(x, y record) bool { return x.Rank < y.Rank }, false)
	assert.Equal(t, "first", sorted[0].Name)
	assert.Equal(t, "second", sorted[1].Name)
	assert.Equal(t, "third", sorted[2].Name)
}
