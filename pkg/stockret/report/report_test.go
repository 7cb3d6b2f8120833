package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komsit37/stockret/pkg/stockret/dataset"
	"github.com/komsit37/stockret/pkg/stockret/filter"
	"github.com/komsit37/stockret/pkg/stockret/types"
)

func scenario() *dataset.Dataset {
	return dataset.Load([]types.RawRow{
		{"Stock": "A", "Sector": "Tech", "PriceStart": "100", "PriceEnd": "120"},
		{"Stock": "B", "Sector": "Tech", "PriceStart": "50", "PriceEnd": "40"},
		{"Stock": "C", "Sector": "Energy", "PriceStart": "abc", "PriceEnd": "30"},
		{"Stock": "D", "Sector": "Energy", "PriceStart": "10", "PriceEnd": "-5"},
	})
}

func TestAssembleScenario(t *testing.T) {
	rep := Assemble(scenario(), Options{})

	assert.Equal(t, []types.ListingRow{
		{Stock: "A", Sector: "Tech", PriceStart: 100, PriceEnd: 120, Return: 20},
		{Stock: "B", Sector: "Tech", PriceStart: 50, PriceEnd: 40, Return: -20},
	}, rep.Listing)

	assert.Equal(t, DefaultTopN, rep.TopN)
	require.Len(t, rep.Top, 2)
	assert.Equal(t, "A", rep.Top[0].Name)

	require.Equal(t, 1, rep.Summary.Len())
	tech, ok := rep.Summary.Get("Tech")
	require.True(t, ok)
	assert.Equal(t, types.SectorStat{Sector: "Tech", AvgReturn: 0, Count: 2}, tech)
	_, ok = rep.Summary.Get("Energy")
	assert.False(t, ok)

	assert.True(t, rep.HasBest)
	assert.Equal(t, "Tech", rep.Best.Sector)

	require.Len(t, rep.Rejected, 2)
	assert.Equal(t, "Invalid alphabets in PriceStart or PriceEnd", rep.Rejected[0].Reason)
	assert.Equal(t, "Prices must be > 0 (PriceEnd: -5.0)", rep.Rejected[1].Reason)
	assert.Equal(t, 2, rep.Total)
}

func TestAssembleTopOverride(t *testing.T) {
	rep := Assemble(scenario(), Options{TopN: 1})
	require.Len(t, rep.Top, 1)
	assert.Equal(t, "A", rep.Top[0].Name)
}

func TestAssembleEmpty(t *testing.T) {
	rep := Assemble(dataset.Load(nil), Options{})
	assert.True(t, rep.Empty())
	assert.Empty(t, rep.Top)
	assert.Equal(t, 0, rep.Summary.Len())
	assert.False(t, rep.HasBest)
	assert.Empty(t, rep.Rejected)
}

func TestAssembleFilter(t *testing.T) {
	d := dataset.Load([]types.RawRow{
		{"Stock": "A", "Sector": "Tech", "PriceStart": "100", "PriceEnd": "120"},
		{"Stock": "E", "Sector": "Energy", "PriceStart": "10", "PriceEnd": "15"},
		{"Stock": "X", "Sector": "Energy", "PriceStart": "x", "PriceEnd": "15"},
	})
	f, err := filter.Parse("Tech")
	require.NoError(t, err)

	rep := Assemble(d, Options{Filter: f})
	require.Len(t, rep.Listing, 1)
	assert.Equal(t, "A", rep.Listing[0].Stock)
	assert.Equal(t, 1, rep.Summary.Len())
	assert.Equal(t, "Tech", rep.Best.Sector)
	assert.Len(t, rep.Rejected, 1)
	assert.Equal(t, 2, rep.Total)
}
