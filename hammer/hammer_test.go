package hammer

import (
	"testing"

	"github.com/lambdalogan/addresshammer/address"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHammerRejectsOutOfRangeRepairLevel(t *testing.T) {
	_, err := NewHammer(nil, nil, Config{CityRepairLevel: 11})
	require.Error(t, err)
	_, err = NewHammer(nil, nil, Config{StreetRepairLevel: -1})
	require.Error(t, err)
}

// scenario (b): siblings sharing a hard key fill in each other's missing
// directional/suffix/unit, producing exactly one canonical record per unit.
func TestHammerFillsInSoftFieldsAcrossSiblings(t *testing.T) {
	h, err := NewHammer([]string{
		"001 Street City MI",
		"001 Street St City MI",
		"001 E Street City MI",
		"001 Street Apt 0 City MI",
		"001 Street Apt 1 City MI",
	}, nil, Config{KnownCities: []string{"City"}})
	require.NoError(t, err)

	all := h.AsList()
	require.Len(t, all, 2)
	for _, a := range all {
		assert.Equal(t, "ST", a.StSuffix)
		assert.Equal(t, "E", a.StNESW)
		assert.Contains(t, []string{"APT 0", "APT 1"}, a.Unit)
	}
}

// scenario (c): two records sharing a hard key but disagreeing on st_suffix
// land in one ambiguous group instead of being silently merged.
func TestHammerGroupsAmbiguousSiblings(t *testing.T) {
	h, err := NewHammer([]string{
		"0 Main St Smallville AZ",
		"0 Main Rd Smallville AZ",
	}, nil, Config{KnownCities: []string{"Smallville"}})
	require.NoError(t, err)

	groups := h.AmbiguousGroups()
	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 2)
}

func TestHammerGetRoundTripsAStringInput(t *testing.T) {
	h, err := NewHammer([]string{
		"123 Main St Springfield OH 45501",
	}, nil, Config{KnownCities: []string{"Springfield"}})
	require.NoError(t, err)

	a, err := h.Get("123 Main St Springfield OH 45501")
	require.NoError(t, err)
	assert.Equal(t, "SPRINGFIELD", a.City)
}

func TestHammerGetUnknownHardKeyReturnsErrKeyNotFound(t *testing.T) {
	h, err := NewHammer([]string{
		"123 Main St Springfield OH 45501",
	}, nil, Config{KnownCities: []string{"Springfield"}})
	require.NoError(t, err)

	_, err = h.Get("999 Other Ave Elsewhere OH 45502")
	require.Error(t, err)
	var notFound *ErrKeyNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestChecksumIsDeterministicAndBatchSensitive(t *testing.T) {
	inputs := []string{
		"123 Main St Springfield OH 45501",
		"456 Elm Ave Springfield OH 45502",
	}
	h1, err := NewHammer(inputs, nil, Config{KnownCities: []string{"Springfield"}, MakeBatchChecksum: true})
	require.NoError(t, err)
	h2, err := NewHammer(inputs, nil, Config{KnownCities: []string{"Springfield"}, MakeBatchChecksum: true})
	require.NoError(t, err)
	assert.Equal(t, h1.BatchChecksum(), h2.BatchChecksum())
	assert.NotEmpty(t, h1.BatchChecksum())

	h3, err := NewHammer(append(append([]string{}, inputs...), "789 Oak Dr Springfield OH 45503"),
		nil, Config{KnownCities: []string{"Springfield"}, MakeBatchChecksum: true})
	require.NoError(t, err)
	assert.NotEqual(t, h1.BatchChecksum(), h3.BatchChecksum())
}

func TestChecksumMismatchRejectedOnGet(t *testing.T) {
	h1, err := NewHammer([]string{"123 Main St Springfield OH 45501"}, nil,
		Config{KnownCities: []string{"Springfield"}, MakeBatchChecksum: true})
	require.NoError(t, err)
	h2, err := NewHammer([]string{"456 Elm Ave Columbus OH 45502"}, nil,
		Config{KnownCities: []string{"Columbus"}, MakeBatchChecksum: true})
	require.NoError(t, err)

	foreign := h2.AsList()[0]
	_, err = h1.Get(foreign)
	require.Error(t, err)
	var mismatch *ChecksumMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestMapAppliesTransformAcrossBatch(t *testing.T) {
	h, err := NewHammer([]string{"123 Main St Springfield OH 45501"}, nil,
		Config{KnownCities: []string{"Springfield"}})
	require.NoError(t, err)

	h2 := h.Map(func(a address.Address) address.Address {
		return a.WithUnit("APT 1")
	})
	require.Len(t, h2.AsList(), 1)
	assert.Equal(t, "APT 1", h2.AsList()[0].Unit)
	assert.Len(t, h.AsList(), 1)
	assert.Empty(t, h.AsList()[0].Unit)
}
