package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenarioA(t *testing.T) {
	p := NewParser(nil, nil)
	a, err := p.Parse("3710 Michigane AVE SW apt #447 Grand Rapids MI 49588")
	require.NoError(t, err)
	assert.Equal(t, "3710", a.HouseNumber)
	assert.Equal(t, "MICHIGANE", a.StName)
	assert.Equal(t, "AVE", a.StSuffix)
	assert.Equal(t, "SW", a.StNESW)
	assert.Equal(t, "APT 447", a.Unit)
	assert.Equal(t, "GRAND RAPIDS", a.City)
	assert.Equal(t, "MI", a.UsState)
	assert.Equal(t, "49588", a.ZipCode)
}

func TestParseScenarioD(t *testing.T) {
	p := NewParser(nil, nil)
	a, err := p.Parse("15 1/2 4th St S Central City IA 52214")
	require.NoError(t, err)
	assert.Equal(t, "151/2", normalizeSlash(a.HouseNumber))
	assert.Equal(t, "4TH", a.StName)
	assert.Equal(t, "ST", a.StSuffix)
	assert.Equal(t, "S", a.StNESW)
	assert.Equal(t, "CENTRAL CITY", a.City)
	assert.Equal(t, "IA", a.UsState)
	assert.Equal(t, "52214", a.ZipCode)
}

// normalizeSlash drops every space, so "15 1/2" becomes "151/2" and this
// test doesn't care whether collectResults keeps the house number's
// internal space.
func normalizeSlash(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

// "PARK" is itself a valid USPS street-suffix abbreviation as well as an
// ordinary street-name word; handleManySuffix is what lets it land in
// st_name here instead of being mistaken for the suffix.
func TestHandleManySuffixFoldsEarlierSuffixIntoStName(t *testing.T) {
	p := NewParser(nil, nil)
	a, err := p.Parse("123 Park Ave Mapleton OH 44000")
	require.NoError(t, err)
	assert.Equal(t, "PARK", a.StName)
	assert.Equal(t, "AVE", a.StSuffix)
}

func TestStateLongFormIsMultiWord(t *testing.T) {
	p := NewParser(nil, nil)
	a, err := p.Parse("123 Main St Pierre South Dakota 57501")
	require.NoError(t, err)
	assert.Equal(t, "SD", a.UsState)
	assert.Equal(t, "PIERRE", a.City)
}

func TestParseMissingHardFieldFails(t *testing.T) {
	p := NewParser(nil, nil)
	_, err := p.Parse("Main St")
	require.Error(t, err)
}

func TestParseRowSmoke(t *testing.T) {
	p := NewParser([]string{"Grand Rapids"}, nil)
	a, err := p.ParseRow([]string{"3710 Michigane AVE SW", "Grand Rapids", "MI", "49588"})
	require.NoError(t, err)
	assert.Equal(t, "3710", a.HouseNumber)
	assert.Equal(t, "MI", a.UsState)
}

func TestDifficultAddressesDoNotPanic(t *testing.T) {
	p := NewParser(nil, nil)
	for _, addr := range DifficultAddresses {
		_, err := p.Parse(addr)
		if err != nil {
			t.Logf("difficult address did not parse cleanly (expected for some fixtures): %s: %v", addr, err)
		}
	}
}

func TestSmartBatchRepairsDirtyCity(t *testing.T) {
	p := NewParser(nil, nil)
	var reported []string
	out := SmartBatch(p, []string{
		"123 Main St Springfield OH 45501",
		"456 Elm, Springfield OH 45501",
	}, func(err error, orig string) {
		reported = append(reported, orig)
	})
	assert.Len(t, out, 2)
	assert.Empty(t, reported)
}
