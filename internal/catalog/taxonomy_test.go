package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorOptions_PureLookup(t *testing.T) {
	assert.Equal(t, []string{"John", "Tom", "Emily"}, MinorOptions("Personal"))
	assert.Equal(t, []string{"Accounts", "HR", "IT", "Finance"}, MinorOptions("Professional"))
	assert.Empty(t, MinorOptions(""))
	assert.Empty(t, MinorOptions("Unknown"))
}

func TestMinorOptions_ReturnsCopy(t *testing.T) {
	opts := MinorOptions("Personal")
	opts[0] = "mutated"
	assert.Equal(t, []string{"John", "Tom", "Emily"}, MinorOptions("Personal"))
}

func TestValidMinor(t *testing.T) {
	assert.True(t, ValidMinor("Personal", "Tom"))
	assert.True(t, ValidMinor("Professional", "Finance"))
	assert.True(t, ValidMinor("Personal", ""), "empty minor is always valid")
	assert.True(t, ValidMinor("", ""))

	assert.False(t, ValidMinor("Personal", "HR"), "minor from the other major")
	assert.False(t, ValidMinor("", "Tom"), "minor without a major is meaningless")
}

func TestSelection_MajorChangeClearsMinor(t *testing.T) {
	var sel Selection
	require.NoError(t, sel.SetMajorHead("Personal"))
	require.NoError(t, sel.SetMinorHead("Tom"))

	require.NoError(t, sel.SetMajorHead("Professional"))
	major, minor := sel.Heads()
	assert.Equal(t, "Professional", major)
	assert.Empty(t, minor, "minor must reset when major changes")
}

func TestSelection_SameMajorKeepsMinor(t *testing.T) {
	var sel Selection
	require.NoError(t, sel.SetMajorHead("Personal"))
	require.NoError(t, sel.SetMinorHead("Emily"))
	require.NoError(t, sel.SetMajorHead("Personal"))

	_, minor := sel.Heads()
	assert.Equal(t, "Emily", minor)
}

func TestSelection_ClearMajor(t *testing.T) {
	var sel Selection
	require.NoError(t, sel.SetMajorHead("Personal"))
	require.NoError(t, sel.SetMinorHead("John"))
	require.NoError(t, sel.SetMajorHead(""))

	major, minor := sel.Heads()
	assert.Empty(t, major)
	assert.Empty(t, minor)
}

func TestSelection_RejectsInvalid(t *testing.T) {
	var sel Selection
	assert.Error(t, sel.SetMajorHead("Confidential"))
	assert.Error(t, sel.SetMinorHead("Tom"), "no major selected yet")

	require.NoError(t, sel.SetMajorHead("Professional"))
	assert.Error(t, sel.SetMinorHead("Tom"), "Tom is a Personal minor head")
}
