package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func directory() []Contact {
	return []Contact{
		{ID: 1, Name: "Alice Johnson", Email: "alice@company.com", Role: "Product Manager", Status: StatusOnline},
		{ID: 2, Name: "Bob Smith", Email: "bob@company.com", Role: "Developer", Status: StatusAway},
		{ID: 3, Name: "Charlie Brown", Email: "charlie@company.com", Role: "Designer", Status: StatusOffline},
		{ID: 4, Name: "Diana Prince", Email: "diana@company.com", Status: StatusOnline},
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AJ", Contact{Name: "Alice Johnson"}.Initials())
	assert.Equal(t, "MVB", Contact{Name: "mary van buren"}.Initials())
	assert.Equal(t, "", Contact{}.Initials())
}

func TestMatches(t *testing.T) {
	dir := directory()
	assert.True(t, Matches(dir[0], "alice"))
	assert.True(t, Matches(dir[0], "MANAGER"))
	assert.True(t, Matches(dir[1], "bob@"))
	assert.False(t, Matches(dir[1], "designer"))
	assert.False(t, Matches(dir[3], "lead"), "missing role never matches")
	assert.True(t, Matches(dir[3], ""))
}

func TestOnlineCount(t *testing.T) {
	assert.Equal(t, 2, OnlineCount(directory()))
	assert.Equal(t, 0, OnlineCount(nil))
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("Away")
	require.NoError(t, err)
	assert.Equal(t, StatusAway, s)

	s, err = ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, StatusOffline, s)

	_, err = ParseStatus("busy")
	assert.Error(t, err)
}
