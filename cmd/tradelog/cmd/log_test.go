package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tradelog/ledger"
)

func TestResolveDate(t *testing.T) {
	t.Parallel()

	got, err := resolveDate("2024-01-10")
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-10", got)

	_, err = resolveDate("10/01/2024")
	assert.Error(t, err)

	_, err = resolveDate("2024-13-40")
	assert.Error(t, err)
}

func TestResolveDateDefaultsToLocalToday(t *testing.T) {
	t.Parallel()

	got, err := resolveDate("")
	assert.NoError(t, err)
	assert.Equal(t, ledger.Key(time.Now()), got)
}
