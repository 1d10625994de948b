package utils

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	id, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)

	parsed, err := ulid.Parse(id)
	require.NoError(t, err)
	assert.NotZero(t, parsed.Time())
}

func TestNewULIDFromTimestampOrdering(t *testing.T) {
	u := New()

	earlier, err := u.NewULIDFromTimestamp(time.Now().Add(-time.Hour))
	require.NoError(t, err)

	later, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)

	assert.Less(t, earlier, later)
}

func TestFormatRupees(t *testing.T) {
	u := New()

	assert.Equal(t, "₹74999", u.FormatRupees(74999))
	assert.Equal(t, "₹0", u.FormatRupees(0))
}
