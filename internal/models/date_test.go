package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.March, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-01"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, d.Equal(parsed))
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2026, time.February, 27)
	assert.Equal(t, "2026-03-01", d.AddDays(2).String())
	assert.Equal(t, "2026-02-27", d.AddDays(0).String())
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2026, time.March, 1, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, "2026-03-01", d.String())

	require.NoError(t, d.Scan("2026-08-28 00:00:00"))
	assert.Equal(t, "2026-08-28", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}
