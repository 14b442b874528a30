package model_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fir-portal/internal/model"
)

var caseIDPattern = regexp.MustCompile(`^FIR-\d{8}-[0-9A-F]{8}$`)

func TestNewCaseID(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC)
	id, err := model.NewCaseID(now)
	require.NoError(t, err)
	assert.Regexp(t, caseIDPattern, id)
	assert.Equal(t, "FIR-20240309-", id[:13])
}

func TestNewCaseIDDistinct(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := model.NewCaseID(now)
		require.NoError(t, err)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
