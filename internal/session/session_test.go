package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterlens/internal/aggregate"
	"rosterlens/internal/errors"
	"rosterlens/internal/sniff"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()

	current, err := store.Current()
	assert.Nil(t, current)
	assert.NoError(t, err)

	analysis := NewAnalysis(&sniff.Report{FileName: "a.xlsx"}, nil, aggregate.Result{})
	require.NotEmpty(t, analysis.ID)
	store.Set(analysis)

	current, err = store.Current()
	require.NotNil(t, current)
	assert.NoError(t, err)
	assert.Equal(t, "a.xlsx", current.Report.FileName)

	store.Reset()
	current, err = store.Current()
	assert.Nil(t, current)
	assert.NoError(t, err)
}

// A failed upload is terminal: prior results are discarded, no partial
// state survives.
func TestFailDiscardsPriorResults(t *testing.T) {
	store := NewStore()
	store.Set(NewAnalysis(&sniff.Report{FileName: "a.xlsx"}, nil, aggregate.Result{}))

	store.Fail(errors.MissingColumns([]string{"Leidinggevende"}))

	current, err := store.Current()
	assert.Nil(t, current)
	require.Error(t, err)
	assert.Equal(t, errors.CodeMissingColumns, errors.GetCode(err))
}

// A new successful upload clears a previous terminal error.
func TestSetClearsPriorError(t *testing.T) {
	store := NewStore()
	store.Fail(errors.DecodeFailure(nil))

	store.Set(NewAnalysis(&sniff.Report{}, nil, aggregate.Result{}))

	current, err := store.Current()
	assert.NotNil(t, current)
	assert.NoError(t, err)
}

func TestAnalysisIDsAreUnique(t *testing.T) {
	a := NewAnalysis(&sniff.Report{}, nil, aggregate.Result{})
	b := NewAnalysis(&sniff.Report{}, nil, aggregate.Result{})
	assert.NotEqual(t, a.ID, b.ID)
}
