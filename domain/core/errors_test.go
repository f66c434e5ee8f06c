package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	loadErr := NewDataLoadError("data.csv", errors.New("file is empty"))
	assert.True(t, IsDataLoadError(loadErr))
	assert.False(t, IsStateError(loadErr))
	assert.Contains(t, loadErr.Error(), "data.csv")

	stateErr := NewStateError("GetStatistics", "computed statistics")
	assert.True(t, IsStateError(stateErr))
	assert.Contains(t, stateErr.Error(), "GetStatistics")

	visErr := NewVisualizationError("no numeric columns to plot")
	assert.True(t, IsVisualizationError(visErr))

	exportErr := NewExportError("out/stats.csv", errors.New("no statistics computed"))
	assert.True(t, IsExportError(exportErr))
	assert.Contains(t, exportErr.Error(), "out/stats.csv")
}

func TestErrorWrappingSurvivesFurtherContext(t *testing.T) {
	err := fmt.Errorf("pipeline: %w", NewDataLoadError("x.csv", errors.New("boom")))
	assert.True(t, IsDataLoadError(err))
}
