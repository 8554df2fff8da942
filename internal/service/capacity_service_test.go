package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/averra-labs/trainhub/pkg/errors"
	"github.com/averra-labs/trainhub/pkg/idgen"
)

func TestCapacityServiceReport(t *testing.T) {
	alloc, err := idgen.New(idgen.Config{})
	require.NoError(t, err)
	svc := NewCapacityService(alloc, nil)

	_, err = alloc.Next(idgen.KindStudent)
	require.NoError(t, err)

	report := svc.Report()
	assert.Equal(t, 0.9, report.Threshold)
	assert.False(t, report.Approaching)
	require.Len(t, report.Kinds, 5)
	assert.Equal(t, idgen.KindPerson, report.Kinds[0].Kind)
	assert.Equal(t, idgen.KindTrainer, report.Kinds[4].Kind)

	student := report.Kinds[1]
	assert.Equal(t, idgen.KindStudent, student.Kind)
	assert.Equal(t, int64(1), student.Issued)
	assert.Equal(t, int64(999), student.Remaining)
	assert.Equal(t, int64(1001), student.NextID)
}

func TestCapacityServiceUsage(t *testing.T) {
	alloc, err := idgen.New(idgen.Config{})
	require.NoError(t, err)
	svc := NewCapacityService(alloc, nil)

	usage, err := svc.Usage(idgen.KindCourse)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), usage.Remaining)

	_, err = svc.Usage(idgen.Kind("invoice"))
	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))
}

func TestCapacityServiceWarnings(t *testing.T) {
	alloc, err := idgen.New(idgen.Config{Ranges: map[idgen.Kind]idgen.Range{
		idgen.KindStudent: {Start: 1, End: 10},
		idgen.KindCourse:  {Start: 11, End: 20},
	}})
	require.NoError(t, err)
	svc := NewCapacityService(alloc, nil)

	for i := 0; i < 8; i++ {
		_, err := alloc.Next(idgen.KindStudent)
		require.NoError(t, err)
	}
	assert.Empty(t, svc.Warnings())
	assert.False(t, svc.ApproachingCapacity())

	_, err = alloc.Next(idgen.KindStudent)
	require.NoError(t, err)

	warnings := svc.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "student")
	assert.True(t, svc.ApproachingCapacity())
}
