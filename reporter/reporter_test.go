package reporter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errFirst  = errors.New("first")
	errSecond = errors.New("second")
	errThird  = errors.New("third")
)

func TestReporterEmpty(t *testing.T) {
	r := New(false)

	assert.True(t, r.IsEmpty())
	assert.Empty(t, r.Errors())
	require.NoError(t, r.Err())

	var buf bytes.Buffer
	r.Show(&buf)
	assert.Empty(t, buf.String())
}

func TestReporterIgnoresNil(t *testing.T) {
	r := New(false)
	r.Report(nil)
	assert.True(t, r.IsEmpty())
}

func TestReporterKeepsOrder(t *testing.T) {
	r := New(false)
	r.Report(errFirst)
	r.Report(errSecond)

	assert.False(t, r.IsEmpty())
	assert.Equal(t, []error{errFirst, errSecond}, r.Errors())
}

func TestReporterFlattensAggregates(t *testing.T) {
	r := New(false)
	r.Report(errFirst)
	r.Report(&Errors{Errors: []error{errSecond, &Errors{Errors: []error{errThird}}}})

	assert.Equal(t, []error{errFirst, errSecond, errThird}, r.Errors())
}

func TestErrorsReturnsCopy(t *testing.T) {
	r := New(false)
	r.Report(errFirst)

	errs := r.Errors()
	errs[0] = errSecond

	assert.Equal(t, []error{errFirst}, r.Errors())
}

func TestErrAggregate(t *testing.T) {
	r := New(false)
	r.Report(errFirst)
	r.Report(errSecond)

	err := r.Err()
	require.Error(t, err)
	require.ErrorIs(t, err, errFirst)
	require.ErrorIs(t, err, errSecond)
	assert.Equal(t, "Multiple errors:\n  [1] first\n  [2] second", err.Error())

	errs, ok := AsErrors(err)
	require.True(t, ok)
	assert.Len(t, errs.Errors, 2)
}

func TestErrSingle(t *testing.T) {
	r := New(false)
	r.Report(errFirst)

	assert.EqualError(t, r.Err(), "first")
}

func TestErrorsMessageNumbering(t *testing.T) {
	var errs []error
	for range 12 {
		errs = append(errs, errFirst)
	}

	msg := (&Errors{Errors: errs}).Error()
	assert.Contains(t, msg, "\n  [10] first")
	assert.Contains(t, msg, "\n  [12] first")
	assert.Equal(t, "no errors", (&Errors{}).Error())
}

func TestAsErrors(t *testing.T) {
	_, ok := AsErrors(errFirst)
	assert.False(t, ok)

	_, ok = AsErrors(nil)
	assert.False(t, ok)
}

func TestShowFirstError(t *testing.T) {
	r := New(false)
	r.Report(errFirst)

	var buf bytes.Buffer
	r.Show(&buf)
	assert.Equal(t, "Error: first\n", buf.String())

	r.Report(errSecond)
	r.Report(errThird)

	buf.Reset()
	r.Show(&buf)
	assert.Equal(t, "Error: first\n  (2 more)\n", buf.String())
}

func TestShowColor(t *testing.T) {
	r := New(true)
	r.Report(errFirst)

	var buf bytes.Buffer
	r.Show(&buf)
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "first")
}
