package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrConfigValid, "bad recipe")
	assert.Equal(t, "[CONFIG_INVALID] bad recipe", err.Error())
	assert.Equal(t, ErrConfigValid, GetErrorCode(err))
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("boom")
	err := Wrap(inner, ErrStoreLookup, "lookup failed")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_LOOKUP")
	assert.Contains(t, err.Error(), "boom")
	assert.ErrorIs(t, err, inner)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "ignored %s", "too"))
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrPatternInvalid, "pattern %q", "(bad")
	assert.True(t, IsErrorCode(err, ErrPatternInvalid))
	assert.False(t, IsErrorCode(err, ErrConfigValid))
	assert.False(t, IsErrorCode(stderrors.New("plain"), ErrPatternInvalid))
}

func TestIsMatchesOnCode(t *testing.T) {
	err := Wrap(New(ErrMappingInvalid, "inner"), ErrConfigValid, "outer")
	assert.True(t, stderrors.Is(err, New(ErrConfigValid, "other message")))
	assert.True(t, IsErrorCode(err, ErrConfigValid))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrAspectBuild, "failed").
		WithDetail("entity", "urn:li:dataset:a").
		WithDetail("aspect", "ownership")

	assert.Equal(t, "urn:li:dataset:a", err.Details["entity"])
	assert.Equal(t, "ownership", err.Details["aspect"])
}

func TestGetErrorCodeUnknown(t *testing.T) {
	assert.Equal(t, ErrUnknown, GetErrorCode(stderrors.New("plain")))
}
