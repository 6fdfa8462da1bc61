package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Merge(t *testing.T) {
	ok := OK()
	bad := Fail(Error{Property: "a", Code: "x", Message: "boom"})

	assert.True(t, ok.Merge(OK()).Valid)
	assert.False(t, ok.Merge(bad).Valid)
	assert.False(t, bad.Merge(ok).Valid)

	both := bad.Merge(Fail(Error{Property: "b", Code: "y", Message: "bang"}))
	require.Len(t, both.Errors, 2)
	assert.Equal(t, "a", both.Errors[0].Property)
	assert.Equal(t, "b", both.Errors[1].Property)
}

func TestResult_MergeDoesNotMutateReceiver(t *testing.T) {
	bad := Fail(Error{Property: "a", Message: "boom"})
	_ = bad.Merge(Fail(Error{Property: "b", Message: "bang"}))

	assert.Len(t, bad.Errors, 1)
}

func TestError_FieldwiseEquality(t *testing.T) {
	a := Error{Property: "p", Message: "m", Actual: "1", Expected: "2", Code: "c", Suggestion: "s"}
	b := a

	assert.Equal(t, a, b)

	b.Suggestion = ""
	assert.NotEqual(t, a, b)
}

func TestError_String(t *testing.T) {
	e := Error{
		Property: "pool.min",
		Message:  "must be at least 1",
		Actual:   "0",
		Expected: ">= 1",
		Code:     "below_minimum",
	}

	s := e.String()
	assert.Contains(t, s, "[below_minimum]")
	assert.Contains(t, s, "pool.min")
	assert.Contains(t, s, `got "0"`)
}

func TestFingerprint_OrderIndependent(t *testing.T) {
	a := map[string]string{"x": "1", "y": "2", "z": "3"}
	b := map[string]string{"z": "3", "y": "2", "x": "1"}

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprint_DistinguishesKeyValueBoundaries(t *testing.T) {
	a := map[string]string{"ab": "c"}
	b := map[string]string{"a": "bc"}

	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprint_DifferentValuesDiffer(t *testing.T) {
	a := map[string]string{"x": "1"}
	b := map[string]string{"x": "2"}

	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}
