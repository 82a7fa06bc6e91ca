// file: internals/features/finance/clearance/service/completion_test.go
package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialWriteErrorNamesStep(t *testing.T) {
	cause := errors.New("connection reset")
	err := &PartialWriteError{Step: "tenant", Err: cause}

	assert.Contains(t, err.Error(), `"tenant"`)
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause), "unwraps to the cause")

	var pw *PartialWriteError
	assert.True(t, errors.As(err, &pw))
	assert.Equal(t, "tenant", pw.Step)
}
