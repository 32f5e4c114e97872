package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomizedError(t *testing.T) {
	err := New("Logic.Op", "error.internal", assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, err.GetCode())
	assert.Equal(t, "error.internal", err.Message())

	err = err.Code(http.StatusBadRequest)
	assert.Equal(t, http.StatusBadRequest, err.GetCode())
}

func TestTraceKeepsCode(t *testing.T) {
	inner := New("Store.Get", "error.notfound", nil).Code(http.StatusNotFound)
	outer := Trace("Logic.Op", inner)

	assert.Equal(t, http.StatusNotFound, outer.GetCode())
	assert.Contains(t, outer.Error(), "Store.Get->Logic.Op")
}

func TestTraceWrapsPlainError(t *testing.T) {
	outer := Trace("Logic.Op", assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, outer.GetCode())
	assert.ErrorIs(t, outer, assert.AnError)
}
