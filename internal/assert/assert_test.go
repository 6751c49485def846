package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotNil(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]int
	one := 1

	require.Panics(t, func() { NotNil(nil) })
	require.Panics(t, func() { NotNil(nilPtr) })
	require.Panics(t, func() { NotNil(nilMap) })
	require.NotPanics(t, func() { NotNil(&one) })
	require.NotPanics(t, func() { NotNil(one) })
	require.NotPanics(t, func() { NotNil(struct{}{}) })
}
