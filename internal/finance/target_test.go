package finance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestParseLossTarget(t *testing.T) {
	target, err := ParseLossTarget(uintPtr(7), nil)
	require.NoError(t, err)
	assert.Equal(t, TargetMenu, target.Kind)
	assert.Equal(t, uint(7), target.MenuItemID)

	target, err = ParseLossTarget(nil, uintPtr(3))
	require.NoError(t, err)
	assert.Equal(t, TargetStock, target.Kind)
	assert.Equal(t, uint(3), target.StockItemID)
}

func TestParseLossTargetInvalid(t *testing.T) {
	var verr *ValidationError

	// İkisi birden
	_, err := ParseLossTarget(uintPtr(1), uintPtr(2))
	require.True(t, errors.As(err, &verr))

	// İkisi de boş
	_, err = ParseLossTarget(nil, nil)
	require.True(t, errors.As(err, &verr))

	// Sıfır ID boş sayılır
	_, err = ParseLossTarget(uintPtr(0), nil)
	require.True(t, errors.As(err, &verr))
}
