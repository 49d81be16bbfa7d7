package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

func TestNewServiceFilter(t *testing.T) {
	f, err := NewServiceFilter(" Style ", "unavailable", " FaDe ")
	require.NoError(t, err)
	assert.Equal(t, ServiceFilter{Kind: "style", Status: models.ServiceUnavailable, Query: "fade"}, f)

	f, err = NewServiceFilter("", "", "")
	require.NoError(t, err)
	assert.Equal(t, ServiceFilter{}, f)

	_, err = NewServiceFilter("product", "", "")
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = NewServiceFilter("", "archived", "")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}
