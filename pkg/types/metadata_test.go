package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/venuelane/seating-backend/pkg/errors"
)

func TestMetadataValueScanRoundTrip(t *testing.T) {
	src := Metadata{
		"status":      "held",
		"viewQuality": "good",
		"custom":      map[string]any{"vip_host": "Dana"},
	}

	raw, err := src.Value()
	require.NoError(t, err)

	var dst Metadata
	require.NoError(t, dst.Scan(raw))

	assert.Equal(t, "held", dst["status"])
	assert.Equal(t, "good", dst["viewQuality"])
	custom, ok := dst["custom"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Dana", custom["vip_host"])
}

func TestMetadataScanNilAndEmpty(t *testing.T) {
	var m Metadata
	require.NoError(t, m.Scan(nil))
	assert.Nil(t, m)

	require.NoError(t, m.Scan([]byte{}))
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestMetadataScanRejectsUnsupportedType(t *testing.T) {
	var m Metadata
	require.Error(t, m.Scan(42))
}

func TestMetadataCloneIsIndependent(t *testing.T) {
	src := Metadata{"a": 1}
	dup := src.Clone()
	dup["a"] = 2
	assert.Equal(t, 1, src["a"])

	var empty Metadata
	assert.Nil(t, empty.Clone())
}

func TestCoordinatesBounds(t *testing.T) {
	assert.True(t, Coordinates{X: 0, Y: 100}.InBounds())
	assert.False(t, Coordinates{X: -0.1, Y: 50}.InBounds())
	assert.False(t, Coordinates{X: 50, Y: 100.5}.InBounds())
	assert.NoError(t, Coordinates{X: 33.3, Y: 66.6}.Validate())

	err := Coordinates{X: 101, Y: 0}.Validate()
	require.Error(t, err)
	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeOutOfBounds, coded.Code())
}

func TestAmenitiesRoundTrip(t *testing.T) {
	src := Amenities{"cup holder", "power outlet"}
	raw, err := src.Value()
	require.NoError(t, err)

	var dst Amenities
	require.NoError(t, dst.Scan(raw))
	assert.Equal(t, src, dst)

	dup := src.Clone()
	dup[0] = "changed"
	assert.Equal(t, "cup holder", src[0])
}
