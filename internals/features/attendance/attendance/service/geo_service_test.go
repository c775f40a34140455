package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters(t *testing.T) {
	t.Run("titik identik berjarak nol", func(t *testing.T) {
		assert.InDelta(t, 0, HaversineMeters(-6.9175, 107.6191, -6.9175, 107.6191), 0.001)
	})

	t.Run("simetris", func(t *testing.T) {
		d1 := HaversineMeters(-6.9175, 107.6191, -6.9200, 107.6200)
		d2 := HaversineMeters(-6.9200, 107.6200, -6.9175, 107.6191)
		assert.InDelta(t, d1, d2, 0.0001)
	})

	t.Run("satu derajat di ekuator sekitar 111 km", func(t *testing.T) {
		d := HaversineMeters(0, 0, 0, 1)
		assert.InDelta(t, 111195, d, 200)
	})

	t.Run("jarak kecil masuk akal", func(t *testing.T) {
		// ~0.001 derajat lintang sekitar 111 m
		d := HaversineMeters(-6.9175, 107.6191, -6.9185, 107.6191)
		assert.InDelta(t, 111, d, 2)
	})
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(-6.9175, 107.6191))
	assert.True(t, ValidCoordinate(90, 180))
	assert.True(t, ValidCoordinate(-90, -180))
	assert.False(t, ValidCoordinate(91, 0))
	assert.False(t, ValidCoordinate(-91, 0))
	assert.False(t, ValidCoordinate(0, 181))
	assert.False(t, ValidCoordinate(0, -181))
}
