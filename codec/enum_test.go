// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package codec_test

import (
	"testing"

	"github.com/creachadair/jserd/codec"
	"github.com/creachadair/mds/mtest"
	"github.com/stretchr/testify/assert"
)

func TestEnumType(t *testing.T) {
	assert.Equal(t, 3, speciesEnum.Len())

	name, ok := speciesEnum.Name(Elf)
	assert.True(t, ok)
	assert.Equal(t, "ELF", name)

	_, ok = speciesEnum.Name(Species(-1))
	assert.False(t, ok)
	_, ok = speciesEnum.Name(Species(3))
	assert.False(t, ok)

	v, ok := speciesEnum.FromName("DWARF")
	assert.True(t, ok)
	assert.Equal(t, Dwarf, v)

	_, ok = speciesEnum.FromName("dwarf") // case-sensitive
	assert.False(t, ok)
	_, ok = speciesEnum.FromName("GNOME")
	assert.False(t, ok)
}

func TestNewEnumPanics(t *testing.T) {
	mtest.MustPanic(t, func() { codec.NewEnum[Species]() })
	mtest.MustPanic(t, func() { codec.NewEnum[Species]("A", "B", "A") })
}
