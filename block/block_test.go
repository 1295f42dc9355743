package block_test

import (
	"testing"

	"github.com/ndnlite/ndnlite/block"
	"github.com/stretchr/testify/assert"
)

func TestNewAndBytes(t *testing.T) {
	s := block.New([]byte("hello"))
	assert.Equal(t, []byte("hello"), s.Bytes())
	assert.EqualValues(t, 1, s.RefCount())
}

func TestCloneReleaseLifecycle(t *testing.T) {
	s := block.New([]byte("hello"))
	c := s.Clone()
	assert.EqualValues(t, 2, s.RefCount())
	assert.Equal(t, s.Bytes(), c.Bytes())

	c.Release()
	assert.EqualValues(t, 1, s.RefCount())

	s.Release()
	assert.EqualValues(t, 0, s.RefCount())
}

func TestNewCopyIsIndependent(t *testing.T) {
	orig := []byte("abc")
	s := block.NewCopy(orig)
	orig[0] = 'x'
	assert.Equal(t, []byte("abc"), s.Bytes())
}
