package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_Relations(t *testing.T) {
	p := Path{1, 1, 0}

	assert.Equal(t, 2, p.Depth())
	assert.True(t, p.HasPrefix(Path{1}))
	assert.True(t, p.HasPrefix(Path{1, 1}))
	assert.True(t, p.HasPrefix(p))
	assert.False(t, p.HasPrefix(Path{0}))
	assert.False(t, p.HasPrefix(nil))
	assert.Equal(t, Path{1, 1}, p.Parent())
	assert.Nil(t, Path{3}.Parent())
	assert.Equal(t, []Path{{1}, {1, 1}}, p.Ancestors())
	assert.Equal(t, "1.1.0", p.String())
}

func TestPath_ChildDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 4)
	a := base.Child(0)
	b := base.Child(1)
	assert.Equal(t, Path{0, 0}, a)
	assert.Equal(t, Path{0, 1}, b)
}

func TestPath_ParentAndAncestorsDoNotAlias(t *testing.T) {
	p := Path{1, 1, 0}

	parent := p.Parent()
	_ = append(parent, 9)
	for _, anc := range p.Ancestors() {
		_ = append(anc, 9)
	}
	assert.Equal(t, Path{1, 1, 0}, p)
}

func TestIDsAndLocate(t *testing.T) {
	items := referenceTree(false, false)

	ids := IDs(items, Path{1, 1, 1})
	assert.Equal(t, []route{"settings", "dropdownTest", "dropdown-test2"}, ids)
	assert.Nil(t, IDs(items, Path{5}))

	shifted := append([]testItem{{ID: "news", Title: "News"}}, items...)
	path, ok := Locate(shifted, ids)
	assert.True(t, ok)
	assert.Equal(t, Path{2, 1, 1}, path)

	_, ok = Locate(items, []route{"settings", "gone"})
	assert.False(t, ok)
	_, ok = Locate(items, nil)
	assert.False(t, ok)
}

func TestAtAndIDPath(t *testing.T) {
	items := referenceTree(false, false)

	it := At(items, Path{1, 1, 1})
	if assert.NotNil(t, it) {
		assert.Equal(t, route("dropdown-test2"), it.ID)
	}
	assert.Nil(t, At(items, Path{2}))
	assert.Nil(t, At(items, Path{0, 0, 0}))
	assert.Nil(t, At(items, nil))

	assert.Equal(t, "settings/dropdownTest", IDPath(items, Path{1, 1}))
	assert.Equal(t, "home/home", IDPath(items, Path{0, 0}))
	assert.Equal(t, "", IDPath(items, Path{5}))
}

func TestIsBranch(t *testing.T) {
	assert.False(t, (&testItem{}).IsBranch())
	assert.True(t, (&testItem{Children: []testItem{}}).IsBranch())
}
