package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"netcompare/refid"
)

type namedThing struct{ name string }

func (n *namedThing) Name() string { return n.name }

func TestCategorizerByNameCaseInsensitive(t *testing.T) {
	c := New[*namedThing]()
	a := &namedThing{"NMOS"}
	b := &namedThing{"nmos"}
	assert.Equal(t, c.CategoryFor(a), c.CategoryFor(b))
}

func TestCategorizerDistinctNamesDistinctCategories(t *testing.T) {
	c := New[*namedThing]()
	a := &namedThing{"NMOS"}
	b := &namedThing{"PMOS"}
	assert.NotEqual(t, c.CategoryFor(a), c.CategoryFor(b))
}

func TestCategorizerNilIsNoCategory(t *testing.T) {
	c := New[*namedThing]()
	var nilThing *namedThing
	assert.Equal(t, refid.NoCategory, c.CategoryFor(nilThing))
}

func TestCategorizerDeclareSameUnifies(t *testing.T) {
	c := New[*namedThing]()
	a := &namedThing{"NMOS"}
	b := &namedThing{"nch"}
	require.NotEqual(t, c.CategoryFor(a), c.CategoryFor(b))
	require.NoError(t, c.DeclareSame(a, b))
	assert.Equal(t, c.CategoryFor(a), c.CategoryFor(b))
}

func TestCategorizerDeclareSameTransitivity(t *testing.T) {
	// DeclareSame(a,b) and DeclareSame(b,c) must leave a, b, c sharing one
	// category.
	c := New[*namedThing]()
	a := &namedThing{"A"}
	b := &namedThing{"B"}
	cc := &namedThing{"C"}
	require.NoError(t, c.DeclareSame(a, b))
	require.NoError(t, c.DeclareSame(b, cc))
	assert.Equal(t, c.CategoryFor(a), c.CategoryFor(b))
	assert.Equal(t, c.CategoryFor(b), c.CategoryFor(cc))
}

func TestCategorizerDeclareSameNil(t *testing.T) {
	c := New[*namedThing]()
	err := c.DeclareSame(nil, &namedThing{"X"})
	assert.Error(t, err)
}

func TestCategorizerCopyIsIndependent(t *testing.T) {
	c := New[*namedThing]()
	a := &namedThing{"A"}
	b := &namedThing{"B"}
	c.CategoryFor(a)
	c.CategoryFor(b)
	cp := c.Copy()
	require.NoError(t, cp.DeclareSame(a, b))
	assert.NotEqual(t, c.CategoryFor(a), c.CategoryFor(b))
	assert.Equal(t, cp.CategoryFor(a), cp.CategoryFor(b))
}

func TestCategorizerUnnamedGetsFreshCategory(t *testing.T) {
	c := New[*namedThing]()
	a := &namedThing{""}
	b := &namedThing{""}
	assert.NotEqual(t, c.CategoryFor(a), c.CategoryFor(b))
}
