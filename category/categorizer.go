package category

import (
	"strings"

	"netcompare/cerr"
	"netcompare/refid"
)

// Named is implemented by the two item kinds a Categorizer can track:
// netlist.DeviceClass and netlist.Circuit.
type Named interface {
	Name() string
}

// Categorizer assigns CategoryID values to items of type T, either by
// case-insensitive name on first sight or by explicit DeclareSame
// unification. The device-class and circuit categorizers are just
// Categorizer instantiated over netlist.DeviceClass and netlist.Circuit
// respectively; there are no separate named types for them.
type Categorizer[T interface {
	comparable
	Named
}] struct {
	cat     map[T]refid.CategoryID
	byName  map[string]refid.CategoryID
	members map[refid.CategoryID][]T
	next    refid.CategoryID
}

// New creates an empty Categorizer.
func New[T interface {
	comparable
	Named
}]() *Categorizer[T] {
	return &Categorizer[T]{
		cat:     make(map[T]refid.CategoryID),
		byName:  make(map[string]refid.CategoryID),
		members: make(map[refid.CategoryID][]T),
		next:    refid.NoCategory + 1,
	}
}

// Copy returns an independent deep copy, used by Comparator.Compare to make
// a working copy of the persistent, user-configured categorizer so that
// repeated Compare calls stay idempotent.
func (c *Categorizer[T]) Copy() *Categorizer[T] {
	out := &Categorizer[T]{
		cat:     make(map[T]refid.CategoryID, len(c.cat)),
		byName:  make(map[string]refid.CategoryID, len(c.byName)),
		members: make(map[refid.CategoryID][]T, len(c.members)),
		next:    c.next,
	}
	for k, v := range c.cat {
		out.cat[k] = v
	}
	for k, v := range c.byName {
		out.byName[k] = v
	}
	for k, v := range c.members {
		cp := make([]T, len(v))
		copy(cp, v)
		out.members[k] = cp
	}
	return out
}

func (c *Categorizer[T]) newCategory() refid.CategoryID {
	id := c.next
	c.next++
	return id
}

// ensure returns the category of x, assigning one by case-insensitive name
// (or a fresh category if x has no name) if x has never been seen.
func (c *Categorizer[T]) ensure(x T) refid.CategoryID {
	if id, ok := c.cat[x]; ok {
		return id
	}
	name := strings.ToUpper(x.Name())
	var id refid.CategoryID
	if name != "" {
		if existing, ok := c.byName[name]; ok {
			id = existing
		} else {
			id = c.newCategory()
			c.byName[name] = id
		}
	} else {
		id = c.newCategory()
	}
	c.cat[x] = id
	c.members[id] = append(c.members[id], x)
	return id
}

// CategoryFor returns the category id of x. The zero value of T (nil for
// the interface types this is instantiated with) maps to refid.NoCategory.
func (c *Categorizer[T]) CategoryFor(x T) refid.CategoryID {
	var zero T
	if x == zero {
		return refid.NoCategory
	}
	return c.ensure(x)
}

// DeclareSame unifies the categories of x and y. If both already carry
// distinct categories, every item categorized under y's category is
// rewritten to x's category. Passing a nil x or y is a configuration error.
func (c *Categorizer[T]) DeclareSame(x, y T) error {
	var zero T
	if x == zero || y == zero {
		return cerr.ConfigError{Msg: "same declaration given a nil item"}
	}
	cx := c.ensure(x)
	cy := c.ensure(y)
	if cx == cy {
		return nil
	}
	for _, item := range c.members[cy] {
		c.cat[item] = cx
	}
	c.members[cx] = append(c.members[cx], c.members[cy]...)
	delete(c.members, cy)
	for name, id := range c.byName {
		if id == cy {
			c.byName[name] = cx
		}
	}
	return nil
}
