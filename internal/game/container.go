package game

// container is an ordered collection of Objects. Rooms, the player, and the
// hidden-item limbo all hold their objects in one.
type container struct {
	objects []Object
}

// Items returns a copy of the held objects in the order they were added.
func (c *container) Items() []Object {
	items := make([]Object, len(c.objects))
	copy(items, c.objects)
	return items
}

// AddItem adds an object. Adding one that is already held has no effect.
func (c *container) AddItem(o Object) {
	if c.HasItem(o) {
		return
	}
	c.objects = append(c.objects, o)
}

// RemoveItem removes an object and returns whether it was held.
func (c *container) RemoveItem(o Object) bool {
	for i := range c.objects {
		if c.objects[i].ID() == o.ID() {
			c.objects = append(c.objects[:i], c.objects[i+1:]...)
			return true
		}
	}
	return false
}

// HasItem returns whether the object is held.
func (c *container) HasItem(o Object) bool {
	if o == nil {
		return false
	}
	for i := range c.objects {
		if c.objects[i].ID() == o.ID() {
			return true
		}
	}
	return false
}

func (c *container) clear() {
	c.objects = nil
}
