package scene

// Handle identifies an object by its position in Scene.Objects.
type Handle int

// Index maps object names to handles. Names are unique within a document;
// on duplicates the first object wins.
type Index struct {
	scene  *Scene
	byName map[string]Handle
}

func NewIndex(s *Scene) *Index {
	idx := &Index{
		scene:  s,
		byName: make(map[string]Handle, len(s.Objects)),
	}
	for i := range s.Objects {
		if _, ok := idx.byName[s.Objects[i].Name]; !ok {
			idx.byName[s.Objects[i].Name] = Handle(i)
		}
	}
	return idx
}

func (idx *Index) Handle(name string) (Handle, bool) {
	h, ok := idx.byName[name]
	return h, ok
}

// Lookup returns the named object, or nil when the name is empty or unknown.
func (idx *Index) Lookup(name string) *Object {
	if name == "" {
		return nil
	}
	h, ok := idx.byName[name]
	if !ok {
		return nil
	}
	return &idx.scene.Objects[h]
}

// Walk visits every descendant of root depth-first, parent before children.
// The root itself is not visited.
func Walk(root *Collection, visit func(c *Collection)) {
	for i := range root.Children {
		child := &root.Children[i]
		visit(child)
		Walk(child, visit)
	}
}

// Count returns the number of document collections below root.
func Count(root *Collection) int {
	n := 0
	Walk(root, func(*Collection) { n++ })
	return n
}

// AllObjects returns the names of objects linked to c or any of its
// descendants, without duplicates, in traversal order.
func AllObjects(c *Collection) []string {
	seen := make(map[string]bool)
	var names []string
	var collect func(c *Collection)
	collect = func(c *Collection) {
		for _, name := range c.Objects {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
		for i := range c.Children {
			collect(&c.Children[i])
		}
	}
	collect(c)
	return names
}

// Find returns the first collection named name in root's subtree, including root.
func Find(root *Collection, name string) *Collection {
	if root.Name == name {
		return root
	}
	var found *Collection
	Walk(root, func(c *Collection) {
		if found == nil && c.Name == name {
			found = c
		}
	})
	return found
}
