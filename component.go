package easel

// Component is a polymorphic unit of visual behavior attached to exactly one
// Entity. A disabled component contributes no render commands.
type Component interface {
	Enabled() bool
	SetEnabled(enabled bool)
	// Owner returns the owning entity, or nil while unattached.
	Owner() *Entity
	// QueueRenderCommands appends the component's visual contribution to the
	// stream. Implementations must be side-effect free with respect to scene
	// state and must not block.
	QueueRenderCommands(stream CommandStream)

	setOwner(owner *Entity)
}

// baseComponent carries the enable flag and owner back-reference shared by
// all component kinds. The owner pointer is non-owning and exists only for
// "am I attached?" guard checks; the entity owns the component.
type baseComponent struct {
	owner   *Entity
	enabled bool
}

func (c *baseComponent) Enabled() bool           { return c.enabled }
func (c *baseComponent) SetEnabled(enabled bool) { c.enabled = enabled }
func (c *baseComponent) Owner() *Entity          { return c.owner }
func (c *baseComponent) setOwner(owner *Entity)  { c.owner = owner }

// Entity is a named container owning an ordered collection of components.
// The kind tag is a human-readable label, not required to be unique.
type Entity struct {
	Kind string

	components []Component
}

// NewEntity creates an empty entity with the given kind tag.
func NewEntity(kind string) *Entity {
	return &Entity{Kind: kind}
}

// AddComponents appends components in order and sets their back-references.
// Adding the same instance twice is a caller error and is not validated.
func (e *Entity) AddComponents(components ...Component) {
	for _, c := range components {
		c.setOwner(e)
		e.components = append(e.components, c)
	}
}

// Components returns the owned components in insertion order. The returned
// slice MUST NOT be mutated by the caller.
func (e *Entity) Components() []Component {
	return e.components
}

// QueueRenderCommands asks each enabled component, in insertion order, to
// append its commands to the stream. A component-less entity is a no-op.
func (e *Entity) QueueRenderCommands(stream CommandStream) {
	for _, c := range e.components {
		if c.Enabled() {
			c.QueueRenderCommands(stream)
		}
	}
}
