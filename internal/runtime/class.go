package runtime

import "fmt"

// Class is a shared, mutable-by-reference class descriptor: a name, an
// optional superclass, and a method table (spec.md §3, §4.6).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (*Class) Type() string     { return "CLASS" }
func (c *Class) String() string { return c.Name }

// FindMethod searches the class then walks the superclass chain; first
// match wins (spec.md §3, §4.6).
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Instance is a shared, mutable object: a class reference and a field
// map (spec.md §3, §4.6).
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

// NewInstance creates an Instance with an empty field map.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

func (*Instance) Type() string     { return "INSTANCE" }
func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get implements spec.md §4.6 property read: a field, if present, takes
// precedence over a method of the same name; a method is returned freshly
// bound to this instance. Returns an error if neither is found
// (UndefinedProperty, spec.md §7).
func (i *Instance) Get(name string) (Value, error) {
	if v, ok := i.Fields[name]; ok {
		return v, nil
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), nil
	}
	return nil, fmt.Errorf("Undefined property '%s'.", name)
}

// Set unconditionally stores a field value (spec.md §4.4 "Set").
func (i *Instance) Set(name string, value Value) {
	i.Fields[name] = value
}
