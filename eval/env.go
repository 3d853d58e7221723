package eval

// Env is one scope in a chain of bindings. Lookup reads through to the
// parent; a child never mutates its parent, so independent sessions can
// share ancestors safely.
type Env struct {
	parent *Env
	values map[string]Value
}

func NewEnv(parent *Env) *Env {
	return &Env{
		parent: parent,
		values: make(map[string]Value),
	}
}

func (env *Env) Define(name string, v Value) {
	env.values[name] = v
}

func (env *Env) Lookup(name string) (Value, bool) {
	if v, ok := env.values[name]; ok {
		return v, true
	}
	if env.parent != nil {
		return env.parent.Lookup(name)
	}

	return nil, false
}
