package interp

// Env is the lexical environment: a growable slot table plus one
// name→slot map per scope. A binding name is a handle into the table;
// aliasing means two names resolving to the same slot.
type Env struct {
	slots  []Value
	scopes []map[string]int
}

// NewEnv creates an environment with the root scope in place.
func NewEnv() *Env {
	return &Env{scopes: []map[string]int{{}}}
}

// Push opens a nested scope.
func (e *Env) Push() {
	e.scopes = append(e.scopes, map[string]int{})
}

// Pop closes the innermost scope. Slots are not reclaimed; outer
// aliases may still point at them.
func (e *Env) Pop() {
	if len(e.scopes) > 1 {
		e.scopes = e.scopes[:len(e.scopes)-1]
	}
}

// Define allocates a fresh, exclusively-owned slot for name in the
// current scope and returns its id.
func (e *Env) Define(name string, v Value) int {
	id := len(e.slots)
	e.slots = append(e.slots, v)
	e.scopes[len(e.scopes)-1][name] = id
	return id
}

// slot resolves a name from the innermost scope outward.
func (e *Env) slot(name string) (int, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if id, ok := e.scopes[i][name]; ok {
			return id, true
		}
	}
	return 0, false
}

// Lookup returns the current value of a name.
func (e *Env) Lookup(name string) (Value, bool) {
	id, ok := e.slot(name)
	if !ok {
		return nil, false
	}
	return e.slots[id], true
}

// Copy inserts name in the current scope pointing at the target's
// slot: shared ownership, mutation visible through every alias.
func (e *Env) Copy(name, target string) bool {
	id, ok := e.slot(target)
	if !ok {
		return false
	}
	e.scopes[len(e.scopes)-1][name] = id
	return true
}

// Bind snapshots the target's current value into a fresh slot under
// name: no aliasing, despite the operator's name.
func (e *Env) Bind(name, target string) bool {
	v, ok := e.Lookup(target)
	if !ok {
		return false
	}
	e.Define(name, v)
	return true
}

// Assign mutates the slot a name resolves to, in place.
func (e *Env) Assign(name string, v Value) bool {
	id, ok := e.slot(name)
	if !ok {
		return false
	}
	e.slots[id] = v
	return true
}
