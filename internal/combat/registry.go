package combat

import "fmt"

// Registry holds the actions creatures can be given, by canonical name.
type Registry struct {
	actions map[string]Action
}

// NewRegistry creates a registry from the given actions.
func NewRegistry(actions ...Action) *Registry {
	r := &Registry{actions: make(map[string]Action)}
	for _, a := range actions {
		r.Register(a)
	}
	return r
}

// DefaultRegistry returns a registry of the built-in actions.
func DefaultRegistry() *Registry {
	return NewRegistry(Move, Dash, Skip, Slam)
}

// Register adds an action, replacing any action with the same name.
func (r *Registry) Register(a Action) {
	r.actions[a.Name()] = a
}

// GetByName returns the action with the given canonical name, or nil.
func (r *Registry) GetByName(name string) Action {
	return r.actions[name]
}

// GetMultiple resolves a list of names. Unknown names are an error.
func (r *Registry) GetMultiple(names []string) ([]Action, error) {
	result := make([]Action, 0, len(names))
	for _, name := range names {
		a := r.actions[name]
		if a == nil {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		result = append(result, a)
	}
	return result, nil
}
