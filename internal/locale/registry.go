package locale

// Slot says which attribute of an element a binding fills.
type Slot int

// Slots.
const (
	SlotLabel Slot = iota
	SlotPlaceholder
)

// Binding ties a UI element to a key.
type Binding struct {
	ID   string
	Key  Key
	Slot Slot
}

// Registry is the fixed set of localized UI elements.
type Registry struct {
	bindings []Binding
}

// NewRegistry builds a registry from bindings. Later bindings for the same
// element and slot replace earlier ones.
func NewRegistry(bindings ...Binding) *Registry {
	r := &Registry{}
	for _, b := range bindings {
		r.bind(b)
	}
	return r
}

func (r *Registry) bind(b Binding) {
	for i, existing := range r.bindings {
		if existing.ID == b.ID && existing.Slot == b.Slot {
			r.bindings[i] = b
			return
		}
	}
	r.bindings = append(r.bindings, b)
}

// Bindings returns the registered bindings in registration order.
func (r *Registry) Bindings() []Binding {
	out := make([]Binding, len(r.bindings))
	copy(out, r.bindings)
	return out
}

// Strings holds rendered labels and placeholders keyed by element id.
type Strings struct {
	Labels       map[string]string
	Placeholders map[string]string
}

// Label returns the label for id, or id when unbound.
func (s Strings) Label(id string) string {
	if v, ok := s.Labels[id]; ok {
		return v
	}
	return id
}

// Placeholder returns the placeholder for id, or "" when unbound.
func (s Strings) Placeholder(id string) string {
	return s.Placeholders[id]
}

// Apply renders every binding in variant.
func (r *Registry) Apply(variant Variant) Strings {
	out := Strings{
		Labels:       make(map[string]string, len(r.bindings)),
		Placeholders: make(map[string]string),
	}
	for _, b := range r.bindings {
		text := T(variant, b.Key, nil)
		switch b.Slot {
		case SlotPlaceholder:
			out.Placeholders[b.ID] = text
		default:
			out.Labels[b.ID] = text
		}
	}
	return out
}
