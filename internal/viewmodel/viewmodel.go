// Package viewmodel holds the bindable state shown by the presentation layer.
//
// The ViewModel is owned by a single presentation context and is not safe for
// concurrent use. Mutations go through setters, which notify subscribed
// observers synchronously so renderers can stay in sync without implicit binding.
package viewmodel

import (
	"slices"

	"github.com/javiermolinar/lchandle/internal/casefold"
)

// Default field values.
const (
	DefaultCharacters = 5
	DefaultClassName  = "reddy"
)

// DefaultRules returns a fresh copy of the initial rules list.
func DefaultRules() []string {
	return []string{"lion", "tiger", "Maestro", "fish"}
}

// Field identifies a mutable field of the ViewModel.
type Field int

const (
	FieldHandle Field = iota
	FieldCharacters
	FieldClassName
	FieldRules
)

func (f Field) String() string {
	switch f {
	case FieldHandle:
		return "handle"
	case FieldCharacters:
		return "characters"
	case FieldClassName:
		return "className"
	case FieldRules:
		return "rules"
	default:
		return "unknown"
	}
}

// Change describes a mutation delivered to observers.
// A FieldHandle change also means LowercasedHandle changed.
type Change struct {
	Field Field
}

// Observer is called after a field changes.
type Observer func(Change)

// State is a value snapshot of the ViewModel, including the derived value.
type State struct {
	Handle           string
	LowercasedHandle string
	Characters       int
	ClassName        string
	Rules            []string
}

// ViewModel holds the handle, characters, className and rules fields.
type ViewModel struct {
	handle     string
	characters int
	className  string
	rules      []string

	fold casefold.Folder

	observers []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Observer
}

// Option configures a ViewModel.
type Option func(*ViewModel)

// WithFolder sets the case-folding function used by LowercasedHandle.
// A nil folder keeps the default.
func WithFolder(fold casefold.Folder) Option {
	return func(vm *ViewModel) {
		if fold != nil {
			vm.fold = fold
		}
	}
}

// New creates a ViewModel initialized to the default values.
func New(opts ...Option) *ViewModel {
	vm := &ViewModel{
		characters: DefaultCharacters,
		className:  DefaultClassName,
		rules:      DefaultRules(),
		fold:       casefold.Lower,
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// Handle returns the current handle.
func (vm *ViewModel) Handle() string {
	return vm.handle
}

// SetHandle updates the handle.
func (vm *ViewModel) SetHandle(handle string) {
	if vm.handle == handle {
		return
	}
	vm.handle = handle
	vm.notify(FieldHandle)
}

// LowercasedHandle returns the handle folded to lowercase. It is computed on
// every call and never cached.
func (vm *ViewModel) LowercasedHandle() string {
	return vm.fold(vm.handle)
}

// Characters returns the characters field.
func (vm *ViewModel) Characters() int {
	return vm.characters
}

// SetCharacters updates the characters field.
func (vm *ViewModel) SetCharacters(n int) {
	if vm.characters == n {
		return
	}
	vm.characters = n
	vm.notify(FieldCharacters)
}

// ClassName returns the className field.
func (vm *ViewModel) ClassName() string {
	return vm.className
}

// SetClassName updates the className field.
func (vm *ViewModel) SetClassName(name string) {
	if vm.className == name {
		return
	}
	vm.className = name
	vm.notify(FieldClassName)
}

// Rules returns a copy of the rules list.
func (vm *ViewModel) Rules() []string {
	return slices.Clone(vm.rules)
}

// SetRules replaces the rules list with a copy of rules.
func (vm *ViewModel) SetRules(rules []string) {
	vm.rules = slices.Clone(rules)
	vm.notify(FieldRules)
}

// AppendRule adds a rule to the end of the list.
func (vm *ViewModel) AppendRule(rule string) {
	vm.rules = append(vm.rules, rule)
	vm.notify(FieldRules)
}

// Snapshot returns the current state as a plain value.
func (vm *ViewModel) Snapshot() State {
	return State{
		Handle:           vm.handle,
		LowercasedHandle: vm.LowercasedHandle(),
		Characters:       vm.characters,
		ClassName:        vm.className,
		Rules:            vm.Rules(),
	}
}

// Subscribe registers fn for change notifications and returns a function
// that removes it. Calling cancel more than once is a no-op.
func (vm *ViewModel) Subscribe(fn Observer) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	vm.nextID++
	id := vm.nextID
	vm.observers = append(vm.observers, subscription{id: id, fn: fn})
	return func() {
		vm.observers = slices.DeleteFunc(vm.observers, func(s subscription) bool {
			return s.id == id
		})
	}
}

func (vm *ViewModel) notify(field Field) {
	// Observers may unsubscribe while being notified.
	for _, s := range slices.Clone(vm.observers) {
		s.fn(Change{Field: field})
	}
}
