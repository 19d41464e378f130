package theme

import (
	"fmt"
	"sort"
	"sync"

	"github.com/alecthomas/chroma/v2/styles"
)

// A Registry holds named themes. Themes are added once and never replaced or removed, so a
// parent named by a registered theme is always present.
type Registry struct {
	mu       sync.RWMutex
	themes   map[string]*Theme
	baseline Style
}

// A RegistryOption affects the behavior of NewRegistry.
type RegistryOption func(r *Registry)

// WithBaseline sets the baseline of root themes that define neither Text nor Background. The
// default baseline sets nothing.
func WithBaseline(s Style) RegistryOption {
	return func(r *Registry) {
		r.baseline = s
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(options ...RegistryOption) *Registry {
	r := &Registry{themes: map[string]*Theme{}}
	for _, o := range options {
		o(r)
	}
	return r
}

// Default is the process-wide registry. It is populated at load time with every style built
// into chroma, so any of them (e.g. "pastie") may be used as a parent.
var Default = func() *Registry {
	r := NewRegistry()
	for _, name := range styles.Names() {
		if _, err := r.Import(styles.Registry[name]); err != nil {
			panic(err)
		}
	}
	return r
}()

// Define starts a new theme that inherits from parent. An empty parent starts a root theme.
// Define fails with an *UnknownParentError if parent is not registered, and with
// ErrThemeExists if name is already taken; in either case the registry is unchanged.
func (r *Registry) Define(name, parent string) (*Builder, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.themes[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeExists, name)
	}

	var p *Theme
	if parent != "" {
		var ok bool
		if p, ok = r.themes[parent]; !ok {
			return nil, &UnknownParentError{Theme: name, Parent: parent}
		}
	}

	return &Builder{
		registry: r,
		name:     name,
		parent:   p,
		styles:   map[Category]Style{},
	}, nil
}

// Entries maps categories to Pygments-style entries.
type Entries map[Category]string

// MustDefine defines, populates and builds a theme in one step, panicking on error. Entries are
// recorded in category order.
func (r *Registry) MustDefine(name, parent string, entries Entries) *Theme {
	b, err := r.Define(name, parent)
	if err != nil {
		panic(err)
	}

	categories := make([]Category, 0, len(entries))
	for c := range entries {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	for _, c := range categories {
		b.Set(c, entries[c])
	}
	return b.MustBuild()
}

func (r *Registry) add(t *Theme) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.themes[t.name]; ok {
		return fmt.Errorf("%w: %q", ErrThemeExists, t.name)
	}
	r.themes[t.name] = t
	return nil
}

func (r *Registry) Get(name string) (*Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.themes[name]
	return t, ok
}

// Lookup is like Get, but returns an *UnknownThemeError if the theme is not registered.
func (r *Registry) Lookup(name string) (*Theme, error) {
	t, ok := r.Get(name)
	if !ok {
		return nil, &UnknownThemeError{Name: name}
	}
	return t, nil
}

// Names returns the names of all registered themes, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Baseline() Style {
	return r.baseline
}

// Resolve returns the effective style of a category in the named theme. It fails only if the
// theme is not registered; unknown categories resolve to the baseline.
func (r *Registry) Resolve(name string, c Category) (Style, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return Style{}, err
	}
	return t.Resolve(c), nil
}

func (r *Registry) ResolveHierarchical(name string, c Category) (Style, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return Style{}, err
	}
	return t.ResolveHierarchical(c), nil
}
