package template

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/roomtopo/idgen"
)

// Sentinel errors for registry operations.
var (
	// ErrEmptyName indicates a template without a name.
	ErrEmptyName = errors.New("template: name is empty")
	// ErrDuplicateTemplate indicates a second registration under the same name.
	ErrDuplicateTemplate = errors.New("template: duplicate template")
	// ErrUnknownTemplate indicates a lookup of an unregistered name.
	ErrUnknownTemplate = errors.New("template: unknown template")
)

// Tags understood by the grid and the topology extractor.
const (
	TagBlock   = "block"
	TagWall    = "wall"
	TagGateway = "gateway"
	TagRoomID  = "room-id"
)

// Built-in template names.
const (
	Wall    = "wall"
	Gateway = "gateway"
	Room    = "room"
)

// PropRoomID is the property key holding a room marker's room id.
const PropRoomID = "room-id"

// Template describes a kind of cell object.
type Template struct {
	Name  string
	Tags  []string
	Props map[string]int
}

// Object is one placed instance of a Template.
type Object struct {
	// ID is unique across the whole id space of the owning Registry.
	ID int
	// Name is the template name the object was created from.
	Name string

	tags  map[string]struct{}
	props map[string]int
}

// HasTag reports whether o carries tag.
func (o *Object) HasTag(tag string) bool {
	if o == nil {
		return false
	}
	_, ok := o.tags[tag]
	return ok
}

// Prop returns the integer property key and whether it is set.
func (o *Object) Prop(key string) (int, bool) {
	if o == nil {
		return 0, false
	}
	v, ok := o.props[key]
	return v, ok
}

// Tags returns o's tags sorted lexicographically.
func (o *Object) Tags() []string {
	out := make([]string, 0, len(o.tags))
	for tag := range o.tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Registry maps template names to templates and stamps out Objects.
// It is not safe for concurrent use.
type Registry struct {
	ids       *idgen.Counter
	templates map[string]Template
}

// NewRegistry returns a Registry pre-loaded with the wall, gateway and room
// templates. If ids is nil a fresh Counter is created.
func NewRegistry(ids *idgen.Counter) *Registry {
	if ids == nil {
		ids = idgen.New()
	}
	r := &Registry{
		ids:       ids,
		templates: make(map[string]Template),
	}
	builtins := []Template{
		{Name: Wall, Tags: []string{TagBlock, TagWall}},
		{Name: Gateway, Tags: []string{TagGateway}},
		{Name: Room, Tags: []string{TagRoomID}},
	}
	for _, t := range builtins {
		r.templates[t.Name] = clone(t)
	}

	return r
}

// IDs returns the counter backing this registry. The topology extractor
// allocates room and barrier ids from the same counter.
func (r *Registry) IDs() *idgen.Counter {
	return r.ids
}

// Register adds t. The template is copied, so later changes to t's slices
// or maps do not leak into the registry.
func (r *Registry) Register(t Template) error {
	if t.Name == "" {
		return ErrEmptyName
	}
	if _, ok := r.templates[t.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTemplate, t.Name)
	}
	r.templates[t.Name] = clone(t)

	return nil
}

// Lookup returns a copy of the named template.
func (r *Registry) Lookup(name string) (Template, bool) {
	t, ok := r.templates[name]
	if !ok {
		return Template{}, false
	}
	return clone(t), true
}

// Names returns all registered template names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.templates))
	for name := range r.templates {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Instantiate creates a new Object from the named template.
func (r *Registry) Instantiate(name string) (*Object, error) {
	t, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	o := &Object{
		ID:    r.ids.Next(idgen.Object),
		Name:  t.Name,
		tags:  make(map[string]struct{}, len(t.Tags)),
		props: make(map[string]int, len(t.Props)+1),
	}
	for _, tag := range t.Tags {
		o.tags[tag] = struct{}{}
	}
	for k, v := range t.Props {
		o.props[k] = v
	}

	return o, nil
}

// NewRoomMarker creates a room marker carrying roomID.
func (r *Registry) NewRoomMarker(roomID int) (*Object, error) {
	o, err := r.Instantiate(Room)
	if err != nil {
		return nil, err
	}
	o.props[PropRoomID] = roomID

	return o, nil
}

func clone(t Template) Template {
	out := Template{Name: t.Name}
	if len(t.Tags) > 0 {
		out.Tags = append([]string(nil), t.Tags...)
	}
	if len(t.Props) > 0 {
		out.Props = make(map[string]int, len(t.Props))
		for k, v := range t.Props {
			out.Props[k] = v
		}
	}
	return out
}
