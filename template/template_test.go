package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomtopo/idgen"
	"github.com/katalvlaran/roomtopo/template"
)

func TestRegistry_Builtins(t *testing.T) {
	reg := template.NewRegistry(nil)
	assert.Equal(t, []string{"gateway", "room", "wall"}, reg.Names())

	wall, err := reg.Instantiate(template.Wall)
	require.NoError(t, err)
	assert.True(t, wall.HasTag(template.TagBlock))
	assert.True(t, wall.HasTag(template.TagWall))
	assert.False(t, wall.HasTag(template.TagGateway))

	gw, err := reg.Instantiate(template.Gateway)
	require.NoError(t, err)
	assert.Equal(t, []string{template.TagGateway}, gw.Tags())
	assert.False(t, gw.HasTag(template.TagBlock), "gateways are passable")
}

// TestRegistry_IDsShareCounter checks that objects draw ids from the
// shared counter under the Object category.
func TestRegistry_IDsShareCounter(t *testing.T) {
	ids := idgen.New()
	ids.Next(idgen.Room) // 0
	reg := template.NewRegistry(ids)

	a, err := reg.Instantiate(template.Wall)
	require.NoError(t, err)
	b, err := reg.Instantiate(template.Gateway)
	require.NoError(t, err)
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)

	n, err := ids.Count(idgen.Object)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Same(t, ids, reg.IDs())
}

func TestRegistry_RoomMarker(t *testing.T) {
	reg := template.NewRegistry(nil)
	m, err := reg.NewRoomMarker(42)
	require.NoError(t, err)
	assert.True(t, m.HasTag(template.TagRoomID))
	id, ok := m.Prop(template.PropRoomID)
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	// A second marker must not share the first one's properties.
	m2, err := reg.NewRoomMarker(7)
	require.NoError(t, err)
	id, _ = m.Prop(template.PropRoomID)
	assert.Equal(t, 42, id)
	id, _ = m2.Prop(template.PropRoomID)
	assert.Equal(t, 7, id)
}

func TestRegistry_Register(t *testing.T) {
	reg := template.NewRegistry(nil)
	tags := []string{template.TagBlock}
	require.NoError(t, reg.Register(template.Template{
		Name:  "crate",
		Tags:  tags,
		Props: map[string]int{"weight": 3},
	}))
	tags[0] = "mutated"

	crate, err := reg.Instantiate("crate")
	require.NoError(t, err)
	assert.True(t, crate.HasTag(template.TagBlock))
	assert.False(t, crate.HasTag(template.TagWall))
	w, ok := crate.Prop("weight")
	assert.True(t, ok)
	assert.Equal(t, 3, w)

	got, ok := reg.Lookup("crate")
	require.True(t, ok)
	assert.Equal(t, []string{template.TagBlock}, got.Tags)
}

func TestRegistry_Errors(t *testing.T) {
	reg := template.NewRegistry(nil)
	assert.ErrorIs(t, reg.Register(template.Template{}), template.ErrEmptyName)
	assert.ErrorIs(t, reg.Register(template.Template{Name: template.Wall}), template.ErrDuplicateTemplate)

	_, err := reg.Instantiate("lava")
	assert.ErrorIs(t, err, template.ErrUnknownTemplate)
	_, ok := reg.Lookup("lava")
	assert.False(t, ok)

	var nilObj *template.Object
	assert.False(t, nilObj.HasTag(template.TagWall))
	_, ok = nilObj.Prop(template.PropRoomID)
	assert.False(t, ok)
}
