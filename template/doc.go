// Package template creates tagged cell objects from named templates.
//
// What:
//
//   - Template names a reusable marker: a set of tags plus integer properties.
//   - Registry holds templates and instantiates Objects; every Object gets a
//     fresh id from the shared idgen.Counter (category idgen.Object).
//   - Three templates are always registered:
//     "wall"    tags {block, wall}
//     "gateway" tags {gateway}
//     "room"    tags {room-id}, property room-id
//
// Why:
//
//   - Grid cells are described only by the objects placed on them. Tag
//     queries (is it blocked? is it a doorway? which room owns it?) are what
//     topology extraction consumes, so custom templates such as a "crate"
//     with tag block compose without touching the extractor.
//
// Errors:
//
//   - ErrEmptyName:         template name is empty.
//   - ErrDuplicateTemplate: a template with that name already exists.
//   - ErrUnknownTemplate:   Instantiate was asked for an unregistered name.
package template
