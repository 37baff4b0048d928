package board

import (
	"reflect"

	"github.com/MKhiriev/notes-board/models"
)

// Field addresses a value stored in a [Model].
type Field string

const (
	FieldUser  Field = "user"
	FieldNotes Field = "notes"
)

// Model is the in-memory state of one session. Besides the user and notes
// fields it stores any other field it is given; those are passed to the
// renderer unchanged.
type Model struct {
	fields map[Field]any
}

// NewModel returns an anonymous model with an empty notes list.
func NewModel() *Model {
	return &Model{
		fields: map[Field]any{
			FieldUser:  (*models.User)(nil),
			FieldNotes: []models.Note{},
		},
	}
}

// Get returns the raw value of key and whether key was ever set.
func (m *Model) Get(key Field) (any, bool) {
	v, ok := m.fields[key]
	return v, ok
}

// User returns the signed-in user or nil.
func (m *Model) User() *models.User {
	u, _ := m.fields[FieldUser].(*models.User)
	return u
}

// Notes returns the notes newest first.
func (m *Model) Notes() []models.Note {
	n, _ := m.fields[FieldNotes].([]models.Note)
	return n
}

// set stores value under key and reports whether the model changed.
func (m *Model) set(key Field, value any) bool {
	old, ok := m.fields[key]
	if ok && identical(old, value) {
		return false
	}

	m.fields[key] = value
	return true
}

// prependNote puts note in front of the notes list.
func (m *Model) prependNote(note models.Note) {
	old := m.Notes()
	notes := make([]models.Note, 0, len(old)+1)
	notes = append(notes, note)
	notes = append(notes, old...)
	m.fields[FieldNotes] = notes
}

// Data returns the render view of the model:
//
//	user:  {uid, displayName} or nil
//	notes: [{uid, author, text}, ...] newest first
//
// Other fields are exposed under their own names.
func (m *Model) Data() map[string]any {
	data := make(map[string]any, len(m.fields))
	for k, v := range m.fields {
		data[string(k)] = v
	}

	if u := m.User(); u != nil {
		data[string(FieldUser)] = map[string]any{
			"uid":         u.UID,
			"displayName": u.DisplayName,
		}
	} else {
		data[string(FieldUser)] = nil
	}

	notes := m.Notes()
	view := make([]map[string]any, 0, len(notes))
	for _, n := range notes {
		view = append(view, map[string]any{
			"uid":    n.UID,
			"author": n.Author,
			"text":   n.Text,
		})
	}
	data[string(FieldNotes)] = view

	return data
}

// identical reports whether a and b are the same value without looking
// inside them: references compare by address, comparable values with ==.
// A typed nil equals an untyped nil.
func identical(a, b any) bool {
	aNil, bNil := isNil(a), isNil(b)
	if aNil || bNil {
		return aNil && bNil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Func:
		return false
	}

	return safeEqual(a, b)
}

// safeEqual compares with == and treats a runtime comparison panic (an
// uncomparable value inside an interface field) as "different".
func safeEqual(a, b any) (eq bool) {
	if !reflect.TypeOf(a).Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
