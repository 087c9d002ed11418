package conf

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tkrajina/go-reflector/reflector"
)

// Apply distributes the directives of a block onto the fields of target,
// which must be a pointer to a struct. A directive matches a field either by
// the lowercased field name or via the tag. Semicolon-terminated directives
// set scalar or []string fields from their arguments, directives with a
// block fill a nested struct field. Apply interprets only the shape of the
// tree, directive names carry no meaning beyond field lookup.
func Apply(block Block, tag string, target interface{}) error {
	obj := reflector.New(target)
	if !obj.IsPtr() {
		return errors.New("target is not a pointer")
	}

	for _, d := range block {
		field, err := fieldForName(obj, d.Name, tag)
		if err != nil {
			return err
		}

		if err := updateField(field, tag, d); err != nil {
			return errors.Wrapf(err, "directive %q", d.Name)
		}
	}

	return nil
}

// fieldForName returns the field matching the name, either directly (via
// strings.ToLower()) or via the tag. If the field is not found, an error is
// returned.
func fieldForName(obj *reflector.Obj, name, tag string) (*reflector.ObjField, error) {
	for _, field := range obj.FieldsAll() {
		if name == strings.ToLower(field.Name()) {
			return &field, nil
		}

		fieldTag, err := field.Tag(tag)
		if err == nil && name == fieldTag {
			return &field, nil
		}
	}

	return nil, errors.Errorf("field %q not found", name)
}

// updateField takes care of updating the given field from the directive. The
// arguments are converted according to the target field's type.
func updateField(field *reflector.ObjField, tag string, d Directive) error {
	if d.HasBlock() {
		if field.Kind() != reflect.Struct {
			return errors.Errorf("field %v cannot take a block", field.Name())
		}

		v := reflect.New(field.Type())
		if err := Apply(d.Block, tag, v.Interface()); err != nil {
			return err
		}

		return field.Set(v.Elem().Interface())
	}

	if field.Kind() == reflect.Slice {
		return field.Set(append([]string{}, d.Args...))
	}

	if len(d.Args) != 1 {
		return errors.Errorf("expected one argument, got %d", len(d.Args))
	}

	arg := d.Args[0]

	switch field.Kind() {
	case reflect.String:
		return field.Set(arg)
	case reflect.Bool:
		b, err := strconv.ParseBool(arg)
		if err != nil {
			return err
		}

		return field.Set(b)
	case reflect.Int:
		n, err := strconv.Atoi(arg)
		if err != nil {
			return err
		}

		return field.Set(n)
	}

	return field.Set(arg)
}
