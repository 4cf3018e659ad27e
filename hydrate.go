package convertly

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unsafe"

	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

// TagName defines the struct tag holding field conversion options.
const TagName = "cnv"

var timeType = reflect.TypeOf(time.Time{})

type (
	// Hydrator fills struct fields from textual values and renders them
	// back, honoring per-field conversion options declared in the cnv tag,
	// e.g. `cnv:"base=hex,width=4"`. Field names and time layouts may be
	// overridden with the format tag.
	Hydrator struct {
		structType reflect.Type
		fields     []*hydratorField
	}

	hydratorField struct {
		name       string
		xField     *xunsafe.Field
		options    Options
		timeLayout string
	}
)

// NewHydrator builds a hydrator for a struct type or pointer to one.
func NewHydrator(t reflect.Type) (*Hydrator, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct type, got %s", t.Kind())
	}
	ret := &Hydrator{structType: t}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		encoded := field.Tag.Get(TagName)
		if encoded == "-" {
			continue
		}
		options, err := ParseOptions(encoded)
		if err != nil {
			return nil, fmt.Errorf("invalid %v tag on %s.%s: %w", TagName, t.Name(), field.Name, err)
		}
		name := field.Name
		timeLayout := time.RFC3339
		if tag, _ := format.Parse(field.Tag); tag != nil {
			if tag.Name != "" {
				name = tag.Name
			}
			if tag.TimeLayout != "" {
				timeLayout = tag.TimeLayout
			}
		}
		ret.fields = append(ret.fields, &hydratorField{
			name:       name,
			xField:     xunsafe.NewField(field),
			options:    options,
			timeLayout: timeLayout,
		})
	}
	return ret, nil
}

// Hydrate sets dest struct fields from values, parsing each entry per the
// field's options. Fields absent from values are left untouched.
func (h *Hydrator) Hydrate(dest interface{}, values map[string]string) error {
	ptr, err := h.pointerOf(dest)
	if err != nil {
		return err
	}
	for _, field := range h.fields {
		text, ok := values[field.name]
		if !ok {
			continue
		}
		if err := field.set(ptr, text); err != nil {
			return fmt.Errorf("cannot hydrate %s.%s: %w", h.structType.Name(), field.xField.Name, err)
		}
	}
	return nil
}

// Dehydrate renders src struct fields back to text per each field's options.
func (h *Hydrator) Dehydrate(src interface{}) (map[string]string, error) {
	ptr, err := h.pointerOf(src)
	if err != nil {
		return nil, err
	}
	ret := make(map[string]string, len(h.fields))
	for _, field := range h.fields {
		text, err := field.render(ptr)
		if err != nil {
			return nil, fmt.Errorf("cannot dehydrate %s.%s: %w", h.structType.Name(), field.xField.Name, err)
		}
		ret[field.name] = text
	}
	return ret, nil
}

func (h *Hydrator) pointerOf(value interface{}) (unsafe.Pointer, error) {
	t := reflect.TypeOf(value)
	if t == nil || t.Kind() != reflect.Ptr || t.Elem() != h.structType {
		return nil, fmt.Errorf("expected *%s, got %T", h.structType.Name(), value)
	}
	return xunsafe.AsPointer(value), nil
}

func (f *hydratorField) set(ptr unsafe.Pointer, text string) error {
	fieldType := f.xField.Type
	if fieldType == timeType {
		ts, err := time.Parse(f.timeLayout, text)
		if err != nil {
			return err
		}
		f.xField.SetValue(ptr, ts)
		return nil
	}
	switch fieldType.Kind() {
	case reflect.String:
		f.xField.SetString(ptr, text)
	case reflect.Bool:
		value, err := strconv.ParseBool(text)
		if err != nil {
			return err
		}
		f.xField.SetBool(ptr, value)
	case reflect.Int:
		value, err := f.options.ParseInt(text, strconv.IntSize)
		if err != nil {
			return err
		}
		f.xField.SetInt(ptr, int(value))
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value, err := f.options.ParseInt(text, fieldType.Bits())
		if err != nil {
			return err
		}
		rv := reflect.New(fieldType).Elem()
		rv.SetInt(value)
		f.xField.SetValue(ptr, rv.Interface())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		value, err := f.options.ParseUint(text, fieldType.Bits())
		if err != nil {
			return err
		}
		rv := reflect.New(fieldType).Elem()
		rv.SetUint(value)
		f.xField.SetValue(ptr, rv.Interface())
	case reflect.Float64:
		value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return err
		}
		f.xField.SetFloat64(ptr, value)
	case reflect.Float32:
		value, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
		if err != nil {
			return err
		}
		f.xField.SetFloat32(ptr, float32(value))
	default:
		return fmt.Errorf("unsupported field type %s", fieldType)
	}
	return nil
}

func (f *hydratorField) render(ptr unsafe.Pointer) (string, error) {
	value := f.xField.Value(ptr)
	switch actual := value.(type) {
	case string:
		return f.options.Pad(actual), nil
	case bool:
		return strconv.FormatBool(actual), nil
	case time.Time:
		return actual.Format(f.timeLayout), nil
	case float64:
		return f.options.Pad(strconv.FormatFloat(actual, 'f', -1, 64)), nil
	case float32:
		return f.options.Pad(strconv.FormatFloat(float64(actual), 'f', -1, 32)), nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return f.options.FormatInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return f.options.FormatUint(rv.Uint()), nil
	}
	return "", fmt.Errorf("unsupported field type %T", value)
}
