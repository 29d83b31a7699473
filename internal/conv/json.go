package conv

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Convert decodes in into the value pointed to by outPtr.
//
// Fast-path: when in is already assignable to the destination it is copied
// directly. Otherwise in is marshalled to JSON and unmarshalled into outPtr,
// which runs any custom UnmarshalJSON of the destination.
//
// A nil input leaves the destination untouched.
func Convert(in any, outPtr any) error {
	if outPtr == nil {
		return fmt.Errorf("conv.Convert: outPtr cannot be nil")
	}
	v := reflect.ValueOf(outPtr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("conv.Convert: outPtr must be a non-nil pointer")
	}
	if in == nil {
		return nil
	}

	inVal := reflect.ValueOf(in)
	if inVal.Type().AssignableTo(v.Elem().Type()) {
		v.Elem().Set(inVal)
		return nil
	}

	data, err := json.Marshal(normalize(in))
	if err != nil {
		return fmt.Errorf("conv.Convert: %w", err)
	}
	return json.Unmarshal(data, outPtr)
}

// normalize rewrites map[interface{}]interface{} nodes, which encoding/json
// cannot marshal, into map[string]interface{}.
func normalize(in any) any {
	switch actual := in.(type) {
	case map[interface{}]interface{}:
		ret := make(map[string]interface{}, len(actual))
		for k, v := range actual {
			ret[fmt.Sprint(k)] = normalize(v)
		}
		return ret
	case map[string]interface{}:
		ret := make(map[string]interface{}, len(actual))
		for k, v := range actual {
			ret[k] = normalize(v)
		}
		return ret
	case []interface{}:
		ret := make([]interface{}, len(actual))
		for i, v := range actual {
			ret[i] = normalize(v)
		}
		return ret
	}
	return in
}
