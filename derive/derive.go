// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package derive

import (
	"encoding/binary"
	"reflect"
	"sort"

	"github.com/bureau-foundation/binser"
)

// Marshal encodes value into a freshly allocated buffer in the given
// byte order, deriving the traversal from the value's type. A
// top-level pointer is dereferenced first; it addresses the value
// rather than describing its shape.
func Marshal(value any, order binary.ByteOrder) ([]byte, error) {
	target := reflect.ValueOf(value)
	if !target.IsValid() {
		return nil, binser.Errorf("cannot marshal untyped nil")
	}
	if target.Kind() == reflect.Pointer {
		if target.IsNil() {
			return nil, binser.Errorf("cannot marshal nil %s", target.Type())
		}
		target = target.Elem()
	}
	if !target.CanAddr() {
		// Manual codecs usually hang off pointer receivers; encoding
		// needs an addressable value to reach them.
		addressable := reflect.New(target.Type()).Elem()
		addressable.Set(target)
		target = addressable
	}
	return binser.Marshal(order, func(enc *binser.Encoder) error {
		return encodeValue(enc, target)
	})
}

// Unmarshal decodes data into target, which must be a non-nil
// pointer, deriving the traversal from the target's type. The
// target's type must match the shape the writer encoded; the format
// carries nothing to detect a mismatch with.
func Unmarshal(data []byte, target any, order binary.ByteOrder) error {
	pointer := reflect.ValueOf(target)
	if pointer.Kind() != reflect.Pointer || pointer.IsNil() {
		return binser.Errorf("unmarshal target must be a non-nil pointer, got %T", target)
	}
	return binser.Unmarshal(data, order, func(dec *binser.Decoder) error {
		return decodeValue(dec, pointer.Elem())
	})
}

// sortedMapKeys returns the map's keys, sorted when the key kind has
// a natural order so identical maps encode to identical bytes. Keys
// of other kinds keep reflection's iteration order.
func sortedMapKeys(value reflect.Value) []reflect.Value {
	keys := value.MapKeys()
	switch value.Type().Key().Kind() {
	case reflect.String:
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Int() < keys[j].Int() })
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Uint() < keys[j].Uint() })
	case reflect.Float32, reflect.Float64:
		sort.Slice(keys, func(i, j int) bool { return keys[i].Float() < keys[j].Float() })
	}
	return keys
}

// skipField reports whether a struct field takes no part in the wire
// format: unexported, or explicitly opted out with `binser:"-"`.
func skipField(field reflect.StructField) bool {
	return !field.IsExported() || field.Tag.Get("binser") == "-"
}
