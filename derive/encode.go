// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package derive

import (
	"reflect"

	"github.com/bureau-foundation/binser"
)

var encodableType = reflect.TypeOf((*binser.Encodable)(nil)).Elem()

// encodeValue writes one value through enc, recursing into nested
// shapes. Pointers get option framing before anything else, so a nil
// manual-codec pointer still encodes as a well-formed absent option.
func encodeValue(enc *binser.Encoder, value reflect.Value) error {
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return enc.Option(false)
		}
		if err := enc.Option(true); err != nil {
			return err
		}
		return encodeValue(enc, value.Elem())
	}

	// Types that encode themselves take precedence over reflection.
	if value.Type().Implements(encodableType) {
		return value.Interface().(binser.Encodable).Encode(enc)
	}
	if reflect.PointerTo(value.Type()).Implements(encodableType) {
		// Map keys and values are never addressable; copy so a
		// pointer-receiver Encode is reachable there too, matching
		// the decode side, which always builds addressable targets.
		if !value.CanAddr() {
			addressable := reflect.New(value.Type()).Elem()
			addressable.Set(value)
			value = addressable
		}
		return value.Addr().Interface().(binser.Encodable).Encode(enc)
	}

	switch value.Kind() {
	case reflect.Bool:
		return enc.Bool(value.Bool())
	case reflect.Int:
		return enc.Int(int(value.Int()))
	case reflect.Int8:
		return enc.Int8(int8(value.Int()))
	case reflect.Int16:
		return enc.Int16(int16(value.Int()))
	case reflect.Int32:
		return enc.Int32(int32(value.Int()))
	case reflect.Int64:
		return enc.Int64(value.Int())
	case reflect.Uint:
		return enc.Uint(uint(value.Uint()))
	case reflect.Uint8:
		return enc.Uint8(uint8(value.Uint()))
	case reflect.Uint16:
		return enc.Uint16(uint16(value.Uint()))
	case reflect.Uint32:
		return enc.Uint32(uint32(value.Uint()))
	case reflect.Uint64:
		return enc.Uint64(value.Uint())
	case reflect.Float32:
		return enc.Float32(float32(value.Float()))
	case reflect.Float64:
		return enc.Float64(value.Float())
	case reflect.String:
		return enc.String(value.String())
	case reflect.Slice:
		return encodeSlice(enc, value)
	case reflect.Array:
		return encodeArray(enc, value)
	case reflect.Map:
		return encodeMap(enc, value)
	case reflect.Struct:
		return encodeStruct(enc, value)
	default:
		return binser.Errorf("cannot derive encoding for %s", value.Type())
	}
}

func encodeSlice(enc *binser.Encoder, value reflect.Value) error {
	if value.Type().Elem().Kind() == reflect.Uint8 {
		return enc.Bytes(value.Bytes())
	}
	if err := enc.SequenceLength(value.Len()); err != nil {
		return err
	}
	for i := 0; i < value.Len(); i++ {
		if err := encodeValue(enc, value.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

// encodeArray writes an array with tuple semantics: the arity is part
// of the type, so no count prefix. Byte arrays go out as one raw span.
func encodeArray(enc *binser.Encoder, value reflect.Value) error {
	if value.Type().Elem().Kind() == reflect.Uint8 {
		span := make([]byte, value.Len())
		reflect.Copy(reflect.ValueOf(span), value)
		return enc.Writer().WriteBytes(span)
	}
	for i := 0; i < value.Len(); i++ {
		if err := encodeValue(enc, value.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func encodeMap(enc *binser.Encoder, value reflect.Value) error {
	if err := enc.MapLength(value.Len()); err != nil {
		return err
	}
	for _, key := range sortedMapKeys(value) {
		if err := encodeValue(enc, key); err != nil {
			return err
		}
		if err := encodeValue(enc, value.MapIndex(key)); err != nil {
			return err
		}
	}
	return nil
}

func encodeStruct(enc *binser.Encoder, value reflect.Value) error {
	structType := value.Type()
	for i := 0; i < structType.NumField(); i++ {
		if skipField(structType.Field(i)) {
			continue
		}
		if err := encodeValue(enc, value.Field(i)); err != nil {
			return err
		}
	}
	return nil
}
