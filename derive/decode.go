// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package derive

import (
	"reflect"

	"github.com/bureau-foundation/binser"
)

// decodeValue reconstructs one value through dec into target, which
// must be settable. The decoder pulls exactly the bytes the matching
// encode traversal wrote; a shape mismatch shows up as garbage counts
// or a stream fault, never as a recoverable condition.
func decodeValue(dec *binser.Decoder, target reflect.Value) error {
	if target.Kind() == reflect.Pointer {
		present, err := dec.Option()
		if err != nil {
			return err
		}
		if !present {
			target.SetZero()
			return nil
		}
		if target.IsNil() {
			target.Set(reflect.New(target.Type().Elem()))
		}
		return decodeValue(dec, target.Elem())
	}

	// Types that decode themselves take precedence over reflection.
	if target.CanAddr() {
		if decodable, ok := target.Addr().Interface().(binser.Decodable); ok {
			return decodable.Decode(dec)
		}
	}

	switch target.Kind() {
	case reflect.Bool:
		value, err := dec.Bool()
		if err != nil {
			return err
		}
		target.SetBool(value)
	case reflect.Int:
		value, err := dec.Int()
		if err != nil {
			return err
		}
		target.SetInt(int64(value))
	case reflect.Int8:
		value, err := dec.Int8()
		if err != nil {
			return err
		}
		target.SetInt(int64(value))
	case reflect.Int16:
		value, err := dec.Int16()
		if err != nil {
			return err
		}
		target.SetInt(int64(value))
	case reflect.Int32:
		value, err := dec.Int32()
		if err != nil {
			return err
		}
		target.SetInt(int64(value))
	case reflect.Int64:
		value, err := dec.Int64()
		if err != nil {
			return err
		}
		target.SetInt(value)
	case reflect.Uint:
		value, err := dec.Uint()
		if err != nil {
			return err
		}
		target.SetUint(uint64(value))
	case reflect.Uint8:
		value, err := dec.Uint8()
		if err != nil {
			return err
		}
		target.SetUint(uint64(value))
	case reflect.Uint16:
		value, err := dec.Uint16()
		if err != nil {
			return err
		}
		target.SetUint(uint64(value))
	case reflect.Uint32:
		value, err := dec.Uint32()
		if err != nil {
			return err
		}
		target.SetUint(uint64(value))
	case reflect.Uint64:
		value, err := dec.Uint64()
		if err != nil {
			return err
		}
		target.SetUint(value)
	case reflect.Float32:
		value, err := dec.Float32()
		if err != nil {
			return err
		}
		target.SetFloat(float64(value))
	case reflect.Float64:
		value, err := dec.Float64()
		if err != nil {
			return err
		}
		target.SetFloat(value)
	case reflect.String:
		value, err := dec.String()
		if err != nil {
			return err
		}
		target.SetString(value)
	case reflect.Slice:
		return decodeSlice(dec, target)
	case reflect.Array:
		return decodeArray(dec, target)
	case reflect.Map:
		return decodeMap(dec, target)
	case reflect.Struct:
		return decodeStruct(dec, target)
	default:
		return binser.Errorf("cannot derive decoding for %s", target.Type())
	}
	return nil
}

func decodeSlice(dec *binser.Decoder, target reflect.Value) error {
	if target.Type().Elem().Kind() == reflect.Uint8 {
		data, err := dec.Bytes()
		if err != nil {
			return err
		}
		target.SetBytes(data)
		return nil
	}
	count, err := dec.SequenceLength()
	if err != nil {
		return err
	}
	// Zero-length sequences decode as nil, so nil and empty round-trip
	// to the same value.
	if count == 0 {
		target.SetZero()
		return nil
	}
	length := int(count)
	if length < 0 {
		return binser.Errorf("sequence count %d overflows the platform int", count)
	}
	slice := reflect.MakeSlice(target.Type(), length, length)
	for i := 0; i < length; i++ {
		if err := decodeValue(dec, slice.Index(i)); err != nil {
			return err
		}
	}
	target.Set(slice)
	return nil
}

// decodeArray reads an array with tuple semantics: the arity comes
// from the type, no count prefix on the wire.
func decodeArray(dec *binser.Decoder, target reflect.Value) error {
	if target.Type().Elem().Kind() == reflect.Uint8 {
		span, err := dec.Reader().ReadBytes(target.Len())
		if err != nil {
			return err
		}
		reflect.Copy(target, reflect.ValueOf(span))
		return nil
	}
	for i := 0; i < target.Len(); i++ {
		if err := decodeValue(dec, target.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func decodeMap(dec *binser.Decoder, target reflect.Value) error {
	count, err := dec.MapLength()
	if err != nil {
		return err
	}
	if count == 0 {
		target.SetZero()
		return nil
	}
	pairs := int(count)
	if pairs < 0 {
		return binser.Errorf("map count %d overflows the platform int", count)
	}
	mapType := target.Type()
	result := reflect.MakeMapWithSize(mapType, pairs)
	for i := 0; i < pairs; i++ {
		key := reflect.New(mapType.Key()).Elem()
		if err := decodeValue(dec, key); err != nil {
			return err
		}
		value := reflect.New(mapType.Elem()).Elem()
		if err := decodeValue(dec, value); err != nil {
			return err
		}
		result.SetMapIndex(key, value)
	}
	target.Set(result)
	return nil
}

func decodeStruct(dec *binser.Decoder, target reflect.Value) error {
	structType := target.Type()
	for i := 0; i < structType.NumField(); i++ {
		if skipField(structType.Field(i)) {
			continue
		}
		if err := decodeValue(dec, target.Field(i)); err != nil {
			return err
		}
	}
	return nil
}
