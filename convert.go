package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Name      Operands    Function
// CONVERT   dest src    dest = src converted to dest's type
//
// CONVERT is the only operation that crosses types. Conversions not listed
// below fail:
//
//	to BOOLEAN    numbers: non-zero; STR and LIST: non-empty; CHARACTER:
//	              anything but 'f' or 'F'; BOOLEAN as is
//	to CHARACTER  BOOLEAN: 't' or 'f'; CHARACTER as is
//	to numbers    numbers as arithmetic results; BOOLEAN: 1 or 0;
//	              STR: parsed as decimal text
//	to LIST       LIST copied; STR: one CHARACTER per character; anything
//	              else: a single element list
//	to STR        the display form; a LIST joins its elements' display forms
func opConvert(dst *Value, src Value) error {
	v, err := convert((*dst).Type(), src)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func convert(t VarType, src Value) (Value, error) {
	switch t {
	case TypeBoolean:
		return toBoolean(src)
	case TypeCharacter:
		return toCharacter(src)
	case TypeNatural, TypeInteger, TypeFloat:
		return toNumber(t, src)
	case TypeList:
		return toList(src), nil
	case TypeString:
		return toString(src), nil
	}
	return nil, unsupportedConversion(t, src)
}

func toBoolean(src Value) (Value, error) {
	switch v := src.(type) {
	case Natural:
		return Boolean(v != 0), nil
	case Integer:
		return Boolean(v != 0), nil
	case Float:
		return Boolean(v != 0), nil
	case String:
		return Boolean(v != ""), nil
	case List:
		return Boolean(len(v) != 0), nil
	case Boolean:
		return v, nil
	case Character:
		return Boolean(v != 'f' && v != 'F'), nil
	}
	return nil, unsupportedConversion(TypeBoolean, src)
}

func toCharacter(src Value) (Value, error) {
	switch v := src.(type) {
	case Boolean:
		if v {
			return Character('t'), nil
		}
		return Character('f'), nil
	case Character:
		return v, nil
	}
	return nil, unsupportedConversion(TypeCharacter, src)
}

func toNumber(t VarType, src Value) (Value, error) {
	switch v := src.(type) {
	case Natural, Integer, Float:
		n, err := numeric(v)
		if err != nil {
			return nil, err
		}
		return castNumeric(t, n)

	case Boolean:
		return castNumeric(t, float32(boolInt(bool(v))))

	case String:
		return parseNumber(t, strings.TrimSpace(string(v)))
	}
	return nil, unsupportedConversion(t, src)
}

func parseNumber(t VarType, text string) (Value, error) {
	switch t {
	case TypeNatural:
		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return Natural(n), nil
	case TypeInteger:
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return Integer(n), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return Float(f), nil
	}
	return nil, unsupportedConversion(t, String(text))
}

func toList(src Value) Value {
	switch v := src.(type) {
	case List:
		return Copy(v)
	case String:
		list := List{}
		for _, r := range string(v) {
			list = append(list, Character(r))
		}
		return list
	}
	return List{Copy(src)}
}

func toString(src Value) Value {
	if l, ok := src.(List); ok {
		var sb strings.Builder
		for _, v := range l {
			sb.WriteString(v.String())
		}
		return String(sb.String())
	}
	return String(src.String())
}

func unsupportedConversion(t VarType, src Value) error {
	return fmt.Errorf("%w: %v to %v", ErrConversion, src.Type(), t)
}
