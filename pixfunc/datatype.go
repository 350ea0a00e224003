package pixfunc

import (
	"fmt"
	"strings"
)

// DataType identifies the numeric representation of one sample.
// The names follow the GDAL conventions.
type DataType int

// Supported sample types. Complex types store the real part first, followed
// by the imaginary part of the same width.
const (
	Unknown DataType = iota
	Byte
	Int8
	UInt16
	Int16
	UInt32
	Int32
	UInt64
	Int64
	Float32
	Float64
	CInt16
	CInt32
	CFloat32
	CFloat64
)

type typeInfo struct {
	name    string
	size    int
	signed  bool
	float   bool
	complex bool
}

var typeInfos = [...]typeInfo{
	Unknown:  {name: "Unknown"},
	Byte:     {name: "Byte", size: 1},
	Int8:     {name: "Int8", size: 1, signed: true},
	UInt16:   {name: "UInt16", size: 2},
	Int16:    {name: "Int16", size: 2, signed: true},
	UInt32:   {name: "UInt32", size: 4},
	Int32:    {name: "Int32", size: 4, signed: true},
	UInt64:   {name: "UInt64", size: 8},
	Int64:    {name: "Int64", size: 8, signed: true},
	Float32:  {name: "Float32", size: 4, signed: true, float: true},
	Float64:  {name: "Float64", size: 8, signed: true, float: true},
	CInt16:   {name: "CInt16", size: 4, signed: true, complex: true},
	CInt32:   {name: "CInt32", size: 8, signed: true, complex: true},
	CFloat32: {name: "CFloat32", size: 8, signed: true, float: true, complex: true},
	CFloat64: {name: "CFloat64", size: 16, signed: true, float: true, complex: true},
}

func (t DataType) info() typeInfo {
	if t < 0 || int(t) >= len(typeInfos) {
		return typeInfos[Unknown]
	}
	return typeInfos[t]
}

// Size returns the number of bytes of one sample, both parts included for
// complex types. It is 0 for Unknown.
func (t DataType) Size() int { return t.info().size }

func (t DataType) IsSigned() bool  { return t.info().signed }
func (t DataType) IsFloat() bool   { return t.info().float }
func (t DataType) IsComplex() bool { return t.info().complex }

// Valid reports whether t is one of the supported sample types.
func (t DataType) Valid() bool { return t.Size() > 0 }

// Component returns the type of one part of a complex sample.
// For real types it returns t itself.
func (t DataType) Component() DataType {
	switch t {
	case CInt16:
		return Int16
	case CInt32:
		return Int32
	case CFloat32:
		return Float32
	case CFloat64:
		return Float64
	}
	return t
}

func (t DataType) String() string {
	if int(t) >= 0 && int(t) < len(typeInfos) {
		return typeInfos[t].name
	}
	return fmt.Sprintf("DataType(%d)", int(t))
}

// ParseDataType returns the type with the given name. Matching ignores case.
func ParseDataType(name string) (DataType, error) {
	for t := Byte; t <= CFloat64; t++ {
		if strings.EqualFold(typeInfos[t].name, name) {
			return t, nil
		}
	}
	return Unknown, fmt.Errorf("unknown data type %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (t DataType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *DataType) UnmarshalText(text []byte) error {
	v, err := ParseDataType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
