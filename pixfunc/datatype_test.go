package pixfunc

import (
	"encoding/json"
	"testing"
)

func TestDataTypeSizes(t *testing.T) {
	cases := []struct {
		t       DataType
		size    int
		complex bool
		float   bool
	}{
		{Byte, 1, false, false},
		{Int8, 1, false, false},
		{UInt16, 2, false, false},
		{Int16, 2, false, false},
		{UInt32, 4, false, false},
		{Int32, 4, false, false},
		{UInt64, 8, false, false},
		{Int64, 8, false, false},
		{Float32, 4, false, true},
		{Float64, 8, false, true},
		{CInt16, 4, true, false},
		{CInt32, 8, true, false},
		{CFloat32, 8, true, true},
		{CFloat64, 16, true, true},
		{Unknown, 0, false, false},
	}
	for _, c := range cases {
		if got := c.t.Size(); got != c.size {
			t.Errorf("%s size: got %d, want %d", c.t, got, c.size)
		}
		if got := c.t.IsComplex(); got != c.complex {
			t.Errorf("%s complex: got %v, want %v", c.t, got, c.complex)
		}
		if got := c.t.IsFloat(); got != c.float {
			t.Errorf("%s float: got %v, want %v", c.t, got, c.float)
		}
		if c.complex && c.t.Component().Size()*2 != c.size {
			t.Errorf("%s component %s does not fill half the sample", c.t, c.t.Component())
		}
	}
}

func TestParseDataType(t *testing.T) {
	for _, name := range []string{"Float32", "float32", "FLOAT32"} {
		got, err := ParseDataType(name)
		if err != nil {
			t.Fatalf("parse %q: %v", name, err)
		}
		if got != Float32 {
			t.Errorf("parse %q: got %s", name, got)
		}
	}
	if _, err := ParseDataType("Float16"); err == nil {
		t.Error("Float16 should not parse")
	}
}

func TestDataTypeJSON(t *testing.T) {
	type band struct {
		Type DataType `json:"type"`
	}
	data, err := json.Marshal(band{CInt32})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"type":"CInt32"}` {
		t.Errorf("marshal: got %s", data)
	}
	var b band
	if err := json.Unmarshal([]byte(`{"type":"cfloat64"}`), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.Type != CFloat64 {
		t.Errorf("unmarshal: got %s", b.Type)
	}
	if _, err := json.Marshal(band{Unknown}); err == nil {
		t.Error("marshalling Unknown should fail")
	}
}
