package dither

import (
	"errors"
	"testing"
)

func TestDitherTypeString(t *testing.T) {
	tests := []struct {
		dt   DitherType
		want string
	}{
		{DitherNone, "none"},
		{DitherRectangular, "rectangular"},
		{DitherTriangular, "triangular"},
		{DitherType(99), "DitherType(99)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.dt.String(); got != tt.want {
				t.Errorf("DitherType(%d).String() = %q, want %q", tt.dt, got, tt.want)
			}
		})
	}
}

func TestDitherTypeValid(t *testing.T) {
	if !DitherTriangular.Valid() {
		t.Error("DitherTriangular should be valid")
	}

	if DitherType(-1).Valid() || DitherType(99).Valid() {
		t.Error("out of range types should be invalid")
	}
}

func TestParseDitherType(t *testing.T) {
	tests := []struct {
		in   string
		want DitherType
	}{
		{"none", DitherNone},
		{"Rectangular", DitherRectangular},
		{" TRIANGULAR ", DitherTriangular},
		{"tpdf", DitherTriangular},
		{"rpdf", DitherRectangular},
	}
	for _, tt := range tests {
		got, err := ParseDitherType(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseDitherType(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseDitherType("gaussian"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("err = %v, want ErrUnknownType", err)
	}
}
