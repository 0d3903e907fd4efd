package common

import "testing"

func TestSinLUTMatchesKeyAngles(t *testing.T) {
	if v := SinLUT(0); v < -1e-9 || v > 1e-9 {
		t.Fatalf("sin(0) = %f, want ~0", v)
	}
	quarter := LUTSize / 4
	if v := SinLUT(quarter); v < 0.999 || v > 1.001 {
		t.Fatalf("sin(pi/2) = %f, want ~1", v)
	}
}

func TestCosLUTMatchesKeyAngles(t *testing.T) {
	if v := CosLUT(0); v < 0.999 || v > 1.001 {
		t.Fatalf("cos(0) = %f, want ~1", v)
	}
	half := LUTSize / 2
	if v := CosLUT(half); v < -1.001 || v > -0.999 {
		t.Fatalf("cos(pi) = %f, want ~-1", v)
	}
}

func TestLUTIndexWrapsViaMask(t *testing.T) {
	if SinLUT(LUTSize) != SinLUT(0) {
		t.Fatalf("SinLUT did not wrap at LUTSize boundary")
	}
	if CosLUT(LUTSize+3) != CosLUT(3) {
		t.Fatalf("CosLUT did not wrap for index beyond LUTSize")
	}
}

func TestNormalizeAngleWrapsNegative(t *testing.T) {
	idx := NormalizeAngle(-0.0001)
	if idx < 0 || idx >= LUTSize {
		t.Fatalf("NormalizeAngle(-0.0001) = %d, out of [0,%d)", idx, LUTSize)
	}
}

func TestNormalizeAngleFullTurnWrapsToZero(t *testing.T) {
	idx := NormalizeAngle(2 * 3.14159265358979)
	if idx != 0 && idx != LUTSize-1 {
		t.Fatalf("NormalizeAngle(2*pi) = %d, want 0 or %d (rounding edge)", idx, LUTSize-1)
	}
}

func TestSinCosConvenienceMatchesLUT(t *testing.T) {
	s, c := SinCos(0)
	if s != SinLUT(0) || c != CosLUT(0) {
		t.Fatalf("SinCos(0) = (%f,%f), want (%f,%f)", s, c, SinLUT(0), CosLUT(0))
	}
}
