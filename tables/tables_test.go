package tables

import "testing"

func TestCardinalAngles(t *testing.T) {
	tests := []struct {
		name     string
		angle    Angle
		sin, cos int32
	}{
		{"Zero", 0, 0, 1 << 16},
		{"Ninety", Ang90, 1 << 16, 0},
		{"OneEighty", Ang180, 0, -(1 << 16)},
		{"TwoSeventy", Ang270, -(1 << 16), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FineSine(tt.angle); got != tt.sin {
				t.Errorf("FineSine: expected %d, got %d", tt.sin, got)
			}
			if got := FineCosine(tt.angle); got != tt.cos {
				t.Errorf("FineCosine: expected %d, got %d", tt.cos, got)
			}
		})
	}
}

func TestAngleWraparound(t *testing.T) {
	// BAM angles wrap for free; one full turn lands on the same entry.
	a := Ang45
	if FineSine(a) != FineSine(a+Ang180+Ang180) {
		t.Error("Full revolution should not change the fine index")
	}
}

func TestSineRange(t *testing.T) {
	for i := 0; i < FineAngles; i++ {
		v := fineSine[i]
		if v > 1<<16 || v < -(1<<16) {
			t.Fatalf("Entry %d out of range: %d", i, v)
		}
	}
}

func TestQuarterSymmetry(t *testing.T) {
	// sin(a) == sin(180° - a) across the table.
	for i := 1; i < FineAngles/4; i++ {
		if fineSine[i] != fineSine[FineAngles/2-i] {
			t.Fatalf("Symmetry broken at entry %d: %d vs %d",
				i, fineSine[i], fineSine[FineAngles/2-i])
		}
	}
}
