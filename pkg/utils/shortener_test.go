package utils

import "testing"

func TestGenerateShortCode(t *testing.T) {
	lengths := make(map[int]bool)
	for i := 0; i < 500; i++ {
		code, err := GenerateShortCode()
		if err != nil {
			t.Fatalf("GenerateShortCode: %v", err)
		}
		if err := ValidateShortCode(code); err != nil {
			t.Fatalf("generated code %q rejected: %v", code, err)
		}
		lengths[len(code)] = true
	}

	for n := MinShortCodeLength; n <= MaxShortCodeLength; n++ {
		if !lengths[n] {
			t.Errorf("no code of length %d in 500 draws", n)
		}
	}
}
