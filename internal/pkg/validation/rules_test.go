package validation

import "testing"

func TestValidCNE(t *testing.T) {
	tests := []struct {
		cne  string
		want bool
	}{
		{"D130000001", true},
		{"A000000000", true},
		{"d130000001", false},
		{"D13000001", false},
		{"D1300000012", false},
		{"DD30000001", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidCNE(tt.cne); got != tt.want {
			t.Errorf("ValidCNE(%q) = %v, want %v", tt.cne, got, tt.want)
		}
	}
}

func TestValidMatricule(t *testing.T) {
	tests := []struct {
		matricule string
		want      bool
	}{
		{"FORM0001", true},
		{"AB12", true},
		{"A1B2C3D4E5", true},
		{"AB1", false},
		{"A1B2C3D4E5F", false},
		{"form0001", false},
		{"FORM 001", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidMatricule(tt.matricule); got != tt.want {
			t.Errorf("ValidMatricule(%q) = %v, want %v", tt.matricule, got, tt.want)
		}
	}
}

func TestStringValidation(t *testing.T) {
	tests := []struct {
		name string
		v    *StringValidation
		want bool
	}{
		{"required empty", NewStringValidation(""), false},
		{"optional empty", NewStringValidation("").WithRequired(false).WithMinLength(5), true},
		{"below min length", NewStringValidation("ab").WithMinLength(3), false},
		{"above max length", NewStringValidation("abcdef").WithMaxLength(5), false},
		{"within bounds", NewStringValidation("abcd").WithMinLength(2).WithMaxLength(5), true},
		{"pattern match", NewStringValidation("D130000001").WithPattern(CompiledPatterns.CNE), true},
		{"pattern mismatch", NewStringValidation("nope").WithPattern(CompiledPatterns.CNE), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Validate(); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}
