package auth

import "testing"

func TestValidateAdminKey(t *testing.T) {
	tests := []struct {
		name       string
		presented  string
		configured string
		wantErr    bool
	}{
		{"matching key", "secret", "secret", false},
		{"wrong key", "nope", "secret", true},
		{"empty presented", "", "secret", true},
		{"empty configured never validates", "", "", true},
		{"empty configured rejects everything", "anything", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.presented, tt.configured)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAdminKey(%q, %q) error = %v, wantErr %v",
					tt.presented, tt.configured, err, tt.wantErr)
			}
		})
	}
}
