package config

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "development defaults pass",
			cfg:     Config{Port: "8347", DBName: "chesnokuz", DBPassword: "password", Env: "development"},
			wantErr: false,
		},
		{
			name:    "missing port",
			cfg:     Config{DBName: "chesnokuz"},
			wantErr: true,
		},
		{
			name:    "missing db name",
			cfg:     Config{Port: "8347"},
			wantErr: true,
		},
		{
			name:    "production rejects default password",
			cfg:     Config{Port: "8347", DBName: "chesnokuz", DBPassword: "password", Env: "production"},
			wantErr: true,
		},
		{
			name:    "production with strong password passes",
			cfg:     Config{Port: "8347", DBName: "chesnokuz", DBPassword: "s3cure-and-long", DBSSLMode: "require", Env: "production"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsProduction(t *testing.T) {
	if (&Config{Env: "development"}).IsProduction() {
		t.Error("development should not be production")
	}
	if !(&Config{Env: "prod"}).IsProduction() {
		t.Error("prod should be production")
	}
}
