package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valores padrão",
			cfg: Config{
				Scoring:           Scoring{PeriodDays: 30, MaxPeriodDays: 90},
				ScoreSnapshotSync: ScoreSnapshotSync{Enabled: true, MaxConcurrentJobs: 4},
			},
		},
		{
			name:    "período padrão acima do máximo",
			cfg:     Config{Scoring: Scoring{PeriodDays: 120, MaxPeriodDays: 90}},
			wantErr: true,
		},
		{
			name:    "período zero",
			cfg:     Config{Scoring: Scoring{PeriodDays: 0, MaxPeriodDays: 90}},
			wantErr: true,
		},
		{
			name: "agendador habilitado sem concorrência",
			cfg: Config{
				Scoring:           Scoring{PeriodDays: 30, MaxPeriodDays: 90},
				ScoreSnapshotSync: ScoreSnapshotSync{Enabled: true},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
