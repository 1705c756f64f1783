package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KilimcininKorOglu/ostat/internal/config"
)

func validConfig() config.RunConfig {
	return config.RunConfig{
		MinDegree:    2,
		InsertFile:   "keystoinsert.txt",
		DeleteFile:   "keystodelete.txt",
		CommandsFile: "commands.txt",
		OutputFile:   "output.txt",
	}
}

func TestValidateOK(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidateDegree(t *testing.T) {
	for _, degree := range []int{-3, 0, 1} {
		cfg := validConfig()
		cfg.MinDegree = degree
		assert.ErrorIs(t, cfg.Validate(), config.ErrDegreeTooSmall)
	}

	cfg := validConfig()
	cfg.MinDegree = config.MinDegreeFloor
	assert.NoError(t, cfg.Validate())
}

func TestValidateMissingPaths(t *testing.T) {
	tests := []struct {
		name  string
		unset func(*config.RunConfig)
		want  error
	}{
		{"insert", func(c *config.RunConfig) { c.InsertFile = "" }, config.ErrMissingInsert},
		{"delete", func(c *config.RunConfig) { c.DeleteFile = "" }, config.ErrMissingDelete},
		{"commands", func(c *config.RunConfig) { c.CommandsFile = "" }, config.ErrMissingCommands},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.unset(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := config.RunConfig{MinDegree: 2}
	cfg.ApplyDefaults()
	assert.Equal(t, config.DefaultOutputFile, cfg.OutputFile)

	cfg.OutputFile = "elsewhere.txt"
	cfg.ApplyDefaults()
	assert.Equal(t, "elsewhere.txt", cfg.OutputFile)
}
