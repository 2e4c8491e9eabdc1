package query

import (
	"io"
	"math"
	"os"

	"github.com/dianpeng/topjoin/engine"
	"gopkg.in/yaml.v3"
)

const (
	defVerifyMaxPairs  = 1 << 24
	defVerifyTolerance = 1e-9
)

// Executor configuration. Every knob is optional, a zero Workers or ChunkSize
// lets the engine pick.
type Config struct {
	Workers   int `yaml:"workers"`    // join worker pool size
	ChunkSize int `yaml:"chunk_size"` // groups per join task

	// Cross check the result against the nested loop reference evaluator.
	// Skipped when N1*N2*N3 exceeds VerifyMaxPairs.
	Verify          bool    `yaml:"verify"`
	VerifyMaxPairs  int64   `yaml:"verify_max_pairs"`
	VerifyTolerance float64 `yaml:"verify_tolerance"` // relative
}

func DefaultConfig() Config {
	return Config{
		VerifyMaxPairs:  defVerifyMaxPairs,
		VerifyTolerance: defVerifyTolerance,
	}
}

// LoadConfig reads a YAML config file, fields not present in the file keep
// their default value. Unknown fields are rejected.
func LoadConfig(path string) (Config, error) {
	out := DefaultConfig()

	f, e := os.Open(path)
	if e != nil {
		return out, err(ErrConfig, "config", "%s: %s", path, e)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if e := dec.Decode(&out); e != nil && e != io.EOF {
		return out, err(ErrConfig, "config", "%s: %s", path, e)
	}
	return out, out.Validate()
}

func (self Config) Validate() error {
	switch {
	case self.Workers < 0:
		return err(ErrConfig, "config", "workers must not be negative, got %d", self.Workers)
	case self.ChunkSize < 0:
		return err(ErrConfig, "config", "chunk_size must not be negative, got %d", self.ChunkSize)
	case self.VerifyMaxPairs < 0:
		return err(ErrConfig, "config", "verify_max_pairs must not be negative")
	case self.VerifyTolerance < 0 || math.IsNaN(self.VerifyTolerance):
		return err(ErrConfig, "config", "verify_tolerance must be a non negative number")
	default:
		return nil
	}
}

func (self Config) joinOptions() engine.JoinOptions {
	return engine.JoinOptions{
		Workers:   self.Workers,
		ChunkSize: self.ChunkSize,
	}
}
