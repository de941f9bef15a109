package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"200ms"`), &d))
	assert.Equal(t, 200*time.Millisecond, d.Duration)

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, d.Duration)

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))

	out, err := json.Marshal(Duration{3 * time.Second})
	require.NoError(t, err)
	assert.JSONEq(t, `"3s"`, string(out))
}

func TestDuration_YAML(t *testing.T) {
	var cfg struct {
		Tick Duration `yaml:"tick"`
		TTL  Duration `yaml:"ttl"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("tick: 250ms\nttl: 2000000000\n"), &cfg))
	assert.Equal(t, 250*time.Millisecond, cfg.Tick.Duration)
	assert.Equal(t, 2*time.Second, cfg.TTL.Duration)
}
