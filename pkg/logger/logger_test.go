package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupogen/premios-api/pkg/logger"
)

func TestNew_ProduccionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.Named("stocks").Info().Str("deposito", "DEPOSITO BETTICA").Msg("snapshot")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "stocks", line["component"])
	assert.Equal(t, "DEPOSITO BETTICA", line["deposito"])
	assert.Equal(t, "snapshot", line["message"])
	assert.Contains(t, line, "time")
}

func TestNew_RespetaNivel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	log.Info().Msg("no se escribe")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("se escribe")
	assert.NotZero(t, buf.Len())
}

func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "verboso", Out: &buf})

	log.Debug().Msg("oculto")
	assert.Zero(t, buf.Len())
	log.Info().Msg("visible")
	assert.NotZero(t, buf.Len())
}

func TestNop_NoEscribe(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Error().Msg("nada") })
}
