package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Boutique-api/pkg/logger"
)

func TestNew_IncluyeCampoService(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "boutique-api", Out: &buf})

	l.Info().Msg("arranque")

	assert.Contains(t, buf.String(), `"service":"boutique-api"`,
		"cada línea debe llevar el nombre del servicio")
	assert.Contains(t, buf.String(), `"message":"arranque"`)
}

func TestNew_RespetaElNivelConfigurado(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	l.Info().Msg("silenciado")
	l.Warn().Msg("visible")

	assert.NotContains(t, buf.String(), "silenciado")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "verboso", Out: &buf})

	l.Debug().Msg("silenciado")
	l.Info().Msg("visible")

	assert.NotContains(t, buf.String(), "silenciado")
	assert.Contains(t, buf.String(), "visible")
}
