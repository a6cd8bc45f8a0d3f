package actividad

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscribirCSV(t *testing.T) {
	fecha := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	list := []Actividad{
		{
			Usuario:     "Maria",
			Rol:         "SDR",
			TipoAccion:  "llamada_salida",
			Entidad:     "Universidad del Pacífico",
			TipoEntidad: "cuenta",
			Canal:       CanalLlamada,
			Fecha:       fecha,
		},
		{
			Usuario:     "Jorge",
			Rol:         "AE",
			TipoAccion:  "propuesta_enviada",
			Entidad:     "UTEC",
			TipoEntidad: "oportunidad",
			Canal:       CanalEmail,
			Fecha:       fecha,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, EscribirCSV(&buf, list))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3) // encabezado + 2 filas
	assert.Equal(t, "usuario,rol,tipo_accion,entidad,tipo_entidad,canal,fecha", lines[0])
	assert.Equal(t, "Maria,SDR,llamada_salida,Universidad del Pacífico,cuenta,llamada,2026-01-15T10:30:00Z", lines[1])
	assert.Equal(t, "Jorge,AE,propuesta_enviada,UTEC,oportunidad,email,2026-01-15T10:30:00Z", lines[2])
}

func TestEscribirCSVSinRegistros(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EscribirCSV(&buf, nil))
	assert.Equal(t, "usuario,rol,tipo_accion,entidad,tipo_entidad,canal,fecha\n", buf.String())
}
