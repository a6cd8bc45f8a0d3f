package actividad

import (
	"encoding/csv"
	"io"
	"time"
)

// Encabezados del export, en el orden que espera el reporte comercial.
var columnasCSV = []string{"usuario", "rol", "tipo_accion", "entidad", "tipo_entidad", "canal", "fecha"}

// EscribirCSV serializa el log de actividad: una fila de encabezado y una
// fila por registro, campos separados por coma.
func EscribirCSV(w io.Writer, list []Actividad) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columnasCSV); err != nil {
		return err
	}
	for _, a := range list {
		row := []string{
			a.Usuario,
			a.Rol,
			a.TipoAccion,
			a.Entidad,
			a.TipoEntidad,
			a.Canal,
			a.Fecha.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
