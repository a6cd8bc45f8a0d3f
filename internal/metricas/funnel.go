package metricas

// NivelFunnel es un nivel del embudo con su conteo del período.
type NivelFunnel struct {
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
}

// PuntoDebil señala el par de niveles con peor conversión.
type PuntoDebil struct {
	De         string `json:"de"`
	A          string `json:"a"`
	Conversion int    `json:"conversion"`
}

// FunnelDelPeriodo arma los niveles fijos del embudo a partir del resumen:
// universidades → leads → sqls → oportunidades → won.
func FunnelDelPeriodo(res Resumen) []NivelFunnel {
	return []NivelFunnel{
		{Nombre: "Universidades", Cantidad: res.CuentasNuevas},
		{Nombre: "Leads", Cantidad: res.Leads},
		{Nombre: "SQLs", Cantidad: res.SQLs},
		{Nombre: "Oportunidades", Cantidad: res.OportunidadesNuevas},
		{Nombre: "Won", Cantidad: res.Won},
	}
}

// Conversiones devuelve la tasa de cada nivel respecto al anterior.
// El primer nivel siempre es 100.
func Conversiones(niveles []NivelFunnel) []int {
	out := make([]int, len(niveles))
	for i := range niveles {
		if i == 0 {
			out[i] = 100
			continue
		}
		out[i] = Conversion(niveles[i].Cantidad, niveles[i-1].Cantidad)
	}
	return out
}

// BuscarPuntoDebil encuentra el par con menor conversión entre los pares
// cuyo nivel previo tiene conteo mayor a cero. Empates se resuelven por el
// primer par en orden de embudo. Devuelve false si ningún par aplica.
func BuscarPuntoDebil(niveles []NivelFunnel) (PuntoDebil, bool) {
	conv := Conversiones(niveles)
	mejor := PuntoDebil{Conversion: -1}
	encontrado := false
	for i := 1; i < len(niveles); i++ {
		if niveles[i-1].Cantidad == 0 {
			continue
		}
		if !encontrado || conv[i] < mejor.Conversion {
			mejor = PuntoDebil{
				De:         niveles[i-1].Nombre,
				A:          niveles[i].Nombre,
				Conversion: conv[i],
			}
			encontrado = true
		}
	}
	return mejor, encontrado
}
