package oportunidad

// Etapas del pipeline, en orden. Los nombres legacy (discovery/demo/propuesta)
// se normalizan en el borde de persistencia con CanonicalizarEtapa; la lógica
// de negocio solo ve el enum canónico.
const (
	EtapaPrimeraReunionProgramada = "primera_reunion_programada"
	EtapaPrimeraReunionRealizada  = "primera_reunion_realizada"
	EtapaDemoProgramada           = "demo_programada"
	EtapaPropuestaEnviada         = "propuesta_enviada"
	EtapaNegociacion              = "negociacion"
	EtapaWon                      = "won"
	EtapaLost                     = "lost"
	EtapaNurture                  = "nurture"
)

// Estados derivados de la etapa
const (
	EstadoActivo  = "activo"
	EstadoWon     = "won"
	EstadoLost    = "lost"
	EstadoNurture = "nurture"
)

// Orden canónico de las etapas intermedias + cierres
var etapasOrdenadas = []string{
	EtapaPrimeraReunionProgramada,
	EtapaPrimeraReunionRealizada,
	EtapaDemoProgramada,
	EtapaPropuestaEnviada,
	EtapaNegociacion,
	EtapaWon,
	EtapaLost,
	EtapaNurture,
}

// Sinónimos de la generación anterior de nombres de etapa.
var etapasLegacy = map[string]string{
	"discovery": EtapaPrimeraReunionRealizada,
	"demo":      EtapaDemoProgramada,
	"propuesta": EtapaPropuestaEnviada,
}

// EsEtapaValida indica si el valor pertenece al enum canónico.
func EsEtapaValida(etapa string) bool {
	for _, e := range etapasOrdenadas {
		if e == etapa {
			return true
		}
	}
	return false
}

// CanonicalizarEtapa mapea nombres legacy al enum canónico. Se aplica una
// sola vez al leer de persistencia; devuelve el valor sin tocar si ya es
// canónico o si es desconocido (la validación la hace EsEtapaValida).
func CanonicalizarEtapa(etapa string) string {
	if canonica, ok := etapasLegacy[etapa]; ok {
		return canonica
	}
	return etapa
}

// EstadoParaEtapa deriva el estado a partir de la etapa. Es la única
// función que puede fijar el estado de una oportunidad.
func EstadoParaEtapa(etapa string) string {
	switch etapa {
	case EtapaWon:
		return EstadoWon
	case EtapaLost:
		return EstadoLost
	case EtapaNurture:
		return EstadoNurture
	default:
		return EstadoActivo
	}
}
