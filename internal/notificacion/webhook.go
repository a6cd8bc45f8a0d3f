package notificacion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
)

func enviar(payload map[string]string) {
	url := os.Getenv("WEBHOOK_ALERTAS_URL")
	if url == "" {
		return
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		logrus.WithError(err).Warn("error al enviar webhook")
		return
	}
	defer resp.Body.Close()
}

// EnviarAlertaDominioDuplicado avisa que se dio de alta una cuenta con un
// dominio que ya existe en el workspace.
func EnviarAlertaDominioDuplicado(dominio string) {
	enviar(map[string]string{
		"mensaje": "Alerta: nueva cuenta con dominio ya existente",
		"dominio": dominio,
	})
}

// EnviarAlertaPerdida avisa que una oportunidad se marcó como perdida.
func EnviarAlertaPerdida(oportunidadID uint, motivo string) {
	enviar(map[string]string{
		"mensaje":     "Oportunidad marcada como perdida",
		"oportunidad": fmt.Sprint(oportunidadID),
		"motivo":      motivo,
	})
}
