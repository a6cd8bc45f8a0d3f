package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/myworkin/api-crm/internal/actividad"
	"github.com/myworkin/api-crm/internal/auth"
	"github.com/myworkin/api-crm/internal/cuenta"
	"github.com/myworkin/api-crm/internal/equipo"
	"github.com/myworkin/api-crm/internal/metricas"
	"github.com/myworkin/api-crm/internal/nota"
	"github.com/myworkin/api-crm/internal/oportunidad"
	"github.com/myworkin/api-crm/internal/reunion"
	"github.com/myworkin/api-crm/internal/utils/db"
	"github.com/myworkin/api-crm/internal/workspace"
)

func main() {
	// .env en dev; en producción las variables vienen del entorno
	if err := godotenv.Load(); err != nil {
		logrus.Info("sin archivo .env, usando variables de entorno")
	}

	database, err := db.GetDB()
	if err != nil {
		logrus.WithError(err).Fatal("error al conectar a la base")
	}

	// AutoMigrate para todos los modelos
	if err := database.AutoMigrate(
		&workspace.Workspace{},
		&equipo.Miembro{},
		&cuenta.Cuenta{},
		&oportunidad.Oportunidad{},
		&reunion.Reunion{},
		&actividad.Actividad{},
		&nota.Nota{},
		&auth.RefreshToken{},
	); err != nil {
		logrus.WithError(err).Fatal("error en AutoMigrate")
	}

	if err := workspace.Seed(database); err != nil {
		logrus.WithError(err).Fatal("error al sembrar workspaces")
	}

	// Handlers
	equipoHandler := equipo.NewHandler(database)
	cuentaHandler := cuenta.NewHandler(database)
	oportunidadHandler := oportunidad.NewHandler(database)
	reunionHandler := reunion.NewHandler(database)
	actividadHandler := actividad.NewHandler(database)
	metricasHandler := metricas.NewHandler(database)
	notaHandler := nota.NewHandler(database)
	workspaceHandler := workspace.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rutas públicas
	r.HandleFunc("/auth/login", equipoHandler.Login).Methods("POST")
	r.HandleFunc("/auth/refresh", auth.RefreshHTTPHandler(database)).Methods("POST")
	r.HandleFunc("/auth/logout", auth.LogoutHTTPHandler(database)).Methods("POST")
	r.HandleFunc("/workspaces/{id}", workspaceHandler.BuscarPorID).Methods("GET")

	// Rutas protegidas: JWT + resolución de workspace
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacion)
	api.Use(workspace.Middleware)

	// Equipo
	api.HandleFunc("/equipo", equipoHandler.Listar).Methods("GET")
	api.HandleFunc("/equipo/{id}", equipoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/equipo/{id}", equipoHandler.Actualizar).Methods("PUT")
	api.Handle("/equipo", auth.RequireAdmin(http.HandlerFunc(equipoHandler.Crear))).Methods("POST")
	api.Handle("/equipo/{id}", auth.RequireAdmin(http.HandlerFunc(equipoHandler.Eliminar))).Methods("DELETE")
	api.Handle("/equipo/{id}/reset-password", auth.RequireAdmin(http.HandlerFunc(equipoHandler.ResetPassword))).Methods("POST")

	// Cuentas
	api.HandleFunc("/cuentas", cuentaHandler.Crear).Methods("POST")
	api.HandleFunc("/cuentas", cuentaHandler.Listar).Methods("GET")
	api.HandleFunc("/cuentas/{id}", cuentaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/cuentas/{id}", cuentaHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/cuentas/{id}", cuentaHandler.Eliminar).Methods("DELETE")
	api.HandleFunc("/cuentas/{id}/promover", cuentaHandler.Promover).Methods("POST")

	// Oportunidades
	api.HandleFunc("/oportunidades", oportunidadHandler.Crear).Methods("POST")
	api.HandleFunc("/oportunidades", oportunidadHandler.Listar).Methods("GET")
	api.HandleFunc("/oportunidades/{id}", oportunidadHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/oportunidades/{id}", oportunidadHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/oportunidades/{id}", oportunidadHandler.Eliminar).Methods("DELETE")
	api.HandleFunc("/oportunidades/{id}/etapa", oportunidadHandler.CambiarEtapa).Methods("PATCH")
	api.HandleFunc("/oportunidades/{id}/accion/completar", oportunidadHandler.CompletarAccion).Methods("POST")

	// Notas
	api.HandleFunc("/oportunidades/{id}/notas", notaHandler.Crear).Methods("POST")
	api.HandleFunc("/oportunidades/{id}/notas", notaHandler.ListarPorOportunidad).Methods("GET")
	api.HandleFunc("/notas/{id}", notaHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/notas/{id}", notaHandler.Eliminar).Methods("DELETE")

	// Reuniones
	api.HandleFunc("/reuniones", reunionHandler.Crear).Methods("POST")
	api.HandleFunc("/reuniones", reunionHandler.Listar).Methods("GET")
	api.HandleFunc("/reuniones/{id}", reunionHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/reuniones/{id}", reunionHandler.Actualizar).Methods("PUT")
	api.HandleFunc("/reuniones/{id}", reunionHandler.Eliminar).Methods("DELETE")

	// Actividades
	api.HandleFunc("/actividades", actividadHandler.Crear).Methods("POST")
	api.HandleFunc("/actividades", actividadHandler.Listar).Methods("GET")
	api.HandleFunc("/actividades/export", actividadHandler.Exportar).Methods("GET")

	// Métricas
	api.HandleFunc("/metricas/resumen", metricasHandler.Resumen).Methods("GET")
	api.HandleFunc("/metricas/funnel", metricasHandler.Funnel).Methods("GET")
	api.HandleFunc("/metricas/semanal", metricasHandler.Semanal).Methods("GET")

	// CORS para el front
	origins := []string{"http://localhost:3000"}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", workspace.Header},
		AllowCredentials: true,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.WithField("port", port).Info("servidor escuchando")
	logrus.Fatal(http.ListenAndServe(":"+port, c.Handler(r)))
}
