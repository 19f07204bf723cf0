package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/cert-lab/ccna-prep/internal/api/http"
	"github.com/cert-lab/ccna-prep/internal/auth"
	"github.com/cert-lab/ccna-prep/internal/config"
	"github.com/cert-lab/ccna-prep/internal/db"
	"github.com/cert-lab/ccna-prep/internal/gemini"
	"github.com/cert-lab/ccna-prep/internal/lab"
	"github.com/cert-lab/ccna-prep/internal/quiz"
	"github.com/cert-lab/ccna-prep/internal/study"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// --- DB (study-guide cache) ---
	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	// --- Generation service (credential injected, never read from ambient) ---
	gen, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("generation service: %v", err)
	}

	examReg := quiz.NewRegistry(quiz.NewGenerator(gen), quiz.Options{
		DrillCount:        cfg.DrillCount,
		SimulationCount:   cfg.SimulationCount,
		SimulationSeconds: cfg.SimulationSeconds,
	})
	labReg := lab.NewRegistry()
	studySvc := study.NewService(gen, study.NewSQLGuideStore(dbh))

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, cfg.AdminUser, cfg.AdminPassHash))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.Get("/study/topics", api.ListTopicsHandler())
		pr.Get("/study/topics/{topicID}/guide", api.GuideHandler(studySvc))

		pr.Get("/labs", api.ListScenariosHandler())
		pr.Post("/labs/{scenarioID}/session", api.StartLabHandler(gen, labReg))
		pr.Get("/lab/session", api.GetLabSessionHandler(labReg))
		pr.Post("/lab/session/command", api.LabCommandHandler(labReg))
		pr.Get("/lab/session/ws", api.LabSocketHandler(labReg))

		pr.Post("/exam/session", api.NewExamSessionHandler(examReg))
		pr.Get("/exam/session", api.GetExamSessionHandler(examReg))
		pr.Post("/exam/session/start", api.StartExamHandler(examReg))
		pr.Post("/exam/session/answer", api.AnswerHandler(examReg))
		pr.Post("/exam/session/flag", api.ToggleFlagHandler(examReg))
		pr.Post("/exam/session/goto", api.GotoHandler(examReg))
		pr.Post("/exam/session/submit", api.SubmitExamHandler(examReg))
		pr.Post("/exam/session/new", api.NewAttemptHandler(examReg))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s, model=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver, cfg.GeminiModel)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
