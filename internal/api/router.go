package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/hireready/interview-api/internal/api/handlers"
	"github.com/hireready/interview-api/internal/api/middleware"
	"github.com/hireready/interview-api/internal/config"
	"github.com/hireready/interview-api/internal/content"
	"github.com/hireready/interview-api/internal/interview"
	"github.com/hireready/interview-api/internal/llm"
	"github.com/hireready/interview-api/internal/queue"
)

// Deps carries the services the router exposes over HTTP.
type Deps struct {
	DB           *pgxpool.Pool
	Redis        *redis.Client
	Config       *config.Config
	Assistant    *content.Assistant
	Gateway      llm.Gateway
	InterviewSvc *interview.Service
	QueueClient  *queue.Client
}

type Router struct {
	mux  *chi.Mux
	deps Deps
}

func NewRouter(deps Deps) *Router {
	return &Router{mux: chi.NewRouter(), deps: deps}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux
	cfg := rt.deps.Config

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	rl := middleware.NewRateLimiter(float64(cfg.Server.RateLimitRPS), cfg.Server.RateLimitBurst)
	r.Use(rl.Limit)

	health := handlers.NewHealthHandler(rt.deps.DB, rt.deps.Redis)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	device := cfg.LLM.DefaultProvider + "/" + cfg.LLM.DefaultModel

	contentH := handlers.NewContentHandler(rt.deps.Assistant, rt.deps.Gateway, device)
	docH := handlers.NewDocumentHandler(rt.deps.QueueClient, cfg.Content.SpoolDir)
	r.Route("/api", func(r chi.Router) {
		r.Get("/companies", contentH.Companies)
		r.Get("/roles/{company}", contentH.Roles)
		r.Post("/content", contentH.Content)
		r.Post("/chat", contentH.Chat)
		r.Get("/status", contentH.Status)
		r.Post("/documents", docH.Upload)
	})

	interviewH := handlers.NewInterviewHandler(rt.deps.InterviewSvc)
	r.Route("/interview", func(r chi.Router) {
		r.Post("/start_interview", interviewH.Start)
		r.Post("/submit_answer", interviewH.SubmitAnswer)
		r.Post("/get_single_feedback", interviewH.Feedback)
		r.Post("/reset_interview", interviewH.Reset)
	})

	return r
}
