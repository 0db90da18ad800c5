package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "recicleme/docs"
	"recicleme/internal/api/admin"
	"recicleme/internal/api/chat"
	"recicleme/internal/api/coleta"
	"recicleme/internal/api/feature"
	"recicleme/internal/api/profile"
	"recicleme/internal/api/user"
	apperror "recicleme/internal/errors"
	"recicleme/internal/pkg/cache"
	"recicleme/internal/pkg/logger"
	"recicleme/internal/pkg/middleware"
)

// Handlers reúne os Handlers já inicializados por injeção de dependências.
type Handlers struct {
	User    *user.Handler
	Coleta  *coleta.Handler
	Profile *profile.Handler
	Chat    *chat.Handler
	Feature *feature.Handler
	Admin   *admin.Handler
}

// Options controla os middlewares globais.
type Options struct {
	CORSAllowedOrigin string
	RateLimitMax      int
	RateLimitPeriod   time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
// cacheClient nil desliga o rate limiting.
func NewRouter(h Handlers, tokenSvc middleware.TokenService, cacheClient cache.Client, opts Options, log logger.Logger) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, apperror.NewNotFoundError("Endpoint não encontrado."))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteError(w, apperror.NewMethodNotAllowedError("Método não permitido."))
	})

	// --- 1. Health check e documentação ---
	r.HandleFunc("/ping", PingHandler).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// --- 2. Rotas públicas (v1) ---
	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/register", h.User.RegisterUserHandler).Methods(http.MethodPost)
	v1.HandleFunc("/login", h.User.LoginUserHandler).Methods(http.MethodPost)
	v1.HandleFunc("/features", h.Feature.GetFeaturesHandler).Methods(http.MethodGet)
	v1.HandleFunc("/pontos-coleta", h.Coleta.ListPontosColetaHandler).Methods(http.MethodGet)
	v1.HandleFunc("/coletas/estimativa", h.Coleta.EstimateHandler).Methods(http.MethodPost)
	v1.HandleFunc("/chat", h.Chat.ChatHandler).Methods(http.MethodPost)

	// --- 3. Rotas autenticadas ---
	protected := v1.NewRoute().Subrouter()
	protected.Use(middleware.NewAuthMiddleware(tokenSvc))

	protected.HandleFunc("/coletas", h.Coleta.ListHandler).Methods(http.MethodGet)
	protected.HandleFunc("/coletas", h.Coleta.ScheduleHandler).Methods(http.MethodPost)
	protected.HandleFunc("/coletas/foto", h.Coleta.PresignFotoHandler).Methods(http.MethodPost)
	protected.HandleFunc("/coletas/{id}", h.Coleta.GetHandler).Methods(http.MethodGet)
	protected.HandleFunc("/coletas/{id}", h.Coleta.CancelHandler).Methods(http.MethodDelete)
	protected.HandleFunc("/coletas/{id}/concluir", h.Coleta.CompleteHandler).Methods(http.MethodPost)
	protected.HandleFunc("/perfil", h.Profile.GetProfileHandler).Methods(http.MethodGet)
	protected.HandleFunc("/perfil", h.Profile.UpdateProfileHandler).Methods(http.MethodPut)

	// Qualquer caminho sob /admin passa pela autenticação; o handler valida o
	// papel admin, o último segmento e o método, nessa ordem.
	protected.PathPrefix("/admin").HandlerFunc(h.Admin.AdminHandler)

	// --- 4. Middlewares globais ---
	// CORS fica por fora para responder o preflight antes do roteamento.
	var handler http.Handler = r
	if cacheClient != nil {
		handler = middleware.RateLimiter(cacheClient, opts.RateLimitMax, opts.RateLimitPeriod, log)(handler)
	}
	return middleware.CORS(opts.CORSAllowedOrigin)(handler)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
