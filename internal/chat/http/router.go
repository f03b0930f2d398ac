package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bvpstudios/verzechat/internal/chat/service"
	"github.com/bvpstudios/verzechat/internal/chat/store"
	"github.com/bvpstudios/verzechat/pkg/httpx"
	"github.com/bvpstudios/verzechat/pkg/jwtx"
	"github.com/bvpstudios/verzechat/pkg/slogx"

	_ "github.com/bvpstudios/verzechat/api/chat" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	UserService    *service.UserService
	MessageService *service.MessageService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.RecoverMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerChat()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			VerzeChat API
//	@version		0.1.0
//	@description	Minimal multi-user chat backend: account registration and login
//	@description	with bcrypt-hashed credentials, HS256 bearer-token sessions, a
//	@description	global message feed and an admin-only user deletion endpoint.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	r.Mux.Handle("POST /api/register", &RegisterHandler{UserService: r.UserService})
	r.Mux.Handle("POST /api/login", &LoginHandler{UserService: r.UserService})

	r.Mux.Handle("POST /api/change-username",
		httpx.Chain(&ChangeUsernameHandler{UserService: r.UserService},
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerChat() {
	h := &ChatHandler{MessageService: r.MessageService}

	r.Mux.Handle("POST /api/chat",
		httpx.Chain(http.HandlerFunc(h.HandlePost),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
	r.Mux.Handle("GET /api/chat", http.HandlerFunc(h.HandleList))
}

func (r *Router) registerAdmin() {
	r.Mux.Handle("DELETE /api/users/{id}",
		httpx.Chain(&DeleteUserHandler{UserService: r.UserService},
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(httpx.RoleAdmin),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
