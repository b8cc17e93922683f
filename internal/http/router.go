package http

import (
	"net/http"
	"strings"
	"time"

	"freelancehub/internal/domain/user"
	"freelancehub/internal/http/handlers"
	"freelancehub/internal/http/metrics"
	httpmw "freelancehub/internal/http/middleware"
)

type RouterDependencies struct {
	JobHandler         *handlers.JobHandler
	ApplicationHandler *handlers.ApplicationHandler
	ContractHandler    *handlers.ContractHandler
	SubmissionHandler  *handlers.SubmissionHandler
	InquiryHandler     *handlers.InquiryHandler
	DashboardHandler   *handlers.DashboardHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Metrics            *metrics.Collector
	RequestTimeout     time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/healthz":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			metrics.NewHandler(r.deps.Metrics).ServeHTTP(w, req)
			return
		}

		if strings.HasPrefix(path, "/api/") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(r.handleProtected))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodPost && path == "/api/jobs":
		httpmw.RequireRole(user.RoleClient)(http.HandlerFunc(r.deps.JobHandler.Create)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && path == "/api/jobs":
		r.deps.JobHandler.Browse(w, req)
	case req.Method == http.MethodGet && path == "/api/jobs/mine":
		httpmw.RequireRole(user.RoleClient)(http.HandlerFunc(r.deps.JobHandler.ListMine)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/jobs/") && strings.HasSuffix(path, "/applications"):
		httpmw.RequireRole(user.RoleClient)(http.HandlerFunc(r.deps.ApplicationHandler.ListByJob)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/jobs/"):
		r.deps.JobHandler.Get(w, req)

	case req.Method == http.MethodPost && path == "/api/applications":
		httpmw.RequireRole(user.RoleFreelancer)(http.HandlerFunc(r.deps.ApplicationHandler.Apply)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && path == "/api/applications":
		r.deps.ApplicationHandler.List(w, req)
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/applications/") && strings.HasSuffix(path, "/accept"):
		httpmw.RequireRole(user.RoleClient)(http.HandlerFunc(r.deps.ApplicationHandler.Accept)).ServeHTTP(w, req)
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/applications/") && strings.HasSuffix(path, "/reject"):
		httpmw.RequireRole(user.RoleClient)(http.HandlerFunc(r.deps.ApplicationHandler.Reject)).ServeHTTP(w, req)

	case req.Method == http.MethodGet && path == "/api/contracts":
		r.deps.ContractHandler.List(w, req)
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/contracts/") && strings.HasSuffix(path, "/submissions"):
		httpmw.RequireRole(user.RoleFreelancer)(http.HandlerFunc(r.deps.SubmissionHandler.Submit)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/contracts/") && strings.HasSuffix(path, "/submissions"):
		r.deps.SubmissionHandler.ListByContract(w, req)
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/contracts/") && strings.HasSuffix(path, "/payments"):
		httpmw.RequireRole(user.RoleClient)(http.HandlerFunc(r.deps.ContractHandler.InitiatePayment)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/contracts/") && strings.HasSuffix(path, "/payments"):
		r.deps.ContractHandler.ListPayments(w, req)
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/contracts/") && strings.HasSuffix(path, "/complete"):
		httpmw.RequireRole(user.RoleClient)(http.HandlerFunc(r.deps.ContractHandler.Complete)).ServeHTTP(w, req)
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/contracts/") && strings.HasSuffix(path, "/terminate"):
		httpmw.RequireRole(user.RoleClient)(http.HandlerFunc(r.deps.ContractHandler.Terminate)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/contracts/"):
		r.deps.ContractHandler.Get(w, req)

	case req.Method == http.MethodGet && path == "/api/submissions":
		httpmw.RequireRole(user.RoleClient)(http.HandlerFunc(r.deps.SubmissionHandler.List)).ServeHTTP(w, req)
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/submissions/") && strings.HasSuffix(path, "/accept"):
		httpmw.RequireRole(user.RoleClient)(http.HandlerFunc(r.deps.SubmissionHandler.Accept)).ServeHTTP(w, req)
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/submissions/") && strings.HasSuffix(path, "/request-changes"):
		httpmw.RequireRole(user.RoleClient)(http.HandlerFunc(r.deps.SubmissionHandler.RequestChanges)).ServeHTTP(w, req)

	case req.Method == http.MethodPost && path == "/api/inquiries":
		httpmw.RequireRole(user.RoleClient)(http.HandlerFunc(r.deps.InquiryHandler.Create)).ServeHTTP(w, req)
	case req.Method == http.MethodGet && path == "/api/inquiries":
		r.deps.InquiryHandler.List(w, req)
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/inquiries/") && strings.HasSuffix(path, "/accept"):
		httpmw.RequireRole(user.RoleFreelancer)(http.HandlerFunc(r.deps.InquiryHandler.Accept)).ServeHTTP(w, req)
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/inquiries/") && strings.HasSuffix(path, "/reject"):
		httpmw.RequireRole(user.RoleFreelancer)(http.HandlerFunc(r.deps.InquiryHandler.Reject)).ServeHTTP(w, req)

	case req.Method == http.MethodGet && path == "/api/dashboard":
		r.deps.DashboardHandler.Get(w, req)
	case req.Method == http.MethodGet && path == "/api/activity":
		httpmw.RequireRole(user.RoleAdmin)(http.HandlerFunc(r.deps.DashboardHandler.Feed)).ServeHTTP(w, req)
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/notifications/") && strings.HasSuffix(path, "/dismiss"):
		r.deps.DashboardHandler.Dismiss(w, req)

	default:
		http.NotFound(w, req)
	}
}
