package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"llmboard/internal/catalog"
	"llmboard/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	List(term, field, order string) (types.ModelsResponse, error)
	Detail(id string) (types.ModelDetail, error)
	Cost(id string, inputTokens, outputTokens float64) (types.CostEstimate, error)
	RedTeaming() (types.RedTeamingResponse, error)
	Page(slug string) (types.PageResponse, error)
	SubmitLead(ctx context.Context, req types.LeadRequest) (types.LeadResponse, error)
	Sitemap() ([]byte, error)
	Robots() ([]byte, error)
	Status() types.StatusResponse
	Ready() bool
}

// defaultCostTokens is used when the cost query omits a token count.
const defaultCostTokens = 1_000_000

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(requestLogger)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}
	// Compression for JSON and XML responses
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/models", listModels(svc))
		r.Get("/models/{id}", modelDetail(svc))
		r.Get("/models/{id}/cost", modelCost(svc))
		r.Get("/red-teaming", redTeaming(svc))
		r.Get("/pages/{slug}", page(svc))
		r.Post("/leads", submitLead(svc))
	})

	r.Get("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.Sitemap()
		if err != nil {
			writeServiceError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = w.Write(b)
	})

	r.Get("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.Robots()
		if err != nil {
			writeServiceError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write(b)
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Status())
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// listModels godoc
//
//	@Summary	Leaderboard table
//	@Description	Filters by a case-insensitive search term, then sorts. Unknown values always sort last.
//	@Tags		models
//	@Produce	json
//	@Param		q		query		string	false	"search term (name, developer, license, knowledge cutoff)"
//	@Param		sort	query		string	false	"sort field"	default(operationalRank)
//	@Param		order	query		string	false	"asc or desc"	default(asc)
//	@Success	200		{object}	types.ModelsResponse
//	@Failure	400		{object}	types.ErrorResponse
//	@Router		/api/models [get]
func listModels(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		resp, err := svc.List(q.Get("q"), q.Get("sort"), q.Get("order"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// modelDetail godoc
//
//	@Summary	Model detail
//	@Tags		models
//	@Produce	json
//	@Param		id	path		string	true	"model id"
//	@Success	200	{object}	types.ModelDetail
//	@Failure	404	{object}	types.ErrorResponse
//	@Router		/api/models/{id} [get]
func modelDetail(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.Detail(chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

// modelCost godoc
//
//	@Summary	Cost estimate
//	@Tags		models
//	@Produce	json
//	@Param		id				path		string	true	"model id"
//	@Param		input_tokens	query		number	false	"input tokens"	default(1000000)
//	@Param		output_tokens	query		number	false	"output tokens"	default(1000000)
//	@Success	200				{object}	types.CostEstimate
//	@Failure	400				{object}	types.ErrorResponse
//	@Failure	404				{object}	types.ErrorResponse
//	@Router		/api/models/{id}/cost [get]
func modelCost(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := tokensParam(r, "input_tokens")
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		out, err := tokensParam(r, "output_tokens")
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		est, err := svc.Cost(chi.URLParam(r, "id"), in, out)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, est)
	}
}

func tokensParam(r *http.Request, name string) (float64, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return defaultCostTokens, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.New(name + " must be a number")
	}
	return n, nil
}

// redTeaming godoc
//
//	@Summary	Red-teaming showcase
//	@Tags		safety
//	@Produce	json
//	@Success	200	{object}	types.RedTeamingResponse
//	@Router		/api/red-teaming [get]
func redTeaming(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := svc.RedTeaming()
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// page godoc
//
//	@Summary	Content page
//	@Tags		content
//	@Produce	json
//	@Param		slug	path		string	true	"page slug"
//	@Success	200		{object}	types.PageResponse
//	@Failure	404		{object}	types.ErrorResponse
//	@Router		/api/pages/{slug} [get]
func page(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Page(chi.URLParam(r, "slug"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// submitLead godoc
//
//	@Summary	Request a model evaluation
//	@Tags		leads
//	@Accept		json
//	@Produce	json
//	@Param		lead	body		types.LeadRequest	true	"contact details"
//	@Success	202		{object}	types.LeadResponse
//	@Failure	400		{object}	types.ErrorResponse
//	@Failure	415		{object}	types.ErrorResponse
//	@Router		/api/leads [post]
func submitLead(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Content-Type check
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			IncrementRejected("content_type")
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		// Limit body size (configurable)
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.LeadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			// Oversized bodies surface here too; report them as a plain bad request.
			IncrementRejected("body")
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		ctx, cancel := requestContext(r)
		defer cancel()
		resp, err := svc.SubmitLead(ctx, req)
		if err != nil {
			if aborted(r) {
				return
			}
			IncrementRejected("submit")
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusAccepted, resp)
	}
}

// writeServiceError maps service errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	if catalog.IsModelNotFound(err) {
		writeJSONError(w, http.StatusNotFound, err.Error())
		return
	}
	if catalog.IsNotReady(err) {
		writeJSONError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	var he HTTPError
	if errors.As(err, &he) {
		writeJSONError(w, he.StatusCode(), he.Error())
		return
	}
	logError(err)
	writeJSONError(w, http.StatusInternalServerError, "internal error")
}
