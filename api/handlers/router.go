package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aria-lang/centerstar-go/api/middleware"
	"github.com/aria-lang/centerstar-go/pkg/centerstar"
)

// RequestTimeout bounds the time spent on one request. Alignment work is
// abandoned between pairwise alignments once it expires.
const RequestTimeout = 60 * time.Second

// NewRouter returns the API with its global middleware. Requests that do
// not override scoring, tie-break or type use defaults.
func NewRouter(defaults centerstar.Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(RequestTimeout))

	Routes(r, defaults)
	r.Get("/", homeHandler)

	return r
}

// Routes mounts the API under r.
func Routes(r chi.Router, defaults centerstar.Options) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		// Multiple alignment endpoints
		r.Route("/msa", func(r chi.Router) {
			r.Post("/", MSAHandler(defaults))
			r.Post("/fasta", MSAFastaHandler(defaults))
			r.Post("/image", MSAImageHandler(defaults))
		})

		// Pairwise endpoints
		r.Route("/pairwise", func(r chi.Router) {
			r.Post("/", PairwiseHandler(defaults))
			r.Post("/score", AlignmentScoreHandler(defaults))
		})

		// Sequence endpoints
		r.Route("/sequence", func(r chi.Router) {
			r.Post("/detect", DetectHandler)
			r.Post("/validate", ValidateHandler)
			r.Post("/stats", SequenceSetStatsHandler)
		})
	})
}

func homeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>Center-Star API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>Center-Star API</h1>
    <p>Multiple sequence alignment with the center-star method.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/msa</code>
        <p>Align three or more sequences around the center sequence.</p>
        <pre>{"sequences": [{"id": "a", "sequence": "ACGT"}, {"id": "b", "sequence": "AGGT"}, {"id": "c", "sequence": "ACCT"}], "type": "dna"}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/msa/fasta</code>
        <p>Same request, aligned FASTA response. Input may also be FASTA text.</p>
        <pre>{"fasta": ">a\nACGT\n>b\nACT\n", "type": "dna", "gap": -3}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/msa/image</code>
        <p>Same request, PNG block view response.</p>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/pairwise</code>
        <p>Needleman-Wunsch alignment of two sequences with co-optimal paths.</p>
        <pre>{"sequence1": "GATTACA", "sequence2": "GCATGCT", "type": "dna", "paths": 3}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/sequence/detect</code>
        <p>Detect whether sequences are DNA, RNA or protein.</p>
        <pre>{"sequences": ["ACGU", "AGGU"]}</pre>
    </div>
</body>
</html>`))
}
