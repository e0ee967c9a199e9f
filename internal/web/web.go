// Package web serves the glosser as a JSON REST API.
//
// Endpoints:
//
//	POST /daide2gloss   body: {"daidetext":"FRM (ENG) (FRA) (...)","tones":["Haughty"]}
//	GET  /random?tones=Haughty,Urgent
//	POST /parse         body: {"daidetext":"..."}
//	GET  /healthz
package web

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"

	"github.com/daide-tools/pressgloss"
)

// maxBody bounds request bodies.
const maxBody = 1 << 20

// ---- request schemas ----------------------------------------------------

const translateSchemaJSON = `{
  "type": "object",
  "required": ["daidetext"],
  "properties": {
    "daidetext": {"type": "string", "maxLength": 65536},
    "tones": {"type": "array", "items": {"type": "string"}}
  }
}`

const parseSchemaJSON = `{
  "type": "object",
  "required": ["daidetext"],
  "properties": {
    "daidetext": {"type": "string", "minLength": 1, "maxLength": 65536}
  }
}`

var (
	translateSchema = jsonschema.MustCompileString("translate.schema.json", translateSchemaJSON)
	parseSchema     = jsonschema.MustCompileString("parse.schema.json", parseSchemaJSON)
)

// ---- JSON types -----------------------------------------------------------

type translateRequest struct {
	DaideText string   `json:"daidetext"`
	Tones     []string `json:"tones"`
}

type translateResponse struct {
	Gloss string `json:"gloss"`
}

type randomResponse struct {
	Daide string `json:"daide"`
	Gloss string `json:"gloss"`
}

type nodeJSON struct {
	Operator string     `json:"operator"`
	Daide    string     `json:"daide"`
	Children []nodeJSON `json:"children,omitempty"`
}

type parseResponse struct {
	Sender     string   `json:"sender"`
	Recipients []string `json:"recipients"`
	Daide      string   `json:"daide"`
	Operators  []string `json:"operators"`
	Content    nodeJSON `json:"content"`
}

type healthResponse struct {
	Status string `json:"status"`
	Powers int    `json:"powers"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toNodeJSON(a pressgloss.Arrangement) nodeJSON {
	n := nodeJSON{Operator: string(a.Operator()), Daide: pressgloss.ToDAIDE(a)}
	for _, c := range a.Children() {
		n.Children = append(n.Children, toNodeJSON(c))
	}
	return n
}

func toTones(names []string) []pressgloss.Tone {
	out := make([]pressgloss.Tone, 0, len(names))
	for _, n := range names {
		out = append(out, pressgloss.Tone(n))
	}
	return out
}

func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, log *zap.Logger, status int, msg string) {
	writeJSON(w, log, status, errorResponse{Error: msg})
}

// decodeBody validates the request body against schema and decodes it
// into v. The returned message is fit for the client.
func decodeBody(r *http.Request, schema *jsonschema.Schema, v any) (string, bool) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		return "cannot read request body", false
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return "body must be JSON", false
	}
	if err := schema.Validate(doc); err != nil {
		return "invalid request: " + err.Error(), false
	}
	if err := json.Unmarshal(data, v); err != nil {
		return "body must be JSON", false
	}
	return "", true
}

// ---- handlers -----------------------------------------------------------

func handleTranslate(g *pressgloss.Glosser, defaults []pressgloss.Tone, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, log, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body translateRequest
		if msg, ok := decodeBody(r, translateSchema, &body); !ok {
			writeError(w, log, http.StatusBadRequest, msg)
			return
		}
		tones := defaults
		if body.Tones != nil {
			tones = toTones(body.Tones)
		}
		writeJSON(w, log, http.StatusOK, translateResponse{Gloss: g.Translate(body.DaideText, tones)})
	}
}

func handleRandom(g *pressgloss.Glosser, defaults []pressgloss.Tone, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, log, http.StatusMethodNotAllowed, "GET required")
			return
		}
		tones := defaults
		if q := r.URL.Query().Get("tones"); q != "" {
			tones = pressgloss.ParseTones(q)
		}
		daide, gloss := g.RandomUtterance(tones)
		writeJSON(w, log, http.StatusOK, randomResponse{Daide: daide, Gloss: gloss})
	}
}

func handleParse(g *pressgloss.Glosser, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, log, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body translateRequest
		if msg, ok := decodeBody(r, parseSchema, &body); !ok {
			writeError(w, log, http.StatusBadRequest, msg)
			return
		}
		u := g.Parse(body.DaideText)
		if u == nil {
			writeError(w, log, http.StatusUnprocessableEntity, "not of the form FRM (sender) (recipients) (content)")
			return
		}
		resp := parseResponse{
			Sender:  string(u.Sender),
			Daide:   u.DAIDE(),
			Content: toNodeJSON(u.Content),
		}
		for _, p := range u.Recipients {
			resp.Recipients = append(resp.Recipients, string(p))
		}
		for _, op := range u.Operators() {
			resp.Operators = append(resp.Operators, string(op))
		}
		writeJSON(w, log, http.StatusOK, resp)
	}
}

func handleHealth(g *pressgloss.Glosser, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log, http.StatusOK, healthResponse{Status: "ok", Powers: len(g.RefData().Powers())})
	}
}

// withRequestID tags every request with an id, echoed in X-Request-Id, and
// logs it on completion.
func withRequestID(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Debug("request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)))
	})
}

// ---- handler ------------------------------------------------------------

// Options configures the handler.
type Options struct {
	// Tones apply when a request names none.
	Tones []pressgloss.Tone
	// AllowedOrigins for CORS; empty allows all.
	AllowedOrigins []string
	Logger         *zap.Logger
}

// NewHandler returns the API handler for g.
func NewHandler(g *pressgloss.Glosser, opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/daide2gloss", handleTranslate(g, opts.Tones, log))
	mux.HandleFunc("/random", handleRandom(g, opts.Tones, log))
	mux.HandleFunc("/parse", handleParse(g, log))
	mux.HandleFunc("/healthz", handleHealth(g, log))

	c := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
	})
	return withRequestID(log, c.Handler(mux))
}
