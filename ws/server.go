package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/coder/websocket"
	"github.com/pkg/errors"

	"ebiten-caves/config"
	"ebiten-caves/generation"
	"ebiten-caves/protocol"
)

// ErrUnknownRequest is returned for envelopes with an unrecognised type
var ErrUnknownRequest = errors.New("unknown request type")

// Server generates caves on request and streams snapshots to every client.
// All generation happens under mu, so one generator serves every connection.
type Server struct {
	mu      sync.Mutex
	gen     *generation.CaveGenerator
	current []byte // Encoded snapshot of the latest cave
	hub     *Hub
}

// NewServer creates a server and generates the first cave from cfg
func NewServer(cfg config.CaveConfig) (*Server, error) {
	gen, err := generation.NewCaveGenerator(cfg)
	if err != nil {
		return nil, err
	}
	s := &Server{gen: gen, hub: NewHub()}
	if _, err := s.generate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Hub returns the server's client hub
func (s *Server) Hub() *Hub {
	return s.hub
}

// Current returns the encoded snapshot of the latest cave
func (s *Server) Current() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// generate runs the generator and caches the encoded snapshot. Callers hold mu
// or own the server exclusively.
func (s *Server) generate() ([]byte, error) {
	cave, err := s.gen.Generate()
	if err != nil {
		return nil, err
	}
	data, err := protocol.Encode(protocol.TypeSnapshot, protocol.NewCaveSnapshot(cave))
	if err != nil {
		return nil, errors.Wrap(err, "encode snapshot")
	}
	s.current = data
	return data, nil
}

// HandleMessage applies one client request. On success the new snapshot is
// returned for broadcast; on failure the error is returned and the current
// cave is left untouched.
func (s *Server) HandleMessage(data []byte) ([]byte, error) {
	var env protocol.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "decode envelope")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch env.Type {
	case protocol.TypeRegenerate:
		var req protocol.RequestRegenerate
		if len(env.Payload) > 0 {
			if err := json.Unmarshal(env.Payload, &req); err != nil {
				return nil, errors.Wrap(err, "decode regenerate")
			}
		}
		if req.Seed == "" {
			s.gen.UseRandomSeed()
		} else {
			s.gen.SetSeed(req.Seed)
		}
		return s.generate()

	case protocol.TypeSet:
		var req protocol.RequestSet
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return nil, errors.Wrap(err, "decode set")
		}
		cfg := s.gen.Config()
		if err := config.SetField(&cfg, req.Field, req.Value); err != nil {
			return nil, err
		}
		gen, err := generation.NewCaveGenerator(cfg)
		if err != nil {
			return nil, err
		}
		// Tuning a parameter replays the current seed so the effect is visible
		if cfg.UseRandomSeed && !strings.EqualFold(req.Field, "useRandomSeed") {
			gen.SetSeed(s.gen.Seed())
		}
		prev := s.gen
		s.gen = gen
		out, err := s.generate()
		if err != nil {
			s.gen = prev
			return nil, err
		}
		return out, nil
	}

	return nil, errors.Wrapf(ErrUnknownRequest, "%q", env.Type)
}

// ServeStream upgrades the request to a websocket, sends the current cave and
// then serves requests until the client goes away
func (s *Server) ServeStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Printf("websocket accept failed: %v", err)
		return
	}
	s.hub.Add(conn)
	defer s.hub.Remove(conn)
	defer conn.Close(websocket.StatusNormalClosure, "")

	if err := Send(conn, s.Current()); err != nil {
		return
	}

	for {
		_, data, err := conn.Read(context.Background())
		if err != nil {
			return
		}
		snapshot, err := s.HandleMessage(data)
		if err != nil {
			log.Printf("Rejected request: %v", err)
			reply, encErr := protocol.Encode(protocol.TypeError, protocol.ErrorMessage{Message: err.Error()})
			if encErr == nil {
				_ = Send(conn, reply)
			}
			continue
		}
		s.hub.Broadcast(snapshot)
	}
}

// Handler returns the HTTP routes: the viewer page at / and the stream at /stream
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/stream", s.ServeStream)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(indexPage))
	})
	return mux
}

// ListenAndServe serves the handler on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	log.Printf("Serving caves on http://%s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
