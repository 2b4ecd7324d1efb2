// Package server serves the dashboard over HTTP and pushes new views to
// connected browsers over a websocket.
package server

import (
	"bytes"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Zachdehooge/wildfire-dashboard/internal/dashboard"
	"github.com/Zachdehooge/wildfire-dashboard/internal/generator"
)

const writeTimeout = 5 * time.Second

// ViewSource provides the current view and notifies on changes.
// *dashboard.Dashboard implements it.
type ViewSource interface {
	View() dashboard.View
	Subscribe(fn func(dashboard.View)) *dashboard.Subscription[dashboard.View]
}

// Server holds the HTTP routes and websocket clients.
type Server struct {
	views     ViewSource
	engine    *gin.Engine
	upgrader  websocket.Upgrader
	wsClients map[*websocket.Conn]bool
	wsMutex   sync.Mutex
	sub       *dashboard.Subscription[dashboard.View]
}

// New creates a Server and subscribes it to views.
func New(views ViewSource) *Server {
	s := &Server{
		views:     views,
		wsClients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	r := gin.New()
	r.Use(gin.Recovery(), Logger(), CORS())
	s.setupRoutes(r)
	s.engine = r

	s.sub = views.Subscribe(s.BroadcastView)
	return s
}

func (s *Server) setupRoutes(r *gin.Engine) {
	r.GET("/", s.Index)
	r.GET("/health", s.Health)
	r.GET("/api/view", s.GetView)
	r.GET("/ws", s.WebSocketHandler)
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler { return s.engine }

// Health reports liveness.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Index renders the dashboard page wired to the live websocket.
func (s *Server) Index(c *gin.Context) {
	var buf bytes.Buffer
	if err := generator.RenderHTML(&buf, s.views.View(), generator.PageOptions{LiveURL: "/ws"}); err != nil {
		log.Printf("[server] render error: %v", err)
		c.String(http.StatusInternalServerError, "failed to render dashboard")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// GetView returns the current view as JSON.
func (s *Server) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, s.views.View())
}

// WebSocketHandler sends the current view on connect and every later view
// until the client disconnects.
func (s *Server) WebSocketHandler(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[ws] upgrade error: %v", err)
		return
	}

	s.wsMutex.Lock()
	s.wsClients[conn] = true
	n := len(s.wsClients)
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	err = conn.WriteJSON(s.views.View())
	s.wsMutex.Unlock()
	log.Printf("[ws] client connected, total: %d", n)

	defer s.drop(conn)
	if err != nil {
		log.Printf("[ws] initial write error: %v", err)
		return
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// BroadcastView sends v to every connected client, dropping clients whose
// write fails.
func (s *Server) BroadcastView(v dashboard.View) {
	msg, err := generator.MarshalView(v)
	if err != nil {
		log.Printf("[ws] %v", err)
		return
	}

	s.wsMutex.Lock()
	defer s.wsMutex.Unlock()
	for client := range s.wsClients {
		client.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := client.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Printf("[ws] write error: %v", err)
			delete(s.wsClients, client)
			client.Close()
		}
	}
}

func (s *Server) drop(conn *websocket.Conn) {
	s.wsMutex.Lock()
	delete(s.wsClients, conn)
	n := len(s.wsClients)
	s.wsMutex.Unlock()
	conn.Close()
	log.Printf("[ws] client disconnected, total: %d", n)
}

// Close stops broadcasting and disconnects every client.
func (s *Server) Close() {
	s.sub.Close()

	s.wsMutex.Lock()
	defer s.wsMutex.Unlock()
	for client := range s.wsClients {
		client.Close()
		delete(s.wsClients, client)
	}
}
