// Command pubserver is an in-memory stand-in for the publication backend,
// meant for local development of the TUI. It serves the same six endpoints
// with the same semantics: plain-text bodies on non-2xx responses and a
// server-owned publicado flag.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var roster = []string{"Kaique", "Admin", "Larissa"}

type publication struct {
	ID             string `json:"id,omitempty"`
	Titulo         string `json:"titulo"`
	Autor          string `json:"autor"`
	DataPublicacao string `json:"dataPublicacao"`
	Texto          string `json:"texto"`
	Publicado      bool   `json:"publicado"`
}

// store keeps publications in insertion order.
type store struct {
	mu   sync.Mutex
	pubs []publication
}

func (s *store) list() []publication {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]publication, len(s.pubs))
	copy(out, s.pubs)
	return out
}

func (s *store) get(id string) (publication, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.pubs {
		if p.ID == id {
			return p, true
		}
	}
	return publication{}, false
}

func (s *store) create(p publication) publication {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	p.Publicado = computePublicado(p.DataPublicacao)
	s.pubs = append(s.pubs, p)
	return p
}

func (s *store) update(id string, p publication) (publication, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pubs {
		if s.pubs[i].ID == id {
			p.ID = id
			p.Publicado = computePublicado(p.DataPublicacao)
			s.pubs[i] = p
			return p, true
		}
	}
	return publication{}, false
}

func (s *store) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pubs {
		if s.pubs[i].ID == id {
			s.pubs = append(s.pubs[:i], s.pubs[i+1:]...)
			return true
		}
	}
	return false
}

// computePublicado marks future-dated records as unpublished. The flag is
// owned by this side; whatever the client sent is discarded.
func computePublicado(dataPublicacao string) bool {
	t, err := time.Parse("2006-01-02", dataPublicacao)
	if err != nil {
		return true
	}
	return !t.After(time.Now())
}

func validate(p publication) string {
	if strings.TrimSpace(p.Titulo) == "" {
		return "O título é obrigatório"
	}
	if !validAuthor(p.Autor) {
		return fmt.Sprintf("Autor inválido: %q", p.Autor)
	}
	if len([]rune(p.Texto)) < 10 {
		return "O texto deve ter no mínimo 10 caracteres"
	}
	return ""
}

func validAuthor(autor string) bool {
	for _, a := range roster {
		if a == autor {
			return true
		}
	}
	return false
}

func setupRouter(s *store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	api := router.Group("/api/publicacoes")
	{
		api.GET("/autores", func(c *gin.Context) {
			c.JSON(http.StatusOK, roster)
		})
		api.GET("/listar", func(c *gin.Context) {
			c.JSON(http.StatusOK, s.list())
		})
		api.GET("/buscar/:id", func(c *gin.Context) {
			p, ok := s.get(c.Param("id"))
			if !ok {
				c.String(http.StatusNotFound, "Publicação não encontrada")
				return
			}
			c.JSON(http.StatusOK, p)
		})
		api.POST("/postar", func(c *gin.Context) {
			var p publication
			if err := c.BindJSON(&p); err != nil {
				return
			}
			if msg := validate(p); msg != "" {
				c.String(http.StatusBadRequest, msg)
				return
			}
			c.JSON(http.StatusCreated, s.create(p))
		})
		api.PUT("/atualizar/:id", func(c *gin.Context) {
			var p publication
			if err := c.BindJSON(&p); err != nil {
				return
			}
			if msg := validate(p); msg != "" {
				c.String(http.StatusBadRequest, msg)
				return
			}
			updated, ok := s.update(c.Param("id"), p)
			if !ok {
				c.String(http.StatusNotFound, "Publicação não encontrada")
				return
			}
			c.JSON(http.StatusOK, updated)
		})
		api.DELETE("/excluir/:id", func(c *gin.Context) {
			if !s.delete(c.Param("id")) {
				c.String(http.StatusNotFound, "Publicação não encontrada")
				return
			}
			c.Status(http.StatusNoContent)
		})
	}

	return router
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	seed := flag.Bool("seed", false, "start with sample publications")
	flag.Parse()

	s := &store{}
	if *seed {
		s.create(publication{
			Titulo:         "Bem-vindo ao Pubdesk",
			Autor:          "Admin",
			DataPublicacao: time.Now().Format("2006-01-02"),
			Texto:          "Publicação de exemplo criada pelo servidor de desenvolvimento.",
		})
		s.create(publication{
			Titulo:         "Rascunho futuro",
			Autor:          "Kaique",
			DataPublicacao: time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
			Texto:          "Esta publicação tem data futura e aparece como não publicada.",
		})
	}

	router := setupRouter(s)
	log.Printf("pubserver listening on %s", *addr)
	if err := router.Run(*addr); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
