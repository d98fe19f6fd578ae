package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	indexFileName  = "index.html"
	filenameHeader = "Gotenberg-Output-Filename"
)

var errMissingIndex = errors.New("no form file found for extensions: [.html] and filename index.html")

type moduleHealth struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}

type healthResponse struct {
	Status  string                  `json:"status"`
	Details map[string]moduleHealth `json:"details"`
}

func (s *Server) health(c *gin.Context) {
	chromium := moduleHealth{Status: "up", Timestamp: time.Now().UTC()}
	status, code := "up", http.StatusOK

	if err := s.renderer.Ping(c.Request.Context()); err != nil {
		chromium.Status, chromium.Error = "down", err.Error()
		status, code = "down", http.StatusServiceUnavailable
	}

	c.JSON(code, healthResponse{
		Status:  status,
		Details: map[string]moduleHealth{"chromium": chromium},
	})
}

func (s *Server) convertHTML(c *gin.Context) {
	log := s.log.With(zap.String("trace", traceOf(c)))

	form, err := c.MultipartForm()
	if err != nil {
		s.reject(c, fmt.Sprintf("Invalid form data: %v", err))
		return
	}

	html, err := readIndex(form)
	if err != nil {
		s.reject(c, fmt.Sprintf("Invalid form data: %v", err))
		return
	}

	ps, err := pageSettingsFromForm(form.Value)
	if err != nil {
		s.reject(c, fmt.Sprintf("Invalid form data: %v", err))
		return
	}

	pdf, err := s.renderer.Render(c.Request.Context(), html, ps)
	if err != nil {
		s.metrics.conversion("error")
		log.Error("convert html to pdf", zap.Error(err))
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	s.metrics.conversion("success")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outputFilename(c)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (s *Server) reject(c *gin.Context, msg string) {
	s.metrics.conversion("invalid")
	c.String(http.StatusBadRequest, msg)
}

// readIndex returns the content of the uploaded file named index.html,
// whatever form field carried it.
func readIndex(form *multipart.Form) (string, error) {
	for _, headers := range form.File {
		for _, h := range headers {
			if h.Filename != indexFileName {
				continue
			}
			f, err := h.Open()
			if err != nil {
				return "", fmt.Errorf("open %s: %w", indexFileName, err)
			}
			defer f.Close()

			b, err := io.ReadAll(f)
			if err != nil {
				return "", fmt.Errorf("read %s: %w", indexFileName, err)
			}
			return string(b), nil
		}
	}
	return "", errMissingIndex
}

func outputFilename(c *gin.Context) string {
	name := strings.TrimSpace(c.GetHeader(filenameHeader))
	if name == "" {
		name = traceOf(c)
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}
