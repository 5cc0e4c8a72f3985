package website

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"log/slog"
	"path/filepath"

	"filmlog/internal/fileutil"
	"filmlog/internal/library"
	"filmlog/internal/logging"
)

//go:embed index.html.tmpl
var indexTemplate string

//go:embed style.css
var stylesheet string

var pageTemplate = template.Must(template.New("index").Parse(indexTemplate))

// Generator writes the static site for a collection snapshot.
type Generator struct {
	outputDir string
	title     string
	logger    *slog.Logger
}

// NewGenerator constructs a site generator. An empty title falls back to
// "My Movie Collection".
func NewGenerator(outputDir, title string, logger *slog.Logger) *Generator {
	if title == "" {
		title = "My Movie Collection"
	}
	return &Generator{
		outputDir: outputDir,
		title:     title,
		logger:    logging.NewComponentLogger(logger, "website"),
	}
}

type pageData struct {
	Title  string
	Movies []library.Movie
}

// Generate renders index.html and style.css into the output directory and
// returns the path of the generated page. Both files are written atomically.
func (g *Generator) Generate(movies []library.Movie) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{Title: g.title, Movies: movies}); err != nil {
		return "", fmt.Errorf("render site template: %w", err)
	}

	indexPath := filepath.Join(g.outputDir, "index.html")
	if err := fileutil.WriteFileAtomic(indexPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write index.html: %w", err)
	}
	stylePath := filepath.Join(g.outputDir, "style.css")
	if err := fileutil.WriteFileAtomic(stylePath, []byte(stylesheet), 0o644); err != nil {
		return "", fmt.Errorf("write style.css: %w", err)
	}

	g.logger.Debug("generated website",
		logging.Int("movie_count", len(movies)),
		logging.String("path", indexPath))
	return indexPath, nil
}
