package processor

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/birdmanoutman/ppTranslator/internal/pptx"
	"github.com/birdmanoutman/ppTranslator/internal/slide"
	"github.com/birdmanoutman/ppTranslator/internal/translate"
	"github.com/birdmanoutman/ppTranslator/internal/xmltree"
)

// Config wires the orchestrator's collaborators.
type Config struct {
	Backend translate.Backend
	From    language.Tag
	To      language.Tag
	// Progress, when set, is called after each slide completes with
	// the number of finished slides and the total.
	Progress func(done, total int)
	Logger   *slog.Logger
}

// Processor converts whole pptx files.
type Processor struct {
	engine   *slide.Engine
	progress func(done, total int)
	logger   *slog.Logger
}

// New creates a Processor from the given configuration.
func New(cfg Config) *Processor {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	batcher := translate.NewBatcher(cfg.Backend, logger)
	return &Processor{
		engine:   slide.NewEngine(batcher.Bind(cfg.From, cfg.To), logger),
		progress: cfg.Progress,
		logger:   logger,
	}
}

// TranslateFile translates every slide of the archive at inputPath and
// writes the result to outputPath. An empty outputPath defaults to
// "<input>_translated.pptx" next to the input. The written path is
// returned. A structural failure in any slide aborts the conversion;
// nothing is written and any partial output is removed.
func (p *Processor) TranslateFile(ctx context.Context, inputPath, outputPath string) (string, error) {
	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath)
	}

	pkg, err := pptx.Open(inputPath)
	if err != nil {
		return "", err
	}

	if err := p.translatePackage(ctx, pkg); err != nil {
		return "", err
	}

	if err := pkg.Save(outputPath); err != nil {
		os.Remove(outputPath)
		return "", err
	}
	return outputPath, nil
}

// translatePackage transforms each slide body in ascending slide-index
// order so progress reporting is deterministic.
func (p *Processor) translatePackage(ctx context.Context, pkg *pptx.Package) error {
	names := pkg.SlideNames()
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, ok := pkg.File(name)
		if !ok {
			return fmt.Errorf("slide %s: missing archive entry", name)
		}

		root, err := xmltree.Parse(bytes.NewReader(data), slide.Namespaces)
		if err != nil {
			return fmt.Errorf("slide %s: %w", name, err)
		}

		p.logger.Info("translating slide", "slide", name)
		if err := p.engine.Translate(ctx, root); err != nil {
			return fmt.Errorf("slide %s: %w", name, err)
		}

		var buf bytes.Buffer
		if err := xmltree.Serialize(&buf, root, slide.Namespaces); err != nil {
			return fmt.Errorf("slide %s: %w", name, err)
		}
		pkg.SetFile(name, buf.Bytes())

		if p.progress != nil {
			p.progress(i+1, len(names))
		}
	}
	return nil
}

// defaultOutputPath places the translated copy next to the input.
func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "_translated" + ext
}
