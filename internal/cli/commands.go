package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/born-ml/modelkit/internal/bundle"
	"github.com/born-ml/modelkit/internal/dictionary"
	"github.com/born-ml/modelkit/internal/factory"
	"github.com/born-ml/modelkit/internal/langdetect"
	"github.com/born-ml/modelkit/internal/model"
)

func runVersion(_ context.Context, e *env, _ []string) error {
	fmt.Fprintf(e.stdout, "modelkit %s\n", Version)
	return nil
}

func runPack(_ context.Context, e *env, args []string) error {
	fs := e.newFlagSet("pack", "-outcomes FILE -o ARCHIVE [options]")
	outcomesFlag := fs.String("outcomes", "", "File with one model outcome (tag) per line.")
	tagdictFlag := fs.String("tagdict", "", "Tag dictionary text file: 'word tag1 tag2 ...' per line.")
	ngramsFlag := fs.String("ngrams", "", "N-gram dictionary file: one white space separated entry per line.")
	outFlag := fs.String("o", "", "Output archive path.")
	componentFlag := fs.String("component", "pos-tagger", "Component name recorded in the manifest.")
	languageFlag := fs.String("language", e.cfg.Model.Language, "Language code recorded in the manifest.")
	factoryFlag := fs.String("factory", e.cfg.Model.Factory, "Factory extension name, empty for the default.")
	tokenizerFlag := fs.String("tokenizer", e.cfg.Model.Tokenizer, "Tokenizer name recorded in the manifest.")
	caseFlag := fs.Bool("case-insensitive", false, "Look up tag dictionary words case-insensitively.")
	props := make(map[string]string)
	fs.Func("prop", "Custom manifest property as key=value (repeatable).", func(s string) error {
		k, v, ok := strings.Cut(s, "=")
		if !ok || k == "" {
			return fmt.Errorf("expected key=value, got %q", s)
		}
		props[k] = v
		return nil
	})

	if done, err := parse(fs, args); done {
		return err
	}
	if *outcomesFlag == "" || *outFlag == "" {
		fs.Usage()
		return usageError("pack: -outcomes and -o are required")
	}

	outcomes, err := readLines(*outcomesFlag)
	if err != nil {
		return failure(err)
	}

	var tags *dictionary.TagDictionary
	if *tagdictFlag != "" {
		if tags, err = readTagDictionary(*tagdictFlag, !*caseFlag); err != nil {
			return failure(err)
		}
	}

	var ngrams *dictionary.Dictionary
	if *ngramsFlag != "" {
		if ngrams, err = readNGrams(*ngramsFlag); err != nil {
			return failure(err)
		}
	}

	f, err := factory.CreateExtended(*factoryFlag, ngrams, tags)
	if err != nil {
		return failure(err)
	}

	b, err := bundle.New(*componentFlag, *languageFlag, model.NewBlob(outcomes, nil), f,
		bundle.WithLogger(e.logger),
		bundle.WithTokenizer(*tokenizerFlag),
		bundle.WithProperties(props))
	if err != nil {
		return failure(err)
	}
	if err := b.SaveFile(*outFlag); err != nil {
		return failure(err)
	}

	fmt.Fprintf(e.stdout, "wrote %s (%d entries)\n", *outFlag, len(b.Names()))
	return nil
}

// open loads the bundle named by the first argument of a subcommand.
func (e *env) open(ctx context.Context, fs *flag.FlagSet) (*bundle.Bundle, error) {
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, usageError("%s: expected one archive path or URL", fs.Name())
	}
	ro, err := e.cfg.Archive.ReaderOptions()
	if err != nil {
		return nil, usageError("%v", err)
	}
	b, err := bundle.Open(ctx, fs.Arg(0), bundle.WithLogger(e.logger), bundle.WithReaderOptions(ro))
	if err != nil {
		return nil, failure(err)
	}
	return b, nil
}

func runInspect(ctx context.Context, e *env, args []string) error {
	fs := e.newFlagSet("inspect", "ARCHIVE|URL")
	if done, err := parse(fs, args); done {
		return err
	}
	b, err := e.open(ctx, fs)
	if err != nil {
		return err
	}

	m := b.Manifest()
	fmt.Fprintf(e.stdout, "component:  %s\n", m.Component)
	fmt.Fprintf(e.stdout, "language:   %s\n", m.Language)
	fmt.Fprintf(e.stdout, "archive id: %s\n", m.ArchiveID)
	fmt.Fprintf(e.stdout, "created at: %s\n", m.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(e.stdout, "factory:    %s\n", orDefault(m.Factory))
	fmt.Fprintf(e.stdout, "tokenizer:  %s\n", orDefault(m.Tokenizer))
	for _, k := range slices.Sorted(maps.Keys(m.Properties)) {
		fmt.Fprintf(e.stdout, "property:   %s=%s\n", k, m.Properties[k])
	}
	fmt.Fprintf(e.stdout, "outcomes:   %d\n", b.Model().NumOutcomes())

	fmt.Fprintln(e.stdout, "entries:")
	for name, a := range b.Artifacts().All() {
		fmt.Fprintf(e.stdout, "  %-20s %s\n", name, a.Kind())
	}
	return nil
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}

func runValidate(ctx context.Context, e *env, args []string) error {
	fs := e.newFlagSet("validate", "ARCHIVE|URL")
	if done, err := parse(fs, args); done {
		return err
	}
	b, err := e.open(ctx, fs)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "ok: %s (%s), %d entries\n", b.Manifest().Component, b.Language(), len(b.Names()))
	return nil
}

func runLookup(ctx context.Context, e *env, args []string) error {
	fs := e.newFlagSet("lookup", "-bundle ARCHIVE|URL TEXT...")
	bundleFlag := fs.String("bundle", "", "Bundle archive path or URL.")
	if done, err := parse(fs, args); done {
		return err
	}
	if *bundleFlag == "" || fs.NArg() == 0 {
		fs.Usage()
		return usageError("lookup: -bundle and text are required")
	}

	ro, err := e.cfg.Archive.ReaderOptions()
	if err != nil {
		return usageError("%v", err)
	}
	b, err := bundle.Open(ctx, *bundleFlag, bundle.WithLogger(e.logger), bundle.WithReaderOptions(ro))
	if err != nil {
		return failure(err)
	}
	tok, err := b.Tokenizer()
	if err != nil {
		return failure(err)
	}
	tokens, err := tok.Tokenize(strings.Join(fs.Args(), " "))
	if err != nil {
		return failure(err)
	}

	f := b.Factory()
	tags := f.TagDictionary()
	valid := f.SequenceValidator()
	for _, token := range tokens {
		word := strings.TrimSpace(token)
		var admitted []string
		for i := range b.Model().NumOutcomes() {
			if outcome := b.Model().Outcome(i); valid(word, outcome) {
				admitted = append(admitted, outcome)
			}
		}
		known := tags != nil && tags.Contains(word)
		marker := " "
		if known {
			marker = "*"
		}
		fmt.Fprintf(e.stdout, "%s %-20s %s\n", marker, word, strings.Join(admitted, " "))
	}
	e.logger.Debug("lookup finished", zap.Int("tokens", len(tokens)))
	return nil
}

func runSamples(_ context.Context, e *env, args []string) error {
	fs := e.newFlagSet("samples", "[-print] FILE")
	printFlag := fs.Bool("print", false, "Print every sample.")
	if done, err := parse(fs, args); done {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return usageError("samples: expected one training file")
	}

	//nolint:gosec // G304: training file path comes from the command line
	file, err := os.Open(fs.Arg(0))
	if err != nil {
		return failure(err)
	}
	defer file.Close()

	stream := langdetect.NewSampleStream(langdetect.NewPlainTextLineStream(file))
	samples, skipped, err := langdetect.ReadAll(stream)
	if err != nil {
		return failure(err)
	}

	counts := make(map[string]int)
	for _, s := range samples {
		counts[s.Language.Code]++
		if *printFlag {
			fmt.Fprintln(e.stdout, s.String())
		}
	}
	for _, code := range slices.Sorted(maps.Keys(counts)) {
		fmt.Fprintf(e.stdout, "%s\t%d\n", code, counts[code])
	}
	fmt.Fprintf(e.stdout, "samples: %d, skipped: %d\n", len(samples), skipped)
	return nil
}

func readLines(path string) ([]string, error) {
	//nolint:gosec // G304: input path comes from the command line
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" && !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

func readTagDictionary(path string, caseSensitive bool) (*dictionary.TagDictionary, error) {
	//nolint:gosec // G304: input path comes from the command line
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d, err := dictionary.ParseTagDictionary(file, caseSensitive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func readNGrams(path string) (*dictionary.Dictionary, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	d := dictionary.NewDictionary()
	for _, line := range lines {
		d.Add(strings.Fields(line)...)
	}
	return d, nil
}
