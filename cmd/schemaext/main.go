package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/hanpama/schemaext/internal/eventbus"
	"github.com/hanpama/schemaext/internal/events"
	"github.com/hanpama/schemaext/internal/extend"
	"github.com/hanpama/schemaext/internal/language"
	"github.com/hanpama/schemaext/internal/logging"
	"github.com/hanpama/schemaext/internal/otel"
	"github.com/hanpama/schemaext/internal/reqid"
	"github.com/hanpama/schemaext/internal/schema"
	"github.com/hanpama/schemaext/internal/source"
	"github.com/hanpama/schemaext/internal/validation"
)

const rootUsage = `schemaext: build and extend GraphQL schemas from SDL

USAGE:
  schemaext <command> [flags]

COMMANDS:
  build            Build a schema from SDL and print it
  validate         Validate an extension document against a schema
  extend           Extend a schema with an SDL document and print the result
  help             Show help for any command
`

const commonUsage = `  -comment-descriptions         Use "#" comments as descriptions
  -log.level <level>            Log level: debug, info, warn, error (default: warn)
  -log.json                     Log as JSON
  -otel.endpoint <addr>         OTLP collector endpoint
  -otel.service <name>          OpenTelemetry service name (default: schemaext)
`

const buildUsage = `build FLAGS:
  -schema <file|dir>            Schema SDL file or directory. Repeatable; required
  -out <file>                   Write SDL to file (default: stdout)
` + commonUsage

const validateUsage = `validate FLAGS:
  -schema <file|dir>            Schema SDL file or directory. Repeatable; required
  -ext <file|dir>               Extension SDL file or directory. Repeatable; required
  (Prints every violation; exits non-zero when there are any)
` + commonUsage

const extendUsage = `extend FLAGS:
  -schema <file|dir>            Schema SDL file or directory. Repeatable; required
  -ext <file|dir>               Extension SDL file or directory. Repeatable; required
  -out <file>                   Write SDL to file (default: stdout)
  -assume-valid                 Skip validation of the extension document
  -assume-valid-sdl             Skip the SDL extension rules
` + commonUsage

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("schemaext", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "build":
		return cmdBuild(cmdArgs, stdout, stderr)
	case "validate":
		return cmdValidate(cmdArgs, stdout, stderr)
	case "extend":
		return cmdExtend(cmdArgs, stdout, stderr)
	case "help":
		return cmdHelp(cmdArgs, stdout)
	default:
		fmt.Fprint(stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, rootUsage)
		return nil
	}
	switch args[0] {
	case "build":
		fmt.Fprint(stdout, buildUsage)
	case "validate":
		fmt.Fprint(stdout, validateUsage)
	case "extend":
		fmt.Fprint(stdout, extendUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

type stringListFlag []string

func (s *stringListFlag) String() string { return "" }

func (s *stringListFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// commonFlags are shared by every command that loads SDL.
type commonFlags struct {
	schemaPaths         stringListFlag
	commentDescriptions bool
	logLevel            string
	logJSON             bool
	otelEndpoint        string
	otelService         string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	c.logLevel = "warn"
	c.otelService = "schemaext"
	fs.Var(&c.schemaPaths, "schema", "Schema SDL file or directory")
	fs.BoolVar(&c.commentDescriptions, "comment-descriptions", false, "Use comments as descriptions")
	fs.StringVar(&c.logLevel, "log.level", c.logLevel, "Log level")
	fs.BoolVar(&c.logJSON, "log.json", false, "Log as JSON")
	fs.StringVar(&c.otelEndpoint, "otel.endpoint", "", "OTLP collector endpoint")
	fs.StringVar(&c.otelService, "otel.service", c.otelService, "OpenTelemetry service name")
}

func (c *commonFlags) options() []extend.Option {
	if c.commentDescriptions {
		return []extend.Option{extend.WithCommentDescriptions()}
	}
	return nil
}

// setup installs the event bus with its logging and tracing subscribers.
func (c *commonFlags) setup() (teardown func(), err error) {
	logger, err := logging.New(c.logLevel, c.logJSON)
	if err != nil {
		return nil, err
	}
	eventbus.Use(eventbus.New())
	unsubscribe := logging.Subscribe(logger)
	shutdown, err := otel.Setup(c.otelEndpoint, c.otelService)
	if err != nil {
		unsubscribe()
		return nil, fmt.Errorf("otel setup: %w", err)
	}
	return func() {
		_ = shutdown(context.Background())
		unsubscribe()
		_ = logger.Sync()
		eventbus.Use(nil)
	}, nil
}

func cmdBuild(args []string, stdout, stderr io.Writer) error {
	var common commonFlags
	outFile := ""
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	common.register(fs)
	fs.StringVar(&outFile, "out", outFile, "Write SDL to file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(stderr, buildUsage)
		return err
	}
	if len(common.schemaPaths) == 0 {
		fmt.Fprint(stderr, buildUsage)
		return fmt.Errorf("-schema is required")
	}
	teardown, err := common.setup()
	if err != nil {
		return err
	}
	defer teardown()

	ctx, _ := reqid.NewContext(context.Background())
	sch, err := buildBase(ctx, common.schemaPaths, common.options())
	if err != nil {
		return err
	}
	return writeSDL(outFile, schema.Render(sch), stdout)
}

func cmdValidate(args []string, stdout, stderr io.Writer) error {
	var common commonFlags
	var extPaths stringListFlag
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	common.register(fs)
	fs.Var(&extPaths, "ext", "Extension SDL file or directory")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(stderr, validateUsage)
		return err
	}
	if len(common.schemaPaths) == 0 || len(extPaths) == 0 {
		fmt.Fprint(stderr, validateUsage)
		return fmt.Errorf("-schema and -ext are required")
	}
	teardown, err := common.setup()
	if err != nil {
		return err
	}
	defer teardown()

	ctx, _ := reqid.NewContext(context.Background())
	base, err := buildBase(ctx, common.schemaPaths, common.options())
	if err != nil {
		return err
	}
	doc, files, err := source.LoadFiles(ctx, extPaths...)
	if err != nil {
		return fmt.Errorf("load extensions: %w", err)
	}
	if err := validateExtension(ctx, doc, files, base); err != nil {
		var verr validation.ValidationError
		if errors.As(err, &verr) {
			for _, v := range verr {
				fmt.Fprintln(stdout, v.String())
			}
			return fmt.Errorf("%d violation(s) found", len(verr))
		}
		return err
	}
	return nil
}

func cmdExtend(args []string, stdout, stderr io.Writer) error {
	var common commonFlags
	var extPaths stringListFlag
	outFile := ""
	assumeValid := false
	assumeValidSDL := false
	fs := flag.NewFlagSet("extend", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	common.register(fs)
	fs.Var(&extPaths, "ext", "Extension SDL file or directory")
	fs.StringVar(&outFile, "out", outFile, "Write SDL to file")
	fs.BoolVar(&assumeValid, "assume-valid", assumeValid, "Skip validation")
	fs.BoolVar(&assumeValidSDL, "assume-valid-sdl", assumeValidSDL, "Skip SDL extension rules")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(stderr, extendUsage)
		return err
	}
	if len(common.schemaPaths) == 0 || len(extPaths) == 0 {
		fmt.Fprint(stderr, extendUsage)
		return fmt.Errorf("-schema and -ext are required")
	}
	teardown, err := common.setup()
	if err != nil {
		return err
	}
	defer teardown()

	ctx, _ := reqid.NewContext(context.Background())
	base, err := buildBase(ctx, common.schemaPaths, common.options())
	if err != nil {
		return err
	}
	doc, files, err := source.LoadFiles(ctx, extPaths...)
	if err != nil {
		return fmt.Errorf("load extensions: %w", err)
	}

	eventbus.Publish(ctx, events.ExtendStart{Sources: files})
	start := time.Now()
	finish := events.ExtendFinish{Sources: files}
	defer func() {
		finish.Duration = time.Since(start)
		eventbus.Publish(ctx, finish)
	}()

	opts := common.options()
	switch {
	case assumeValid:
		opts = append(opts, extend.WithAssumeValid())
	case assumeValidSDL:
		opts = append(opts, extend.WithAssumeValidSDL())
	default:
		if err := validateExtension(ctx, doc, files, base); err != nil {
			finish.Err = err
			return err
		}
		opts = append(opts, extend.WithAssumeValidSDL())
	}
	out, err := extend.ExtendSchema(base, doc, opts...)
	if err != nil {
		finish.Err = err
		return fmt.Errorf("extend schema: %w", err)
	}
	finish.Types = len(out.Types)
	finish.Directives = len(out.Directives)
	finish.Unchanged = out == base
	return writeSDL(outFile, schema.Render(out), stdout)
}

// buildBase loads the SDL under paths and builds it into a schema.
func buildBase(ctx context.Context, paths []string, opts []extend.Option) (*schema.Schema, error) {
	eventbus.Publish(ctx, events.BuildStart{Sources: paths})
	start := time.Now()
	finish := events.BuildFinish{Sources: paths}
	defer func() {
		finish.Duration = time.Since(start)
		eventbus.Publish(ctx, finish)
	}()

	doc, files, err := source.LoadFiles(ctx, paths...)
	if err != nil {
		finish.Err = err
		return nil, fmt.Errorf("load schema: %w", err)
	}
	finish.Sources = files
	sch, err := extend.BuildSchema(doc, opts...)
	if err != nil {
		finish.Err = err
		return nil, fmt.Errorf("build schema: %w", err)
	}
	finish.Types = len(sch.Types)
	return sch, nil
}

func validateExtension(ctx context.Context, doc *language.Document, files []string, base *schema.Schema) error {
	start := time.Now()
	err := validation.ValidateSDLExtension(doc, base)
	finish := events.ValidateFinish{Sources: files, Err: err, Duration: time.Since(start)}
	var verr validation.ValidationError
	if errors.As(err, &verr) {
		finish.Violations = len(verr)
	}
	eventbus.Publish(ctx, finish)
	return err
}

func writeSDL(outFile, sdl string, stdout io.Writer) error {
	if outFile == "" {
		_, err := fmt.Fprint(stdout, sdl)
		return err
	}
	return os.WriteFile(outFile, []byte(sdl), 0644)
}
