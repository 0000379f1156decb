package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"text/tabwriter"

	animate "github.com/wangfutao/animate.js"
	"github.com/wangfutao/animate.js/easing"
	"github.com/wangfutao/animate.js/internal/config"
	"github.com/wangfutao/animate.js/internal/store"
	"github.com/wangfutao/animate.js/keyframe"
	"github.com/wangfutao/animate.js/style"
)

// loaded is a definition file turned into an Animator.
type loaded struct {
	env  config.Env
	file *config.File
	anim *animate.Animator
}

// parseFile parses fs and returns its single positional argument.
func parseFile(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%s: expected one definition file: %w", fs.Name(), errUsage)
	}
	return fs.Arg(0), nil
}

// load reads the environment and the definition at path. A non-empty name
// overrides the file's name; with neither the Animator generates one.
func load(path, name string, opts ...animate.Option) (*loaded, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}
	f, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = f.Name
	}
	opts = append(env.Options(), opts...)
	if name != "" {
		opts = append(opts, animate.WithNamer(func() string { return name }))
	}
	a, err := f.Animator(opts...)
	if err != nil {
		return nil, err
	}
	return &loaded{env: env, file: f, anim: a}, nil
}

func cmdCSS(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("css", flag.ContinueOnError)
	name := fs.String("name", "", "keyframes rule name (default: file name or generated)")
	path, err := parseFile(fs, args)
	if err != nil {
		return err
	}
	l, err := load(path, *name)
	if err != nil {
		return err
	}
	count, err := l.file.IterationCount()
	if err != nil {
		return err
	}

	sheet := style.NewSheet()
	var el style.Element
	if err := l.anim.RunDeclarative(ctx, &el, sheet, l.file.Duration(), count, 0); err != nil {
		return err
	}
	for _, r := range sheet.Rules() {
		fmt.Fprintln(out, r.CSS)
	}
	if el.Animation() != "" {
		fmt.Fprintf(out, "animation: %s;\nanimation-iteration-count: %s;\ntransform: %s;\n",
			el.Animation(), el.IterationCount(), el.Transform())
	}
	return nil
}

func cmdSample(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	duration := fs.Float64("duration", 0, "table duration (default: duration_ms from the file)")
	step := fs.Float64("step", animate.DefaultTimeStep, "sampling step")
	at := fs.Float64("at", -1, "print only the keyframe nearest to this progress")
	method := fs.String("method", string(keyframe.Round), "nearest lookup: round, floor or ceil")
	path, err := parseFile(fs, args)
	if err != nil {
		return err
	}
	l, err := load(path, "")
	if err != nil {
		return err
	}
	d := *duration
	if d == 0 {
		d = l.file.DurationMS
	}
	kfs, err := l.anim.Sample(d, *step)
	if err != nil {
		return err
	}

	if *at >= 0 {
		m, err := keyframe.ParseMethod(*method)
		if err != nil {
			return err
		}
		f, err := kfs.Nearest(*at, m)
		if err != nil {
			return err
		}
		if f == nil {
			return nil
		}
		fmt.Fprintf(out, "%v\t%s\n", f.Progress, f.Transform.CSS())
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROGRESS\tTRANSFORM")
	for _, f := range kfs.All() {
		fmt.Fprintf(tw, "%v\t%s\n", f.Progress, f.Transform.CSS())
	}
	return tw.Flush()
}

func cmdExport(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	name := fs.String("name", "", "table name (default: file name or generated)")
	duration := fs.Float64("duration", 1, "table duration; 1 yields normalized progress")
	step := fs.Float64("step", 0, "sampling step (default: the CSS step)")
	path, err := parseFile(fs, args)
	if err != nil {
		return err
	}
	l, err := load(path, *name)
	if err != nil {
		return err
	}
	s := *step
	if s == 0 {
		s = l.anim.CSSStep()
	}
	kfs, err := l.anim.Sample(*duration, s)
	if err != nil {
		return err
	}

	db, err := store.Open(l.env.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Save(ctx, store.Table{Name: l.anim.Name(), Duration: *duration, Step: s, Keyframes: kfs}); err != nil {
		return err
	}
	fmt.Fprintf(out, "saved %s: %d keyframes to %s\n", l.anim.Name(), kfs.Len(), l.env.DBPath)
	return nil
}

// frameWriter prints each live frame on its own line.
type frameWriter struct{ w io.Writer }

func (f frameWriter) SetTransform(css string) { fmt.Fprintln(f.w, css) }

func cmdPlay(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "log iteration progress")
	path, err := parseFile(fs, args)
	if err != nil {
		return err
	}
	var opts []animate.Option
	if *verbose {
		opts = append(opts, animate.WithLogger(log.Default()))
	}
	l, err := load(path, "", opts...)
	if err != nil {
		return err
	}
	count, err := l.file.IterationCount()
	if err != nil {
		return err
	}
	return l.anim.RunLive(ctx, frameWriter{w: out}, l.file.Duration(), count, l.file.Delay())
}

func cmdList(ctx context.Context, out io.Writer) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	db, err := store.Open(env.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	list, err := db.List(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDURATION\tSTEP\tFRAMES\tCREATED")
	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%v\t%v\t%d\t%s\n", s.Name, s.Duration, s.Step, s.Frames, s.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return tw.Flush()
}

func cmdEasings(out io.Writer) error {
	names := easing.Names()
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	_, err := fmt.Fprintln(out, strings.Join(parts, "\n"))
	return err
}
