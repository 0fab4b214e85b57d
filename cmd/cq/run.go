package main

import (
	"fmt"
	"io"
	"os"

	compound "github.com/compound-format/go-compound"
	"github.com/compound-format/go-compound/encode"
	"github.com/compound-format/go-compound/libdiff"
	"github.com/compound-format/go-compound/tag"

	"github.com/scott-cotton/cli"
)

// readDoc reads a document from a file path, with "-" meaning stdin.
func readDoc(cfg *MainConfig, arg string) (*tag.Tag, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	doc, err := compound.ReadDocument(r, cfg.Wire)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return doc, nil
}

func render(cfg *MainConfig, w io.Writer, t *tag.Tag) error {
	if err := encode.Encode(t, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}

func stdinIfEmpty(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range stdinIfEmpty(args) {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := render(cfg.MainConfig, cc.Out, doc); err != nil {
			return err
		}
	}
	return nil
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	for _, arg := range stdinIfEmpty(args[1:]) {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res, err := tag.GetPath(doc, path)
		if err != nil {
			return fmt.Errorf("error executing get on %s: %w", arg, err)
		}
		if err := render(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := readDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := readDoc(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	d := libdiff.Diff(from, to)
	if d == nil {
		return nil
	}
	if err := render(cfg.MainConfig, cc.Out, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -p", cli.ErrUsage)
	}
	ops, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return err
	}
	for _, arg := range stdinIfEmpty(args) {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res, err := compound.Patch(doc, ops)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := compound.WriteDocument(cc.Out, res, cfg.Wire); err != nil {
			return err
		}
	}
	return nil
}

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Program == "" {
		return fmt.Errorf("%w: match requires -e", cli.ErrUsage)
	}
	matched := false
	for _, arg := range stdinIfEmpty(args) {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		ok, err := compound.Match(doc, cfg.Program)
		if err != nil {
			return fmt.Errorf("error matching %s: %w", arg, err)
		}
		if ok {
			matched = true
			fmt.Fprintln(cc.Out, arg)
		}
	}
	if !matched {
		return cli.ExitCodeErr(1)
	}
	return nil
}
