package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/lovetype/internal/output"
	"github.com/hejijunhao/lovetype/internal/output/file"
	"github.com/hejijunhao/lovetype/internal/output/multi"
	"github.com/hejijunhao/lovetype/internal/output/stdout"
	"github.com/hejijunhao/lovetype/pkg/lovetype"
)

func newClassifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [flags] typeA typeB",
		Short: "Classify a pair of types",
		Long: `Classify prints the compatibility result for one ordered pair of types.
With --all it classifies every ordered pair of known types, one JSON object per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			switch {
			case all && len(args) != 0:
				return errors.New("--all takes no arguments")
			case !all && len(args) != 2:
				return fmt.Errorf("expected 2 type names, got %d", len(args))
			}

			out, err := a.openOutput(cmd)
			if err != nil {
				return err
			}
			if all {
				err = a.classifyAll(cmd.Context(), out)
			} else {
				err = a.classifyOne(cmd.Context(), out, args[0], args[1])
			}
			return errors.Join(err, out.Close())
		},
	}
	cmd.Flags().Bool("all", false, "classify every ordered pair of known types")
	addOutputFlags(cmd)
	return cmd
}

func (a *app) classifyOne(ctx context.Context, out output.Output, typeA, typeB string) error {
	res, err := a.backend.Classify(ctx, typeA, typeB)
	if err != nil {
		return err
	}
	return out.Write(ctx, res)
}

func (a *app) classifyAll(ctx context.Context, out output.Output) error {
	types, err := a.backend.Types(ctx)
	if err != nil {
		return err
	}
	pairs := lovetype.PairsOf(types)
	if len(pairs) == 0 {
		slog.Warn("no types in the attribute table", "data_dir", a.cfg.DataDir, "server", a.cfg.Remote.URL)
	}
	for _, p := range pairs {
		res, err := a.backend.Classify(ctx, p.A, p.B)
		if err != nil {
			return fmt.Errorf("classify %s × %s: %w", p.A, p.B, err)
		}
		if err := out.Write(ctx, res); err != nil {
			return err
		}
	}
	slog.Info("classified all pairs", "pairs", len(pairs))
	return nil
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("out", "", "write NDJSON to this file instead of stdout")
	cmd.Flags().Bool("append", false, "append to --out instead of truncating it")
	cmd.Flags().Int64("max-size", 0, "rotate --out when it exceeds this many bytes, 0 disables")
	cmd.Flags().Bool("tee", false, "with --out, also write to stdout")
}

// openOutput returns the destination selected by the output flags.
func (a *app) openOutput(cmd *cobra.Command) (output.Output, error) {
	console := stdout.NewWriter(cmd.OutOrStdout(), a.cfg.Output.Pretty)

	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		return console, nil
	}

	var opts []file.Option
	if appendOut, _ := cmd.Flags().GetBool("append"); !appendOut {
		opts = append(opts, file.WithTruncate())
	}
	if maxSize, _ := cmd.Flags().GetInt64("max-size"); maxSize > 0 {
		opts = append(opts, file.WithMaxSize(maxSize))
	}
	f, err := file.New(path, opts...)
	if err != nil {
		return nil, err
	}

	if tee, _ := cmd.Flags().GetBool("tee"); tee {
		return multi.New(f, console), nil
	}
	return f, nil
}
