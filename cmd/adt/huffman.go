package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/chronos-tachyon/adt/huffman"
)

func (a *app) compressCmd() *cobra.Command {
	var toStdout, report bool
	cmd := &cobra.Command{
		Use:   "compress FILE...",
		Short: "Pack each FILE into FILE plus the configured suffix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if toStdout {
				if len(args) != 1 {
					return fmt.Errorf("--stdout takes exactly one file, got %d", len(args))
				}
				r, err := a.compressTo(cmd.OutOrStdout(), args[0])
				if err != nil {
					return err
				}
				if report {
					return writeReport(cmd.ErrOrStderr(), args[0], r)
				}
				return nil
			}

			reports := make([]*huffman.Report, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Huffman.Workers)
			for i, name := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					r, err := a.compressFile(name, name+a.cfg.Huffman.Suffix)
					reports[i] = r
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			if report {
				for i, name := range args {
					if err := writeReport(cmd.OutOrStdout(), name, reports[i]); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "write the packed stream to standard output")
	cmd.Flags().BoolVar(&report, "report", false, "print the per-byte code lengths and totals")
	return cmd
}

func (a *app) decompressCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "decompress FILE...",
		Short: "Unpack each FILE, stripping the configured suffix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && len(args) != 1 {
				return fmt.Errorf("--output takes exactly one file, got %d", len(args))
			}
			targets := make([]string, len(args))
			for i, name := range args {
				switch {
				case output == "-":
					targets[i] = ""
				case output != "":
					targets[i] = output
				case strings.HasSuffix(name, a.cfg.Huffman.Suffix) && len(name) > len(a.cfg.Huffman.Suffix):
					targets[i] = strings.TrimSuffix(name, a.cfg.Huffman.Suffix)
				default:
					return fmt.Errorf("%q does not end in %q; use --output", name, a.cfg.Huffman.Suffix)
				}
			}

			if output == "-" {
				return a.decompressTo(cmd.OutOrStdout(), args[0])
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Huffman.Workers)
			for i, name := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					return a.decompressFile(name, targets[i])
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file name, or "-" for standard output`)
	return cmd
}

func (a *app) codesCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "codes FILE",
		Short: "Print the Huffman code table that compress would use for FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer multierr.AppendInvoke(&err, multierr.Close(f))

			r, err := huffman.Analyze(bufio.NewReaderSize(f, a.cfg.Huffman.BufferSize))
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				return writeReport(out, args[0], r)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(r.Table())
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				defer multierr.AppendInvoke(&err, multierr.Close(enc))
				return enc.Encode(r.Table())
			default:
				return fmt.Errorf("unknown format %q: want text, json or yaml", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	return cmd
}

func (a *app) compressFile(inName, outName string) (r *huffman.Report, err error) {
	out, err := os.Create(outName)
	if err != nil {
		return nil, err
	}
	defer func() {
		multierr.AppendInto(&err, out.Close())
		if err != nil {
			_ = os.Remove(outName)
		}
	}()

	r, err = a.compressTo(out, inName)
	if err != nil {
		return nil, err
	}
	a.log.Info("compressed",
		zap.String("input", inName),
		zap.String("output", outName),
		zap.Int64("input_bytes", r.InputBytes),
		zap.Int64("output_bytes", r.OutputBytes))
	return r, nil
}

func (a *app) compressTo(w io.Writer, inName string) (r *huffman.Report, err error) {
	in, err := os.Open(inName)
	if err != nil {
		return nil, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(in))

	bw := bufio.NewWriterSize(w, a.cfg.Huffman.BufferSize)
	r, err = huffman.Compress(bw, in, huffman.WithTempDir(a.cfg.Huffman.TempDir))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inName, err)
	}
	if err = bw.Flush(); err != nil {
		return nil, err
	}
	return r, nil
}

func (a *app) decompressFile(inName, outName string) (err error) {
	out, err := os.Create(outName)
	if err != nil {
		return err
	}
	defer func() {
		multierr.AppendInto(&err, out.Close())
		if err != nil {
			_ = os.Remove(outName)
		}
	}()

	if err = a.decompressTo(out, inName); err != nil {
		return err
	}
	a.log.Info("decompressed", zap.String("input", inName), zap.String("output", outName))
	return nil
}

func (a *app) decompressTo(w io.Writer, inName string) (err error) {
	in, err := os.Open(inName)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(in))

	bw := bufio.NewWriterSize(w, a.cfg.Huffman.BufferSize)
	n, err := huffman.Decompress(bw, in)
	if err != nil {
		return fmt.Errorf("%s: %w", inName, err)
	}
	a.log.Debug("unpacked", zap.String("input", inName), zap.Int64("bytes", n))
	return bw.Flush()
}

func writeReport(w io.Writer, name string, r *huffman.Report) error {
	if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
		return err
	}
	if _, err := r.WriteTo(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d bytes in, %d bits of codes, %d bytes out\n", r.InputBytes, r.TotalBits(), r.OutputBytes)
	return err
}
