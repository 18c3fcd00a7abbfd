package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/chronos-tachyon/adt"
	"github.com/chronos-tachyon/adt/internal/labs"
)

func (a *app) uniqueCmd() *cobra.Command {
	var impl string
	cmd := &cobra.Command{
		Use:   "unique [FILE...]",
		Short: "Count the words and distinct words in the input",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.newSet(impl)
			if err != nil {
				return err
			}
			return withInput(cmd, args, func(r io.Reader) error {
				res, err := labs.Unique(set, r)
				if err != nil {
					return err
				}
				a.log.Debug("unique", zap.String("impl", a.implOr(impl)), zap.Int("total", res.Total), zap.Int("distinct", res.Distinct))
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d total words read\n%d distinct words read\n", res.Total, res.Distinct)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&impl, "impl", "", "set implementation: array, sorted, open or chained")
	return cmd
}

func (a *app) parityCmd() *cobra.Command {
	var impl string
	cmd := &cobra.Command{
		Use:   "parity [FILE...]",
		Short: "Print the words that occur an odd number of times",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.newSet(impl)
			if err != nil {
				return err
			}
			return withInput(cmd, args, func(r io.Reader) error {
				words, err := labs.Parity(set, r)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, w := range words {
					if _, err := fmt.Fprintln(out, w); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&impl, "impl", "", "set implementation: array, sorted, open or chained")
	return cmd
}

func (a *app) radixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "radix [FILE]",
		Short: "Sort non-negative integers with a radix sort",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInput(cmd, args, func(r io.Reader) error {
				var nums []int
				err := labs.ScanWords(r, func(word string) error {
					n, err := strconv.Atoi(word)
					if err != nil {
						return fmt.Errorf("not an integer: %q", word)
					}
					if n < 0 {
						return fmt.Errorf("negative integer: %d", n)
					}
					nums = append(nums, n)
					return nil
				})
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, n := range labs.RadixSort(nums) {
					if _, err := fmt.Fprintln(out, n); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (a *app) implOr(impl string) string {
	if impl == "" {
		return a.cfg.Sets.Impl
	}
	return impl
}

func (a *app) newSet(impl string) (adt.Set[string], error) {
	return labs.NewSet(a.implOr(impl), a.cfg.Sets.MaxElements)
}

// withInput calls fn with the named files read back to back, or with
// standard input if there are none.  A newline separates consecutive files
// so that words never run together across them.
func withInput(cmd *cobra.Command, names []string, fn func(io.Reader) error) (err error) {
	if len(names) == 0 {
		return fn(cmd.InOrStdin())
	}
	readers := make([]io.Reader, 0, 2*len(names))
	for i, name := range names {
		f, openErr := os.Open(name)
		if openErr != nil {
			return openErr
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		if i > 0 {
			readers = append(readers, strings.NewReader("\n"))
		}
		readers = append(readers, f)
	}
	return fn(io.MultiReader(readers...))
}
