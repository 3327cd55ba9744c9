// Package main provides the koopa command-line entry point.
//
// This is a demonstration driver for the internal/ir core, not a
// compiler front end: it never parses source text (that belongs to
// the out-of-scope textual-IR parser collaborator). It builds a
// small, fixed program directly through the ir API, reports the
// pipeline's progress the way a build tool narrates its stages, and
// audits the resulting use-def graph.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/koopa-ir/koopa/internal/ir"
)

var verbose bool

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "koopa",
		Short: "Demonstrate the Koopa IR core by building and auditing a sample program",
		RunE:  runDemo,
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log construction steps")
	return cmd
}

func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	prog := ir.NewProgram()

	// Build @add(i32, i32) -> i32 with a single block computing and
	// returning the sum of its two parameters.
	logger.Info("declaring function", zap.String("name", "@add"))
	fn := prog.NewFunc("@add", []ir.Type{ir.Int32(), ir.Int32()}, ir.Int32())
	fd, err := prog.Func(fn)
	if err != nil {
		return fmt.Errorf("lookup @add: %w", err)
	}
	fmt.Println("✓ declared @add(i32, i32) -> i32")

	dfg := fd.DFG()
	entry := dfg.NewBB()
	if err := dfg.SetBBName(entry, "%entry"); err != nil {
		return fmt.Errorf("name entry block: %w", err)
	}
	fd.Layout().AppendBB(entry)
	fmt.Println("✓ appended entry block")

	x, y := fd.Params()[0], fd.Params()[1]
	logger.Debug("building body", zap.Stringer("x", x), zap.Stringer("y", y))

	z := dfg.Binary(ir.BinaryAdd, x, y)
	if err := dfg.SetValueName(z, "%z"); err != nil {
		return fmt.Errorf("name %%z: %w", err)
	}
	zData, err := dfg.Value(z)
	if err != nil {
		return fmt.Errorf("lookup %%z: %w", err)
	}
	fd.Layout().AppendInst(entry, z, zData)

	ret := dfg.Return(z)
	retData, err := dfg.Value(ret)
	if err != nil {
		return fmt.Errorf("lookup return: %w", err)
	}
	fd.Layout().AppendInst(entry, ret, retData)
	fmt.Println("✓ built %z = add %x, %y; return %z")

	fmt.Println("\n=== Use-def audit ===")
	auditValue(dfg, "%x", x)
	auditValue(dfg, "%y", y)
	auditValue(dfg, "%z", z)

	fmt.Println("\n=== Layout ===")
	for _, bb := range fd.Layout().BBs() {
		bd, err := dfg.BB(bb)
		if err != nil {
			return fmt.Errorf("lookup block: %w", err)
		}
		fmt.Printf("%s:\n", bd.Name())
		for _, inst := range fd.Layout().Insts(bb) {
			vd, err := dfg.Value(inst)
			if err != nil {
				return fmt.Errorf("lookup instruction: %w", err)
			}
			fmt.Printf("  %s = %s\n", displayName(vd, inst), vd.Kind().KindName())
		}
	}

	return nil
}

func auditValue(dfg *ir.DataFlowGraph, label string, v ir.Value) {
	d, err := dfg.Value(v)
	if err != nil {
		fmt.Printf("%s: lookup failed: %v\n", label, err)
		return
	}
	fmt.Printf("%s used_by: %v\n", label, d.UsedBy())
}

func displayName(d *ir.ValueData, v ir.Value) string {
	if d.Name() != "" {
		return d.Name()
	}
	return v.String()
}
