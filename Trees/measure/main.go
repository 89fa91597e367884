// Command rbmeasure inserts keys into the red-black trees of this module and
// reports on the result: validity, height against the 2*log2(n+1) bound, the
// tree itself, and insert/lookup timings next to other ordered trees.
package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/g-m-twostay/go-rbtree/Trees"
)

func main() {
	testing.Init()
	log.SetFormatter(&prefixed.TextFormatter{})
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		log.WithError(err).Fatal("cannot execute command")
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var conf Config
	root := &cobra.Command{
		Use:          "rbmeasure",
		Short:        "Inspect and measure the red-black trees",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if conf, err = loadConfig(viper.New(), cmd.Flags()); err != nil {
				return err
			}
			if conf.Debug {
				log.SetLevel(log.DebugLevel)
			}
			log.Debugf("config: %+v", conf)
			return nil
		},
	}
	bindFlags(root.PersistentFlags())
	root.SetOut(out)

	root.AddCommand(
		&cobra.Command{
			Use:   "demo",
			Short: "Insert --keys and show traversal, search and validity",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runDemo(cmd.OutOrStdout(), conf)
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Insert --n keys in --order and check the red-black invariants",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runValidate(cmd.OutOrStdout(), conf)
			},
		},
		&cobra.Command{
			Use:   "print",
			Short: "Insert --n keys in --order and print the tree",
			RunE: func(cmd *cobra.Command, _ []string) error {
				t := fill(conf, genKeys(conf.Order, conf.N, conf.Seed))
				printTree(cmd.OutOrStdout(), t)
				return nil
			},
		},
		&cobra.Command{
			Use:   "bench",
			Short: "Time --n inserts and lookups against other ordered trees",
			RunE: func(cmd *cobra.Command, _ []string) error {
				keys := genKeys(conf.Order, conf.N, conf.Seed)
				log.Infof("benchmarking %d keys, order=%s", conf.N, conf.Order)
				renderBench(cmd.OutOrStdout(), conf.Order, conf.N, runBench(keys))
				return nil
			},
		},
	)
	return root
}

func fill(conf Config, keys []int) Trees.Tree[int] {
	t := conf.newTree()
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

func runDemo(w io.Writer, conf Config) error {
	t := fill(conf, conf.Keys)
	log.WithField("impl", conf.Impl).Infof("inserted %v", conf.Keys)
	fmt.Fprintf(w, "Inorder traversal: %v\n", t.InOrder())
	fmt.Fprintf(w, "Search 15: %v\n", t.Has(15))
	fmt.Fprintf(w, "Search 100: %v\n", t.Has(100))
	fmt.Fprintf(w, "Is valid Red-Black Tree: %v\n", t.Valid())
	if !t.Valid() {
		return errors.New("tree is not a valid red-black tree")
	}
	return nil
}

func runValidate(w io.Writer, conf Config) error {
	t := conf.newTree()
	for i, k := range genKeys(conf.Order, conf.N, conf.Seed) {
		t.Insert(k)
		if conf.Debug && !t.Valid() {
			return errors.Errorf("invariant broken after insert #%d (key %d)", i+1, k)
		}
	}
	bound := 2 * math.Log2(float64(conf.N+1))
	valid := t.Valid()

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"impl", "order", "size", "height", "bound", "black height", "valid"})
	tw.AppendRow(table.Row{conf.Impl, conf.Order, t.Size(), t.Height(), fmt.Sprintf("%.2f", bound), t.BlackHeight(), valid})
	tw.Render()

	switch {
	case !valid:
		return errors.New("tree is not a valid red-black tree")
	case float64(t.Height()) > bound:
		return errors.Errorf("height %d exceeds bound %.2f", t.Height(), bound)
	}
	log.WithFields(log.Fields{"size": t.Size(), "height": t.Height()}).Info("tree is valid")
	return nil
}
