package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-containers/stack"
)

const popFlag = "pop"

// NewStackCommand returns the command that pushes integers onto a stack and
// pops some of them back off.
func NewStackCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stack [int...]",
		Short:   "Push integers onto a stack and pop them in LIFO order",
		Example: "  containers stack 10 20 30 --pop 1",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStack(cmd, v, args)
		},
	}

	cmd.Flags().Int(popFlag, 1, "number of values to pop")

	return cmd
}

func runStack(cmd *cobra.Command, v *viper.Viper, args []string) error {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid stack value %q: %w", arg, err)
		}
		values = append(values, n)
	}

	log, err := newLogger(v)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	pops, _ := cmd.Flags().GetInt(popFlag)

	s := stack.New(func(n int) {
		log.Debug("released element", zap.Int("value", n))
	})
	for _, n := range values {
		s.Push(n)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pushed: %s\n", joinInts(values))
	fmt.Fprintf(out, "length: %d\n", s.Len())

	for i := 0; i < pops; i++ {
		n, ok := s.Pop()
		if !ok {
			log.Info("stack is empty", zap.Int("requested", pops), zap.Int("popped", i))
			break
		}
		fmt.Fprintf(out, "popped: %d\n", n)
	}
	fmt.Fprintf(out, "length: %d\n", s.Len())
	fmt.Fprintf(out, "empty: %t\n", s.IsEmpty())

	if err := s.Destroy(); err != nil {
		log.Warn("teardown failed", zap.Error(err))
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, n := range values {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
