package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-containers/linkedlist"
)

const (
	insertFlag    = "insert"
	atFlag        = "at"
	removeFlag    = "remove"
	minLengthFlag = "min-length"
)

// NewListCommand returns the command that runs the linked list walkthrough.
func NewListCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [item...]",
		Short: "Build a linked list of strings and run map, filter and sort on it",
		Example: `  containers list apple banana pear --insert grape --at 1
  containers list kiwi fig apple --min-length 3 --remove 0`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, v, args)
		},
	}

	flags := cmd.Flags()
	flags.String(insertFlag, "", "item to insert after the initial items are appended")
	flags.Int(atFlag, 0, "position used by --insert")
	flags.Int(removeFlag, -1, "position to remove after the insert (negative disables removal)")
	flags.Int(minLengthFlag, 3, "keep only items longer than this when filtering")

	return cmd
}

func runList(cmd *cobra.Command, v *viper.Viper, args []string) error {
	log, err := newLogger(v)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	flags := cmd.Flags()
	insert, _ := flags.GetString(insertFlag)
	at, _ := flags.GetInt(atFlag)
	remove, _ := flags.GetInt(removeFlag)
	minLength, _ := flags.GetInt(minLengthFlag)

	release := func(owner string) func(string) {
		return func(s string) {
			log.Debug("released element", zap.String("list", owner), zap.String("value", s))
		}
	}

	list := linkedlist.New(release("items"))
	for _, arg := range args {
		list.Append(arg)
	}
	if flags.Changed(insertFlag) {
		list.InsertAt(insert, at)
		log.Debug("inserted element", zap.String("value", insert), zap.Int("position", at))
	}
	if remove >= 0 {
		removed, err := list.RemoveAt(remove)
		if err != nil {
			log.Warn("element destructor failed", zap.Error(err))
		}
		if !removed {
			log.Info("nothing to remove", zap.Int("position", remove), zap.Int("len", list.Len()))
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "items: %s\n", join(list))
	if flags.Changed(insertFlag) {
		if item, ok := list.GetAt(at); ok {
			fmt.Fprintf(out, "at %d: %s\n", at, item)
		}
	}

	filtered, err := list.Filter(func(s string) bool { return len(s) > minLength })
	if err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	fmt.Fprintf(out, "longer than %d: %s\n", minLength, join(filtered))

	upper := list.Map(strings.ToUpper, release("upper"))
	fmt.Fprintf(out, "upper: %s\n", join(upper))

	list.Sort(strings.Compare)
	fmt.Fprintf(out, "sorted: %s\n", join(list))

	for _, l := range []struct {
		name string
		list *linkedlist.List[string]
	}{
		{"items", list},
		{"filtered", filtered},
		{"upper", upper},
	} {
		if err := l.list.Destroy(); err != nil {
			log.Warn("teardown failed", zap.String("list", l.name), zap.Error(err))
		}
	}
	return nil
}

func join(l *linkedlist.List[string]) string {
	parts := make([]string, 0, l.Len())
	l.ForEach(func(s string) { parts = append(parts, s) })
	return strings.Join(parts, ", ")
}
