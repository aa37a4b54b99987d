package client

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-dash/internal/app"
)

var fixIDsCmd = &cobra.Command{
	Use:   "fix-ids",
	Short: "Renumber quests so IDs are contiguous",
	RunE:  runFixIDs,
}

func runFixIDs(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		if _, err := a.Admin.Init(ctx); err != nil {
			return err
		}

		out, err := a.Admin.FixIDs(ctx)
		if out == nil || out.Result == nil {
			return err
		}

		old := make([]string, 0, len(out.Result.IDMapping))
		for k := range out.Result.IDMapping {
			old = append(old, k)
		}
		sort.Strings(old)
		for _, k := range old {
			fmt.Fprintf(cmd.OutOrStdout(), "  #%s -> #%d\n", k, out.Result.IDMapping[k])
		}
		return err
	})
}
