package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/quest-dash/internal/app"
	"github.com/KirkDiggler/quest-dash/internal/decorators"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/admin"
	"github.com/KirkDiggler/quest-dash/internal/orchestrators/questform"
)

func parseQuestID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(arg, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid quest id %q", arg)
	}
	return id, nil
}

// applyDecorators adds each tag=value pair to the open form
func applyDecorators(ctx context.Context, form *questform.Controller, pairs []string) error {
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("decorator %q must look like tag=value", pair)
		}
		tag, err := decorators.ParseTag(name)
		if err != nil {
			return err
		}
		if _, err := form.AddDecorator(ctx, tag, raw); err != nil {
			return err
		}
	}
	return nil
}

func printQuest(cmd *cobra.Command, a *app.App, out *admin.SubmitFormOutput) {
	if out == nil || out.Quest == nil {
		return
	}
	q := out.Quest
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "\nQuest #%d: %s\n", q.ID, q.Title)
	fmt.Fprintf(w, "Type: %s  Base XP: %d\n", q.Type.Label(), q.BaseXP)

	r := decorators.NewRenderer(a.TUIOptions().Style, a.Catalog)
	for _, line := range r.Lines(decorators.Decode(string(q.Decorators), a.Catalog).Items()) {
		fmt.Fprintf(w, "  %-10s %s\n", line.Kind, line.Label)
	}
}
