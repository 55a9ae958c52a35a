package logs

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/revisit-app/revisit/internal/app"
	"github.com/revisit-app/revisit/internal/cli"
)

type LogDeleteCmd struct {
	ID  string `arg:"" help:"ID of the entry to delete."`
	Yes bool   `help:"Skip the confirmation prompt." short:"y"`
}

func (c *LogDeleteCmd) Run(ctx *cli.Context) error {
	state, err := app.Load(ctx.Store)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Println(state.T("log.deleteDialogTitle"))
		fmt.Println(state.T("log.deleteDialogMsg"))
		fmt.Printf("%s? [y/N]: ", state.T("log.confirmDelete"))

		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println(state.T("log.cancel"))
			return nil
		}
	}

	// Deleting an unknown id is a no-op, same as the store contract.
	if err := ctx.Store.DeleteEntry(c.ID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	fmt.Printf("✓ %s: %s\n", state.T("log.delete"), c.ID)
	return nil
}
