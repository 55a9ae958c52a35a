package logs

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/revisit-app/revisit/internal/cli"
	"github.com/revisit-app/revisit/internal/models"
)

type LogClearCmd struct {
	Profile string `help:"Clear only one profile's entries (private|work)." enum:"private,work,"`
	Yes     bool   `help:"Skip the confirmation prompt." short:"y"`
}

func (c *LogClearCmd) Run(ctx *cli.Context) error {
	target := "all profiles"
	if c.Profile != "" {
		target = "profile " + c.Profile
	}

	if !c.Yes {
		fmt.Printf("⚠️  This permanently deletes every entry for %s. Continue? [y/N]: ", target)
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := ctx.Store.ClearEntries(models.ProfileID(c.Profile)); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	fmt.Printf("✓ Cleared entries for %s\n", target)
	return nil
}
