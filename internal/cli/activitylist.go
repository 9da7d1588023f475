package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/svandewiele/tally/internal/models"
)

type ActivityListCmd struct {
	Tag     string `short:"t" help:"Show only activities carrying this tag."`
	Project string `short:"P" help:"Show only activities belonging to this project."`
	All     bool   `short:"a" help:"Include completed activities."`
}

func (c *ActivityListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	roots, err := ctx.Store.GetAllActivities()
	if err != nil {
		return err
	}
	if len(roots) == 0 {
		fmt.Println("No activities found")
		return nil
	}

	now := time.Now()
	printed := 0
	for _, root := range roots {
		printed += c.printTree(root, 0, now)
	}
	if printed == 0 {
		fmt.Println("No activities match the given filters")
	}
	return nil
}

func (c *ActivityListCmd) printTree(a *models.Activity, depth int, now time.Time) int {
	printed := 0
	if c.matches(a) {
		indent := strings.Repeat("  ", depth)
		line := fmt.Sprintf("%s%s  %s", indent, StatusBadge(a.StatusAt(now)), a.Name)
		if a.Deadline != nil {
			line += fmt.Sprintf("  (due %s)", a.Deadline.Format("2006-01-02 15:04"))
		}
		fmt.Println(line)
		printed++
	}
	for _, sub := range a.SubActivities {
		printed += c.printTree(sub, depth+1, now)
	}
	return printed
}

func (c *ActivityListCmd) matches(a *models.Activity) bool {
	if !c.All && a.Status() == models.StatusDone {
		return false
	}
	if c.Tag != "" && !contains(a.Tags, c.Tag) {
		return false
	}
	if c.Project != "" && !contains(a.Projects, c.Project) {
		return false
	}
	return true
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
