package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type NoteShowCmd struct {
	Activity string `arg:"" help:"Name or id of the activity."`
}

func (c *NoteShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}

	note, err := ctx.Notes.FindNoteForActivity(activity.ID)
	if err != nil {
		return err
	}
	if note == nil || len(note.Content) == 0 {
		fmt.Printf("No note for %q\n", activity.Name)
		return nil
	}

	fmt.Printf("Note for %q:\n", activity.Name)
	for _, line := range note.Content {
		fmt.Printf("  %s\n", line)
	}
	return nil
}

type NoteEditCmd struct {
	Activity string `arg:"" help:"Name or id of the activity."`
	Text     string `short:"m" help:"Set the note text directly instead of opening the editor."`
}

func (c *NoteEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}

	note, err := ctx.Notes.CreateNoteForActivity(activity.ID)
	if err != nil {
		return err
	}

	if c.Text != "" {
		note.SetText(c.Text)
	} else {
		text := note.Text()
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewText().
					Title(fmt.Sprintf("Note for %q", activity.Name)).
					Value(&text),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		note.SetText(text)
	}

	if err := ctx.Notes.Save(note); err != nil {
		return err
	}

	fmt.Printf("Saved note for %q\n", activity.Name)
	return nil
}
