package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noanitzan/my-keeps/internal/keeps"
	"github.com/noanitzan/my-keeps/internal/model"
	"github.com/noanitzan/my-keeps/internal/ui"
)

// domainCommand builds `keeps <domain> ...` for one collection. pick is
// evaluated after setup because the library only exists from then on.
func domainCommand[T any, P model.Record[T]](a *app, d keeps.Domain, pick func(*keeps.Library) *keeps.Collection[T, P], form keeps.Form[T]) *cobra.Command {
	col := func() *keeps.Collection[T, P] { return pick(a.lib) }

	cmd := &cobra.Command{
		Use:   d.Name,
		Short: d.Blurb,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var (
		folder string
		group  bool
	)
	ls := &cobra.Command{
		Use:   "ls",
		Short: "List folders and items (root unless --folder is given)",
		Args:  exactArgs(0, d.Name+" ls [--folder ID]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := col()
			if folder != "" {
				if _, ok := c.Folder(folder); !ok {
					return usagef("%s: no folder %q", d.Name, folder)
				}
			}
			if group {
				printGrouped(cmd.OutOrStdout(), d, c)
				return nil
			}
			printView(cmd.OutOrStdout(), d, c, folder)
			return nil
		},
	}
	ls.Flags().StringVar(&folder, "folder", "", "folder id to open")
	ls.Flags().BoolVar(&group, "group", false, "list every folder with its items")

	cmd.AddCommand(ls, addCommand(a, d, col, form), &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an item",
		Args:  exactArgs(1, d.Name+" rm <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := col()
			it, ok := c.Item(args[0])
			if !ok {
				return fmt.Errorf("%s: no item %q", d.Name, args[0])
			}
			c.DeleteItem(args[0])
			ui.OK(cmd.OutOrStdout(), "removed: "+P(&it).Label())
			return nil
		},
	}, &cobra.Command{
		Use:   "mkdir <name...>",
		Short: "Create a folder",
		Args:  minArgs(1, d.Name+" mkdir <name...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := col().CreateFolder(strings.Join(args, " "))
			if err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("created folder: %s %s", f.Name, ui.Dim("("+f.ID+")")))
			return nil
		},
	}, &cobra.Command{
		Use:   "rmdir <id>",
		Short: "Delete a folder and everything in it",
		Args:  exactArgs(1, d.Name+" rmdir <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := col()
			f, ok := c.Folder(args[0])
			if !ok {
				return fmt.Errorf("%s: no folder %q", d.Name, args[0])
			}
			n := len(c.ListView(f.ID).Items)
			c.DeleteFolder(f.ID)
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("removed folder: %s (%d items)", f.Name, n))
			return nil
		},
	}, &cobra.Command{
		Use:   "share <id>",
		Short: "Copy a share link for an item or folder",
		Args:  exactArgs(1, d.Name+" share <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := col()
			_, isItem := c.Item(args[0])
			_, isFolder := c.Folder(args[0])
			if !isItem && !isFolder {
				return fmt.Errorf("%s: no item or folder %q", d.Name, args[0])
			}
			link, copied := a.sharer.Share(d.Name, args[0])
			if copied {
				ui.OK(cmd.OutOrStdout(), "link copied: "+link)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), link)
			}
			return nil
		},
	})
	return cmd
}

func addCommand[T any, P model.Record[T]](a *app, d keeps.Domain, col func() *keeps.Collection[T, P], form keeps.Form[T]) *cobra.Command {
	var (
		folder string
		files  []string
	)
	values := make(map[string]*string, len(form.Fields))

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to " + d.Title,
		Args:  exactArgs(0, d.Name+" add "+flagUsage(form)),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := col()
			if folder != "" {
				if _, ok := c.Folder(folder); !ok {
					return usagef("%s: no folder %q", d.Name, folder)
				}
			}
			if len(files) > 0 {
				ic, ok := any(c).(*keeps.ImageCollection)
				if !ok {
					return usagef("--file is only supported for images")
				}
				return importFiles(cmd, ic, files, folder)
			}

			v := make(keeps.Values, len(values))
			for name, p := range values {
				v[name] = *p
			}
			it, err := keeps.Submit(c, form, v, folder)
			if err != nil {
				return err
			}
			p := P(&it)
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added: %s %s", p.Label(), ui.Dim("("+p.Base().ID+")")))
			return nil
		},
	}
	for _, f := range form.Fields {
		label := f.Label
		if f.Required {
			label += " (required)"
		}
		values[f.Name] = cmd.Flags().String(f.Name, "", label)
	}
	cmd.Flags().StringVar(&folder, "folder", "", "folder id to add into")
	if d == keeps.Images {
		cmd.Flags().StringArrayVar(&files, "file", nil, "image file to import (repeatable)")
	}
	return cmd
}

func importFiles(cmd *cobra.Command, c *keeps.ImageCollection, paths []string, folder string) error {
	failed := 0
	for _, r := range keeps.ImportImages(cmd.Context(), c, paths, folder) {
		if r.Err != nil {
			failed++
			ui.Fail(cmd.ErrOrStderr(), r.Err.Error())
			continue
		}
		ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added: %s %s", r.Image.Label(), ui.Dim("("+r.Image.ID+")")))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files not imported", failed, len(paths))
	}
	return nil
}

func flagUsage[T any](f keeps.Form[T]) string {
	parts := make([]string, 0, len(f.Fields))
	for _, fl := range f.Fields {
		if fl.Required {
			parts = append(parts, "--"+fl.Name+" ...")
		} else {
			parts = append(parts, "[--"+fl.Name+" ...]")
		}
	}
	return strings.Join(parts, " ")
}

func printView[T any, P model.Record[T]](w io.Writer, d keeps.Domain, c *keeps.Collection[T, P], folder string) {
	t := ui.Current()
	v := c.ListView(folder)

	head := d.Title
	if folder != "" {
		f, _ := c.Folder(folder)
		head += " " + t.SymFolder + " " + f.Name
	}
	lines := []string{
		ui.C(t.Title, head) + "  " + ui.Dim(fmt.Sprintf("%d folders, %d items", len(v.Folders), len(v.Items))),
		"",
	}
	if len(v.Folders) == 0 && len(v.Items) == 0 {
		lines = append(lines, ui.Dim("nothing here yet"))
	}
	for _, f := range v.Folders {
		lines = append(lines, ui.C(t.Accent, t.SymFolder+" "+ui.Truncate(f.Name, 48))+"  "+ui.Dim(f.ID))
	}
	for i := range v.Items {
		p := P(&v.Items[i])
		lines = append(lines, t.SymItem+" "+ui.Truncate(p.Label(), 48)+"  "+ui.Dim(p.Base().ID))
	}
	ui.Panel(w, lines)
}

func printGrouped[T any, P model.Record[T]](w io.Writer, d keeps.Domain, c *keeps.Collection[T, P]) {
	printView(w, d, c, "")
	for _, f := range c.Folders() {
		printView(w, d, c, f.ID)
	}
}
