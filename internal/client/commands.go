// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-zk-vault/models"
)

type command struct {
	usage   string
	help    string
	minArgs int
	run     func(ctx context.Context, args []string) error
}

func (a *App) commandTable() map[string]command {
	commands := map[string]command{
		"signup":  {usage: "signup", help: "create an account and unlock the new vault", run: a.signUp},
		"signin":  {usage: "signin", help: "sign in on the server and unlock the vault", run: a.signIn},
		"unlock":  {usage: "unlock", help: "unlock the vault of a previous sign-in without the server", run: a.unlock},
		"lock":    {usage: "lock", help: "forget the vault key, keep the session", run: a.lock},
		"logout":  {usage: "logout", help: "forget the vault key and the session", run: a.logout},
		"add":     {usage: "add", help: "add a login item", run: a.addItem},
		"list":    {usage: "list", help: "list items", run: a.listItems},
		"get":     {usage: "get <id> [--show]", help: "show an item, --show reveals the password", minArgs: 1, run: a.getItem},
		"update":  {usage: "update <id>", help: "change fields of an item", minArgs: 1, run: a.updateItem},
		"delete":  {usage: "delete <id>", help: "delete an item", minArgs: 1, run: a.deleteItem},
		"copy":    {usage: "copy <id> [field]", help: "copy a field to the clipboard, password by default", minArgs: 1, run: a.copyField},
		"version": {usage: "version", help: "show client and server versions", run: a.showVersion},
		"quit":    {usage: "quit", help: "lock the vault and exit", run: a.quit},
	}
	commands["exit"] = commands["quit"]
	commands["help"] = command{usage: "help", help: "show this message", run: a.help}

	return commands
}

func (a *App) help(context.Context, []string) error {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		if name != "exit" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%s\n", a.commands[name].usage, a.commands[name].help)
	}
	return w.Flush()
}

func (a *App) quit(context.Context, []string) error {
	return errQuit
}

// ─── Account ─────────────────────────────────────────────────────────────────

func (a *App) signUp(ctx context.Context, _ []string) error {
	creds, err := a.readCredentials(true)
	if err != nil {
		return err
	}

	if err = a.services.AuthService.SignUp(ctx, creds); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created, vault unlocked.")
	return nil
}

func (a *App) signIn(ctx context.Context, _ []string) error {
	creds, err := a.readCredentials(false)
	if err != nil {
		return err
	}

	if err = a.services.AuthService.SignIn(ctx, creds); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Signed in, vault unlocked.")
	return nil
}

func (a *App) unlock(ctx context.Context, _ []string) error {
	creds, err := a.readCredentials(false)
	if err != nil {
		return err
	}

	if err = a.services.AuthService.Unlock(ctx, creds); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Vault unlocked.")
	return nil
}

func (a *App) lock(context.Context, []string) error {
	a.services.AuthService.Lock()
	fmt.Fprintln(a.out, "Vault locked.")
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.services.AuthService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// ─── Items ───────────────────────────────────────────────────────────────────

func (a *App) addItem(ctx context.Context, _ []string) error {
	var item models.LoginItem
	var err error

	item.Name, _ = a.readLine("Name: ")
	item.URI, _ = a.readLine("URI: ")
	item.Username, _ = a.readLine("Username: ")
	if item.Password, err = a.readPassword("Password: "); err != nil {
		return err
	}
	item.Notes, _ = a.readLine("Notes: ")

	created, err := a.services.VaultService.AddItem(ctx, item)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Item %d added.\n", created.ItemID)
	return nil
}

func (a *App) listItems(ctx context.Context, _ []string) error {
	items, err := a.services.VaultService.ListItems(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No items.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tUSERNAME\tURI")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", item.ItemID, item.Name, item.Username, item.URI)
	}
	return w.Flush()
}

func (a *App) getItem(ctx context.Context, args []string) error {
	itemID, err := parseItemID(args[0])
	if err != nil {
		return err
	}

	item, err := a.services.VaultService.GetItem(ctx, itemID)
	if err != nil {
		return err
	}

	password := strings.Repeat("*", 8)
	if len(args) > 1 && args[1] == "--show" {
		password = item.Password
	}

	printItem(a.out, item, password)
	return nil
}

// updateItem prompts for every field; an empty answer keeps the stored value.
func (a *App) updateItem(ctx context.Context, args []string) error {
	itemID, err := parseItemID(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Leave a field empty to keep it.")
	update := models.LoginItemUpdate{ItemID: itemID}
	update.Name = a.readOptional("Name: ")
	update.URI = a.readOptional("URI: ")
	update.Username = a.readOptional("Username: ")

	password, err := a.readPassword("Password: ")
	if err != nil {
		return err
	}
	if password != "" {
		update.Password = &password
	}
	update.Notes = a.readOptional("Notes: ")

	if _, err = a.services.VaultService.UpdateItem(ctx, update); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Item %d updated.\n", itemID)
	return nil
}

func (a *App) deleteItem(ctx context.Context, args []string) error {
	itemID, err := parseItemID(args[0])
	if err != nil {
		return err
	}

	answer, _ := a.readLine(fmt.Sprintf("Delete item %d? [y/N]: ", itemID))
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err = a.services.VaultService.DeleteItem(ctx, itemID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Item %d deleted.\n", itemID)
	return nil
}

func (a *App) copyField(ctx context.Context, args []string) error {
	itemID, err := parseItemID(args[0])
	if err != nil {
		return err
	}

	field := "password"
	if len(args) > 1 {
		field = strings.ToLower(args[1])
	}

	item, err := a.services.VaultService.GetItem(ctx, itemID)
	if err != nil {
		return err
	}

	value, err := fieldValue(item, field)
	if err != nil {
		return err
	}

	if err = a.copyText(value); err != nil {
		return fmt.Errorf("%w: %w", errClipboard, err)
	}

	fmt.Fprintf(a.out, "Copied %s of item %d.\n", field, itemID)
	return nil
}

func (a *App) showVersion(ctx context.Context, _ []string) error {
	fmt.Fprintf(a.out, "Client: %s\n", a.buildInfo)

	version, err := a.version.GetAppVersion(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Server: unavailable")
		return nil
	}

	fmt.Fprintf(a.out, "Server: %s\n", version)
	return nil
}

func (a *App) readOptional(label string) *string {
	line, ok := a.readLine(label)
	if !ok || line == "" {
		return nil
	}
	return &line
}

func printItem(w io.Writer, item models.LoginItem, password string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", item.ItemID)
	fmt.Fprintf(tw, "Name:\t%s\n", item.Name)
	fmt.Fprintf(tw, "URI:\t%s\n", item.URI)
	fmt.Fprintf(tw, "Username:\t%s\n", item.Username)
	fmt.Fprintf(tw, "Password:\t%s\n", password)
	fmt.Fprintf(tw, "Notes:\t%s\n", item.Notes)
	fmt.Fprintf(tw, "Updated:\t%s\n", item.UpdatedAt.Local().Format(time.DateTime))
	tw.Flush()
}

func fieldValue(item models.LoginItem, field string) (string, error) {
	var value string
	switch field {
	case "name":
		value = item.Name
	case "uri":
		value = item.URI
	case "username":
		value = item.Username
	case "password":
		value = item.Password
	case "notes":
		value = item.Notes
	default:
		return "", errUnknownField
	}

	if value == "" {
		return "", errNothingToCopy
	}
	return value, nil
}

func parseItemID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: item id must be a positive number", errUsage)
	}
	return id, nil
}
