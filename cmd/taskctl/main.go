// Command taskctl is a terminal front end for the taskboard API. It keeps
// the session token under $HOME/.taskboard/token so a login survives across
// invocations, mirroring how the browser client holds the token locally.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/luminui/taskboard/pkg/client"
)

const defaultServer = "http://localhost:4000"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "taskctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("taskctl", flag.ExitOnError)
	server := flags.String("server", envOr("TASKBOARD_URL", defaultServer), "API base URL")
	flags.Usage = usage
	if err := flags.Parse(args); err != nil {
		return err
	}

	rest := flags.Args()
	if len(rest) == 0 {
		usage()
		return errors.New("missing command")
	}

	c := client.New(*server)
	if token, err := loadToken(); err == nil {
		c.SetToken(token)
	}

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "register":
		return cmdRegister(ctx, c, cmdArgs)
	case "login":
		return cmdLogin(ctx, c, cmdArgs)
	case "logout":
		return clearToken()
	case "whoami":
		return cmdWhoami(ctx, c)
	case "rename":
		return cmdRename(ctx, c, cmdArgs)
	case "list":
		return cmdList(ctx, c, cmdArgs)
	case "add":
		return cmdAdd(ctx, c, cmdArgs)
	case "set":
		return cmdSet(ctx, c, cmdArgs)
	case "rm":
		return cmdRemove(ctx, c, cmdArgs)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: taskctl [-server URL] <command> [arguments]

Commands:
  register <email> <name>        create an account (prompts on stdin for password)
  login <email>                  log in (prompts on stdin for password)
  logout                         discard the stored session token
  whoami                         show the logged-in profile
  rename <name>                  change the display name
  list [-q text] [-status s] [-page n] [-limit n]
  add <title> [description]      create a task
  add -status done <title>       create a task with an explicit status
  set <id> [-title t] [-desc d] [-status s]
  rm <id>                        delete a task
`)
}

func cmdRegister(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: register <email> <name>")
	}
	password, err := readPassword()
	if err != nil {
		return err
	}

	user, err := c.Register(ctx, args[0], password, args[1])
	if err != nil {
		return err
	}
	if err := saveToken(c.Token()); err != nil {
		return err
	}
	fmt.Printf("registered %s (%s)\n", user.Name, user.Email)
	return nil
}

func cmdLogin(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: login <email>")
	}
	password, err := readPassword()
	if err != nil {
		return err
	}

	user, err := c.Login(ctx, args[0], password)
	if err != nil {
		return err
	}
	if err := saveToken(c.Token()); err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", user.Name, user.Email)
	return nil
}

func cmdWhoami(ctx context.Context, c *client.Client) error {
	user, err := c.Profile(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\nmember since %s\n", user.Name, user.Email, user.CreatedAt.Format("2006-01-02"))
	return nil
}

func cmdRename(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: rename <name>")
	}
	user, err := c.UpdateProfile(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("renamed to %s\n", user.Name)
	return nil
}

func cmdList(ctx context.Context, c *client.Client, args []string) error {
	flags := flag.NewFlagSet("list", flag.ExitOnError)
	query := flags.String("q", "", "free-text search")
	status := flags.String("status", "", "filter by status")
	page := flags.Int("page", 0, "page number")
	limit := flags.Int("limit", 0, "page size")
	if err := flags.Parse(args); err != nil {
		return err
	}

	result, err := c.ListTasks(ctx, client.ListTasksParams{
		Query:  *query,
		Status: *status,
		Page:   *page,
		Limit:  *limit,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE")
	for _, task := range result.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\n", task.ID, task.Status, task.Title)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("page %d/%d (%d tasks)\n", result.Page, pageCount(result.Total, result.Limit), result.Total)
	return nil
}

func cmdAdd(ctx context.Context, c *client.Client, args []string) error {
	flags := flag.NewFlagSet("add", flag.ExitOnError)
	status := flags.String("status", "", "initial status (default todo)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	rest := flags.Args()
	if len(rest) == 0 {
		return errors.New("usage: add [-status s] <title> [description]")
	}

	description := ""
	if len(rest) > 1 {
		description = strings.Join(rest[1:], " ")
	}

	task, err := c.CreateTask(ctx, rest[0], description, *status)
	if err != nil {
		return err
	}
	fmt.Printf("created %s (%s)\n", task.ID, task.Status)
	return nil
}

func cmdSet(ctx context.Context, c *client.Client, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: set <id> [-title t] [-desc d] [-status s]")
	}
	id := args[0]

	flags := flag.NewFlagSet("set", flag.ExitOnError)
	title := flags.String("title", "", "new title")
	desc := flags.String("desc", "", "new description")
	status := flags.String("status", "", "new status")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	var patch client.TaskPatch
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			patch.Title = title
		case "desc":
			patch.Description = desc
		case "status":
			patch.Status = status
		}
	})
	if patch.Title == nil && patch.Description == nil && patch.Status == nil {
		return errors.New("nothing to change")
	}

	task, err := c.UpdateTask(ctx, id, patch)
	if err != nil {
		return err
	}
	fmt.Printf("updated %s (%s)\n", task.ID, task.Status)
	return nil
}

func cmdRemove(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: rm <id>")
	}
	if err := c.DeleteTask(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("deleted", args[0])
	return nil
}

// --- helpers ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func readPassword() (string, error) {
	fmt.Fprint(os.Stderr, "password: ")
	var password string
	if _, err := fmt.Scanln(&password); err != nil {
		return "", errors.New("could not read password")
	}
	return password, nil
}

func pageCount(total int64, limit int) int64 {
	if limit <= 0 {
		return 1
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 || pages == 0 {
		pages++
	}
	return pages
}

func tokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskboard", "token"), nil
}

func loadToken() (string, error) {
	path, err := tokenPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func saveToken(token string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token+"\n"), 0o600)
}

func clearToken() error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	fmt.Println("logged out")
	return nil
}
