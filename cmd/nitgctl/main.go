// Command nitgctl is a small terminal client for the NITG Connect API.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nitgconnect/backend/pkg/client"
)

const usage = `usage: nitgctl [flags] <command> [args]

commands:
  login <email> <password>
  signup <email> <password> [name] [rollNo]
  logout
  whoami
  list <resource>              resources: lost-found notices marketplace users clubs birthdays
  get <resource> <id>
  delete <resource> <id>
  watch <resource>             refresh the list every -interval

flags:
`

func main() {
	_ = godotenv.Load()

	home, _ := os.UserHomeDir()
	defaultURL := os.Getenv("NITG_API_URL")
	if defaultURL == "" {
		defaultURL = client.DefaultBaseURL
	}

	apiURL := flag.String("api", defaultURL, "API base URL")
	sessionDir := flag.String("session-dir", filepath.Join(home, ".nitgctl"), "where the session file is kept")
	interval := flag.Duration("interval", client.DefaultPollInterval, "refresh interval for watch")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	tokens, err := client.NewFileTokenStore(*sessionDir)
	if err != nil {
		fatal(err)
	}
	c := client.New(*apiURL, client.WithTokenStore(tokens))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, c, args, *interval); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, c *client.Client, args []string, interval time.Duration) error {
	cmd, args := args[0], args[1:]

	switch cmd {
	case "login":
		if len(args) != 2 {
			return errors.New("login needs <email> <password>")
		}
		res, err := c.Auth().Login(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Signed in as %s\n", res.User.String("email"))
		if path := sessionPath(c); path != "" {
			fmt.Printf("Session saved to %s\n", path)
		}
		return nil

	case "signup":
		if len(args) < 2 {
			return errors.New("signup needs <email> <password>")
		}
		in := client.SignupInput{Email: args[0], Password: args[1]}
		if len(args) > 2 {
			in.Name = args[2]
		}
		if len(args) > 3 {
			in.RollNo = args[3]
		}
		res, err := c.Auth().Signup(ctx, in)
		if err != nil {
			return err
		}
		fmt.Printf("Account created for %s\n", res.User.String("email"))
		return nil

	case "logout":
		if err := c.Auth().Logout(); err != nil {
			return err
		}
		if path := sessionPath(c); path != "" {
			fmt.Printf("Removed %s\n", path)
		}
		return nil

	case "whoami":
		session := client.NewSession(c)
		if err := session.Init(ctx); err != nil {
			return err
		}
		if !session.IsAuthenticated() {
			fmt.Println("Not signed in")
			return nil
		}
		return printJSON(session.User())

	case "list", "get", "delete", "watch":
		if len(args) < 1 {
			return fmt.Errorf("%s needs a resource", cmd)
		}
		res := c.Resource(args[0])

		switch cmd {
		case "list":
			docs, err := res.List(ctx)
			if err != nil {
				return err
			}
			return printJSON(docs)
		case "watch":
			err := client.Poll(ctx, interval, res.List, func(docs []client.Document, err error) {
				if err != nil {
					fmt.Fprintf(os.Stderr, "refresh failed: %v\n", err)
					return
				}
				fmt.Printf("--- %s (%d) %s\n", args[0], len(docs), time.Now().Format(time.Kitchen))
				for _, d := range docs {
					fmt.Printf("%s  %s\n", d.ID(), summary(d))
				}
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		if len(args) != 2 {
			return fmt.Errorf("%s needs <resource> <id>", cmd)
		}
		if cmd == "get" {
			doc, err := res.Get(ctx, args[1])
			if err != nil {
				return err
			}
			return printJSON(doc)
		}
		msg, err := res.Delete(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil
	}

	return fmt.Errorf("unknown command %q", cmd)
}

func summary(d client.Document) string {
	for _, key := range []string{"title", "name"} {
		if s := d.String(key); s != "" {
			return s
		}
	}
	return ""
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func fatal(err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintf(os.Stderr, "error (%d): %s\n", apiErr.Status, apiErr.Message)
	} else {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(1)
}

// sessionPath is the session file when tokens are kept on disk.
func sessionPath(c *client.Client) string {
	if fs, ok := c.Tokens().(*client.FileTokenStore); ok {
		return fs.Path()
	}
	return ""
}
