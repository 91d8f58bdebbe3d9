// Command postctl drives the post board from a terminal.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/debemdeboas/postboard/internal/config"
	"github.com/debemdeboas/postboard/internal/controller"
	"github.com/debemdeboas/postboard/internal/db"
	"github.com/debemdeboas/postboard/internal/logger"
	"github.com/debemdeboas/postboard/internal/model"
	"github.com/debemdeboas/postboard/internal/render"
	"github.com/debemdeboas/postboard/internal/repository"
	"github.com/debemdeboas/postboard/internal/service"
	"github.com/debemdeboas/postboard/internal/state"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

const usage = `commands:
  login <email> <password>    log in
  signup <email> <password>   sign up
  list                        show the board
  refresh                     reload posts
  new                         start a new post
  edit <id>                   edit a post
  title <text>                set the draft title
  content <text>              set the draft content
  submit                      create or update the post
  cancel                      stop editing
  delete <id>                 delete a post
  help                        show this help
  quit                        exit`

var errUsage = errors.New("wrong arguments, try 'help'")

type repl struct {
	ctrl *controller.Controller
	out  io.Writer
}

func newREPL(svc service.Service, out io.Writer) *repl {
	r := &repl{out: out}
	r.ctrl = controller.New(svc, controller.NotifierFunc(func(n model.Notification) {
		fmt.Fprintln(out, render.Toast(n))
	}))
	return r
}

// exec runs one command line. It reports whether the user asked to quit.
func (r *repl) exec(ctx context.Context, line string) (bool, error) {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	var err error
	show := true

	switch cmd {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(r.out, helpStyle.Render(usage))
		return false, nil
	case "login", "signup":
		if len(args) != 2 {
			return false, errUsage
		}
		if cmd == "login" {
			err = r.ctrl.Login(ctx, args[0], args[1])
		} else {
			err = r.ctrl.Signup(ctx, args[0], args[1])
		}
	case "list":
	case "refresh":
		err = r.ctrl.RefreshPosts(ctx)
	case "new", "cancel":
		if r.ctrl.State().Mode() == state.Update {
			err = r.ctrl.CancelEdit()
		}
	case "edit", "delete":
		if len(args) != 1 {
			return false, errUsage
		}
		if cmd == "edit" {
			err = r.ctrl.BeginEditByID(model.PostID(args[0]))
		} else {
			err = r.ctrl.DeletePost(ctx, model.PostID(args[0]))
		}
	case "title":
		r.ctrl.SetTitle(rest)
		show = false
	case "content":
		r.ctrl.SetContent(rest)
		show = false
	case "submit":
		err = r.ctrl.SubmitDraft(ctx)
	default:
		return false, fmt.Errorf("unknown command %q, try 'help'", cmd)
	}

	if show {
		fmt.Fprint(r.out, render.Terminal(r.ctrl.View()))
	}
	return false, err
}

func (r *repl) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(r.out, helpStyle.Render("Type 'help' for commands, 'quit' to exit."))

	for {
		fmt.Fprint(r.out, promptStyle.Render("postboard> "))
		if !scanner.Scan() {
			return scanner.Err()
		}

		quit, err := r.exec(ctx, scanner.Text())
		if quit || ctx.Err() != nil {
			return nil
		}

		// Post operation failures were already shown as a toast
		var opErr *controller.OpError
		if err != nil && !errors.As(err, &opErr) {
			fmt.Fprintln(r.out, errorStyle.Render("Error: "+err.Error()))
		}
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	backend := flag.String("backend", "", "service backend, overrides the config file")
	flag.Parse()

	if err := config.LoadConfig(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, config.ErrLoadConfigFmt+"\n", err)
		os.Exit(1)
	}
	cfg := config.Current()
	if *backend != "" {
		cfg.Service.Backend = *backend
	}

	l := logger.New(cfg.Logging.Level)
	config.SetLogger(l)
	db.SetLogger(l)
	repository.SetLogger(l)
	service.SetLogger(l)
	controller.SetLogger(l)
	render.SetLogger(l)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc, closeService, err := service.Open(ctx, cfg.Service.Backend, cfg.Service.Compression)
	if err != nil {
		fmt.Fprintf(os.Stderr, config.ErrOpenServiceFmt+"\n", err)
		os.Exit(1)
	}
	defer closeService()

	if err := newREPL(svc, os.Stdout).run(ctx, os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
	}
}
