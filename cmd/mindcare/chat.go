package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Anshgoswami194/mind-embrace-connect/internal/chat"
)

type chatOptions struct {
	optionDelay time.Duration
	textDelay   time.Duration
}

func newChatCmd() *cobra.Command {
	opts := &chatOptions{}
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the scripted support assistant",
		Long: `Browse support topics by number or type a message.

"b" goes back from a topic list, "/reset" starts over and "/quit" exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().DurationVar(&opts.optionDelay, "option-delay", chat.DefaultOptionDelay, "Typing pause before option replies")
	cmd.Flags().DurationVar(&opts.textDelay, "text-delay", chat.DefaultTextDelay, "Typing pause before replies to typed messages")
	return cmd
}

type chatConsole struct {
	out    io.Writer
	sess   *chat.Session
	sched  *chat.Scheduler
	typing *spinner.Spinner

	assistant *color.Color
	user      *color.Color
	muted     *color.Color
}

func runChat(in io.Reader, out io.Writer, opts *chatOptions) error {
	sched := chat.NewScheduler(opts.optionDelay, opts.textDelay)
	defer sched.Stop()

	typing := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(out))
	typing.Suffix = " typing..."

	c := &chatConsole{
		out:       out,
		sess:      chat.NewSession(uuid.NewString(), chat.NewResponder(chat.DefaultCatalog())),
		sched:     sched,
		typing:    typing,
		assistant: color.New(color.FgCyan),
		user:      color.New(color.FgGreen),
		muted:     color.New(color.Faint),
	}

	c.printMessages(c.sess.Messages())
	c.printMenu()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		quit, err := c.handle(input)
		if err != nil {
			printWarning(out, err.Error())
		}
		if quit {
			return nil
		}
		c.printMenu()
	}
}

func (c *chatConsole) handle(input string) (bool, error) {
	switch strings.ToLower(input) {
	case "/quit", "/exit":
		return true, nil
	case "/reset":
		c.reset()
		return false, nil
	case "b", "back":
		if c.sess.View() == chat.ViewCategoryOptions {
			return false, c.sess.Back()
		}
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return false, c.exchange(c.sess.SendText(input))
	}

	switch c.sess.View() {
	case chat.ViewCategories:
		cats := c.sess.Responder().Catalog().Categories
		if n < 1 || n > len(cats) {
			return false, fmt.Errorf("choose a topic between 1 and %d", len(cats))
		}
		return false, c.sess.SelectCategory(cats[n-1].ID)
	case chat.ViewCategoryOptions:
		options := c.sess.Options()
		if n < 1 || n > len(options) {
			return false, fmt.Errorf("choose an option between 1 and %d", len(options))
		}
		return false, c.exchange(c.sess.ChooseOption(options[n-1].ID))
	default:
		if n < 1 || n > len(chat.QuickActions) {
			return false, fmt.Errorf("choose an action between 1 and %d", len(chat.QuickActions))
		}
		action := chat.QuickActions[n-1]
		if action.Reset {
			c.reset()
			return false, nil
		}
		return false, c.exchange(c.sess.Followup(action.Followup))
	}
}

// exchange prints the user's message, then waits out the typing delay and
// prints the reply.
func (c *chatConsole) exchange(msg chat.Message, d chat.Delivery, err error) error {
	if err != nil {
		return err
	}
	c.printMessages([]chat.Message{msg})

	if !c.sched.Schedule(d) {
		return fmt.Errorf("chat closed")
	}
	c.typing.Start()
	arrived := <-c.sched.C()
	c.typing.Stop()

	if reply, ok := c.sess.Deliver(arrived); ok {
		c.printMessages([]chat.Message{reply})
	}
	return nil
}

func (c *chatConsole) reset() {
	c.sess.Reset()
	fmt.Fprintln(c.out)
	c.muted.Fprintln(c.out, "-- conversation restarted --")
	c.printMessages(c.sess.Messages())
}

func (c *chatConsole) printMessages(msgs []chat.Message) {
	for _, m := range msgs {
		fmt.Fprintln(c.out)
		if m.Role == chat.RoleUser {
			c.user.Fprintf(c.out, "You: %s\n", m.Content)
			continue
		}
		c.assistant.Fprintln(c.out, "Assistant:")
		fmt.Fprintln(c.out, m.Content)
	}
}

func (c *chatConsole) printMenu() {
	fmt.Fprintln(c.out)
	switch c.sess.View() {
	case chat.ViewCategories:
		for i, cat := range c.sess.Responder().Catalog().Categories {
			fmt.Fprintf(c.out, "  %d) %s\n", i+1, cat.Label)
		}
	case chat.ViewCategoryOptions:
		for i, opt := range c.sess.Options() {
			fmt.Fprintf(c.out, "  %d) %s\n", i+1, opt.Label)
		}
		fmt.Fprintln(c.out, "  b) Back")
	case chat.ViewQuickActions:
		for i, action := range chat.QuickActions {
			fmt.Fprintf(c.out, "  %d) %s\n", i+1, action.Label)
		}
	}
	c.muted.Fprintln(c.out, chat.Disclaimer)
}
