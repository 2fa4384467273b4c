// Command excerpt clamps text from stdin or a file to a number of display
// lines at the terminal's width (or a fixed --width), cutting at word
// boundaries and marking truncation with an ellipsis. With --watch it
// re-clamps on every terminal resize, debounced.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/excerptkit/excerpt/attach"
	"github.com/excerptkit/excerpt/measure/cell"
)

const fallbackWidth = 80

var (
	linesFlag     int
	endFlag       string
	alwaysEndFlag string
	widthFlag     int
	frameFlag     bool
	watchFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "excerpt [file]",
	Short: "Clamp text to a number of display lines",
	Long: `Clamp text to a number of display lines at a fixed width.

Text is read from the file argument or stdin, wrapped at word boundaries,
and cut to fit the line limit with an ellipsis marking the cut.`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().IntVarP(&linesFlag, "lines", "n", 1, "maximum display lines")
	rootCmd.Flags().StringVar(&endFlag, "end", "", "truncation marker (default \"…\")")
	rootCmd.Flags().StringVar(&alwaysEndFlag, "always-end", "", "marker appended whether or not truncation occurs")
	rootCmd.Flags().IntVarP(&widthFlag, "width", "w", 0, "container width in columns (0 = detect)")
	rootCmd.Flags().BoolVar(&frameFlag, "frame", false, "draw the container border")
	rootCmd.Flags().BoolVar(&watchFlag, "watch", false, "re-clamp on terminal resize until interrupted")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	width := widthFlag
	if width <= 0 {
		width = detectWidth()
	}
	if frameFlag {
		// Leave room for the border columns.
		width -= 2
	}

	region := cell.NewRegion(width)
	region.SetText(text)

	b := attach.Attach(region, attach.Spec{
		Lines:     linesFlag,
		End:       endFlag,
		AlwaysEnd: alwaysEndFlag,
	})
	defer b.Close()
	b.Settle()

	if !watchFlag {
		fmt.Fprintln(cmd.OutOrStdout(), render(region))
		return nil
	}
	return watchLoop(cmd, b, region)
}

// watchLoop redraws on every terminal resize until interrupted.
func watchLoop(cmd *cobra.Command, b *attach.Binding, region *cell.Region) error {
	out := cmd.OutOrStdout()
	redraw := func() {
		fmt.Fprint(out, "\x1b[H\x1b[2J")
		fmt.Fprintln(out, render(region))
	}
	b.AfterRefresh = redraw
	redraw()

	resize := make(chan os.Signal, 1)
	notifyResize(resize)
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(resize)
	defer signal.Stop(interrupt)

	for {
		select {
		case <-resize:
			w := detectWidth()
			if frameFlag {
				w -= 2
			}
			region.Resize(w)
			b.Resize()
		case <-interrupt:
			return nil
		}
	}
}

func render(region *cell.Region) string {
	body := strings.Join(region.Lines(), "\n")
	if !frameFlag {
		return body
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(region.Width()).
		Render(body)
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func detectWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fallbackWidth
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w < 1 {
		return fallbackWidth
	}
	return w
}
