package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/lending/internal/database"
	journalrepo "github.com/mrlokans/lending/internal/database/journal"
	"github.com/mrlokans/lending/internal/demo"
	"github.com/mrlokans/lending/internal/entities"
	"github.com/mrlokans/lending/internal/journal"
	"github.com/mrlokans/lending/internal/lending"
)

// DemoCommand replays the demonstration lending scenario against a fresh library.
type DemoCommand struct {
	DatabasePath string
	ShowJournal  bool

	Out io.Writer
}

func NewDemoCommand() *DemoCommand {
	return &DemoCommand{Out: os.Stdout}
}

func (cmd *DemoCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", database.InMemoryPath, "Path to the journal database")
	fs.BoolVar(&cmd.ShowJournal, "journal", false, "Print the lending journal after the scenario")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s demo [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Seed a small catalog, run a sequence of borrows and returns and print the results.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s demo\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s demo -journal\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s demo -journal -db ./journal.db\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *DemoCommand) Run() error {
	db, err := database.NewQuietDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	journalSvc := journal.NewService(journalrepo.NewRepository(db.DB))
	library := lending.NewLibrary(journalSvc)

	results, err := demo.Run(cmd.Out, library)
	if err != nil {
		return fmt.Errorf("demo scenario failed: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	fmt.Fprintf(cmd.Out, "\n%d operations, %d rejected\n", len(results), failed)

	if cmd.ShowJournal {
		events, _, err := journalSvc.GetEvents(100, 0)
		if err != nil {
			return fmt.Errorf("failed to read journal: %w", err)
		}
		writeJournal(cmd.Out, events)
	}

	return nil
}

func writeJournal(w io.Writer, events []entities.LendingEvent) {
	fmt.Fprintln(w, "\n--- Journal ---")
	for _, e := range events {
		line := fmt.Sprintf("[%s] %s", e.Status, e.Description)
		if loanDate, dueDate, ok := journal.LoanDates(e); ok {
			line += fmt.Sprintf(" (loaned %s, due %s)", loanDate, dueDate)
		}
		if e.ErrorMsg != "" {
			line += ": " + e.ErrorMsg
		}
		fmt.Fprintln(w, line)
	}
}
